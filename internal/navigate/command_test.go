package navigate_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/temirov/giturl/internal/navigate"
)

func executeCommand(t *testing.T, command *cobra.Command, arguments ...string) (string, error) {
	t.Helper()

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(arguments)

	executionError := command.Execute()
	return outputBuffer.String(), executionError
}

func TestPopCommand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		configuration  *navigate.Configuration
		arguments      []string
		expectedOutput string
		expectError    bool
	}{
		{
			name:           "removes_single_segment_by_default",
			arguments:      []string{"git@github.com:user/foo/bar"},
			expectedOutput: "git@github.com:user/foo\n",
		},
		{
			name:           "count_flag_overrides_default",
			arguments:      []string{"git@github.com:user/foo/bar", "--count", "2"},
			expectedOutput: "git@github.com:user\n",
		},
		{
			name:           "configured_count_applies_without_flag",
			configuration:  &navigate.Configuration{PopCount: 2},
			arguments:      []string{"git@github.com:user/foo/bar"},
			expectedOutput: "git@github.com:user\n",
		},
		{
			name:          "invalid_configured_count_falls_back_to_default",
			configuration: &navigate.Configuration{PopCount: -3},
			arguments:     []string{"git@github.com:user/foo/bar"},

			expectedOutput: "git@github.com:user/foo\n",
		},
		{
			name:        "rejects_count_past_root",
			arguments:   []string{"git@github.com:user", "--count", "2"},
			expectError: true,
		},
		{
			name:        "rejects_unparsable_remote",
			arguments:   []string{"nocolon"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			builder := navigate.PopCommandBuilder{}
			if testCase.configuration != nil {
				builder.ConfigurationProvider = func() navigate.Configuration {
					return *testCase.configuration
				}
			}

			command, buildError := builder.Build()
			require.NoError(t, buildError)

			output, executionError := executeCommand(t, command, testCase.arguments...)
			if testCase.expectError {
				require.Error(t, executionError)
				return
			}
			require.NoError(t, executionError)
			require.Equal(t, testCase.expectedOutput, output)
		})
	}
}

func TestJoinCommand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		arguments      []string
		expectedOutput string
		expectError    bool
	}{
		{
			name:           "appends_child_path",
			arguments:      []string{"git@github.com:user/foo", "bar/quux"},
			expectedOutput: "git@github.com:user/foo/bar/quux\n",
		},
		{
			name:           "resolves_parent_segments",
			arguments:      []string{"git@github.com:user/foo/bar", "../quux"},
			expectedOutput: "git@github.com:user/foo/quux\n",
		},
		{
			name:        "rejects_leading_slash",
			arguments:   []string{"git@github.com:user/foo", "/bar"},
			expectError: true,
		},
		{
			name:        "rejects_missing_child_argument",
			arguments:   []string{"git@github.com:user/foo"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			builder := navigate.JoinCommandBuilder{}
			command, buildError := builder.Build()
			require.NoError(t, buildError)

			output, executionError := executeCommand(t, command, testCase.arguments...)
			if testCase.expectError {
				require.Error(t, executionError)
				return
			}
			require.NoError(t, executionError)
			require.Equal(t, testCase.expectedOutput, output)
		})
	}
}
