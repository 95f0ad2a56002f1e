package navigate

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	popCommandUseConstant              = "pop <url>"
	popCommandShortDescriptionConstant = "Remove trailing segments from a remote URL path"
	popCommandLongDescriptionConstant  = "pop removes trailing path segments from a git-style remote URL, leaving the host untouched. Removing more segments than the path contains is an error rather than stopping at the root."
	popCommandExampleConstant          = "giturl pop git@github.com:user/foo/bar.git --count 2"
	countFlagNameConstant              = "count"
	countFlagUsageConstant             = "Number of trailing segments to remove."
	popExecutedMessageConstant         = "pop command executed"

	joinCommandUseConstant              = "join <url> <path>"
	joinCommandShortDescriptionConstant = "Resolve a relative path against a remote URL"
	joinCommandLongDescriptionConstant  = "join appends a relative path to a git-style remote URL, resolving \".\" and \"..\" segments. Empty segments and \"..\" chains that climb past the root fail the whole operation."
	joinCommandExampleConstant          = "giturl join git@github.com:user/foo ../bar/quux"
	joinExecutedMessageConstant         = "join command executed"

	logFieldRemoteURLConstant = "remote_url"
	logFieldPopCountConstant  = "pop_count"
	logFieldChildPathConstant = "child_path"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// PopCommandBuilder assembles the pop command.
type PopCommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
}

// Build constructs the pop command.
func (builder *PopCommandBuilder) Build() (*cobra.Command, error) {
	configuration := builder.resolveConfiguration()

	var countFlagValue int
	command := &cobra.Command{
		Use:     popCommandUseConstant,
		Short:   popCommandShortDescriptionConstant,
		Long:    popCommandLongDescriptionConstant,
		Example: popCommandExampleConstant,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, countFlagValue)
		},
	}

	command.Flags().IntVar(&countFlagValue, countFlagNameConstant, configuration.PopCount, countFlagUsageConstant)

	return command, nil
}

func (builder *PopCommandBuilder) run(command *cobra.Command, arguments []string, countFlagValue int) error {
	popCount := builder.resolveConfiguration().PopCount
	if command.Flags().Changed(countFlagNameConstant) {
		popCount = countFlagValue
	}

	remoteURL := arguments[0]

	resolveLogger(builder.LoggerProvider).Debug(
		popExecutedMessageConstant,
		zap.String(logFieldRemoteURLConstant, remoteURL),
		zap.Int(logFieldPopCountConstant, popCount),
	)

	renderedURL, popError := NewService().Pop(PopOptions{RemoteURL: remoteURL, Count: popCount})
	if popError != nil {
		return popError
	}

	fmt.Fprintln(command.OutOrStdout(), renderedURL)
	return nil
}

func (builder *PopCommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

// JoinCommandBuilder assembles the join command.
type JoinCommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the join command.
func (builder *JoinCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     joinCommandUseConstant,
		Short:   joinCommandShortDescriptionConstant,
		Long:    joinCommandLongDescriptionConstant,
		Example: joinCommandExampleConstant,
		Args:    cobra.ExactArgs(2),
		RunE:    builder.run,
	}

	return command, nil
}

func (builder *JoinCommandBuilder) run(command *cobra.Command, arguments []string) error {
	remoteURL := arguments[0]
	childPath := arguments[1]

	resolveLogger(builder.LoggerProvider).Debug(
		joinExecutedMessageConstant,
		zap.String(logFieldRemoteURLConstant, remoteURL),
		zap.String(logFieldChildPathConstant, childPath),
	)

	renderedURL, joinError := NewService().Join(JoinOptions{RemoteURL: remoteURL, ChildPath: childPath})
	if joinError != nil {
		return joinError
	}

	fmt.Fprintln(command.OutOrStdout(), renderedURL)
	return nil
}

func resolveLogger(loggerProvider LoggerProvider) *zap.Logger {
	if loggerProvider == nil {
		return zap.NewNop()
	}
	logger := loggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
