package inspect

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	flagutils "github.com/temirov/giturl/internal/utils/flags"
)

const (
	commandUseConstant              = "parse <url>"
	commandShortDescriptionConstant = "Decompose a remote URL into host and path"
	commandLongDescriptionConstant  = "parse splits a git-style remote URL (http://host/path, https://host/path, or host:path) into its fixed host and navigable path, printing the breakdown together with the canonical host:path rendering."
	commandExampleConstant          = "giturl parse git@github.com:user/foo.git --format json"
	formatFlagNameConstant          = "format"
	formatFlagDescriptionConstant   = "Output format for the breakdown."
	commandExecutedMessageConstant  = "parse command executed"
	logFieldRemoteURLConstant       = "remote_url"
	logFieldOutputFormatConstant    = "output_format"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the parse command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
}

// Build constructs the parse command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	configuration := builder.resolveConfiguration()

	var formatFlagValue string
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, arguments, formatFlagValue)
		},
	}

	formatUsage := flagutils.FormatChoiceUsage(configuration.Format, OutputFormatValues(), formatFlagDescriptionConstant)
	command.Flags().StringVar(&formatFlagValue, formatFlagNameConstant, configuration.Format, formatUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string, formatFlagValue string) error {
	selectedFormat := builder.resolveConfiguration().Format
	if command.Flags().Changed(formatFlagNameConstant) {
		selectedFormat = formatFlagValue
	}

	outputFormat, formatError := ParseOutputFormat(selectedFormat)
	if formatError != nil {
		return formatError
	}

	remoteURL := arguments[0]

	logger := builder.resolveLogger()
	logger.Debug(
		commandExecutedMessageConstant,
		zap.String(logFieldRemoteURLConstant, remoteURL),
		zap.String(logFieldOutputFormatConstant, string(outputFormat)),
	)

	service := NewService(Dependencies{Output: command.OutOrStdout()})
	return service.Inspect(Options{RemoteURL: remoteURL, Format: outputFormat})
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
