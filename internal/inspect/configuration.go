package inspect

import "strings"

const (
	formatConfigurationKeySuffixConstant = ".format"
)

// Configuration captures the persisted settings for the parse command.
type Configuration struct {
	Format string `mapstructure:"format"`
}

// DefaultConfigurationValues returns configuration defaults keyed under the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + formatConfigurationKeySuffixConstant: string(OutputFormatText),
	}
}

// DefaultConfiguration returns the configuration used when no provider is wired.
func DefaultConfiguration() Configuration {
	return Configuration{Format: string(OutputFormatText)}
}

// Sanitize normalizes whitespace and fills in defaults for empty values.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.Format = strings.TrimSpace(sanitized.Format)
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(OutputFormatText)
	}
	return sanitized
}
