package navigate

const (
	popCountConfigurationKeySuffixConstant = ".pop_count"
	defaultPopCountConstant                = 1
)

// Configuration captures the persisted settings for the navigation commands.
type Configuration struct {
	PopCount int `mapstructure:"pop_count"`
}

// DefaultConfigurationValues returns configuration defaults keyed under the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + popCountConfigurationKeySuffixConstant: defaultPopCountConstant,
	}
}

// DefaultConfiguration returns the configuration used when no provider is wired.
func DefaultConfiguration() Configuration {
	return Configuration{PopCount: defaultPopCountConstant}
}

// Sanitize clamps out-of-range values to usable defaults.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	if sanitized.PopCount < 1 {
		sanitized.PopCount = defaultPopCountConstant
	}
	return sanitized
}
