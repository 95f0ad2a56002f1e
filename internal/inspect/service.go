package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temirov/giturl/internal/giturl"
)

const (
	outputFormatTextStringConstant      = "text"
	outputFormatJSONStringConstant      = "json"
	outputFormatYAMLStringConstant      = "yaml"
	unsupportedFormatTemplateConstant   = "unsupported output format: %s"
	outputWriterMissingMessageConstant  = "output writer not configured"
	textBreakdownTemplateConstant       = "host: %s\npath: %s\nurl: %s\n"
	jsonMarshalErrorTemplateConstant    = "failed to encode breakdown as JSON: %w"
	yamlMarshalErrorTemplateConstant    = "failed to encode breakdown as YAML: %w"
	breakdownWriteErrorTemplateConstant = "failed to write breakdown: %w"
	jsonIndentPrefixConstant            = ""
	jsonIndentConstant                  = "  "
	trailingNewlineConstant             = "\n"
)

// ErrOutputWriterNotConfigured indicates the output writer dependency was missing.
var ErrOutputWriterNotConfigured = errors.New(outputWriterMissingMessageConstant)

// OutputFormat enumerates supported breakdown renderings.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatText OutputFormat = OutputFormat(outputFormatTextStringConstant)
	OutputFormatJSON OutputFormat = OutputFormat(outputFormatJSONStringConstant)
	OutputFormatYAML OutputFormat = OutputFormat(outputFormatYAMLStringConstant)
)

// ParseOutputFormat converts a textual format selection into an OutputFormat.
func ParseOutputFormat(value string) (OutputFormat, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	switch normalizedValue {
	case outputFormatTextStringConstant:
		return OutputFormatText, nil
	case outputFormatJSONStringConstant:
		return OutputFormatJSON, nil
	case outputFormatYAMLStringConstant:
		return OutputFormatYAML, nil
	default:
		return OutputFormat(""), fmt.Errorf(unsupportedFormatTemplateConstant, value)
	}
}

// OutputFormatValues lists the accepted format selections for flag usage strings.
func OutputFormatValues() []string {
	return []string{outputFormatTextStringConstant, outputFormatJSONStringConstant, outputFormatYAMLStringConstant}
}

// Breakdown describes the decomposed remote URL surfaced to callers.
type Breakdown struct {
	Host      string `json:"host" yaml:"host"`
	Path      string `json:"path" yaml:"path"`
	Canonical string `json:"url" yaml:"url"`
}

// Dependencies supplies collaborators required by the service.
type Dependencies struct {
	Output io.Writer
}

// Options configures a single inspection.
type Options struct {
	RemoteURL string
	Format    OutputFormat
}

// Service parses remote URLs and writes their breakdown to the configured writer.
type Service struct {
	dependencies Dependencies
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) *Service {
	return &Service{dependencies: dependencies}
}

// Inspect parses the remote URL and renders its breakdown in the requested format.
func (service *Service) Inspect(options Options) error {
	if service.dependencies.Output == nil {
		return ErrOutputWriterNotConfigured
	}

	parsedURL, parseError := giturl.Parse(options.RemoteURL)
	if parseError != nil {
		return parseError
	}

	breakdown := Breakdown{
		Host:      parsedURL.Host(),
		Path:      parsedURL.Path(),
		Canonical: parsedURL.String(),
	}

	renderedBreakdown, renderError := renderBreakdown(breakdown, options.Format)
	if renderError != nil {
		return renderError
	}

	if _, writeError := io.WriteString(service.dependencies.Output, renderedBreakdown); writeError != nil {
		return fmt.Errorf(breakdownWriteErrorTemplateConstant, writeError)
	}

	return nil
}

func renderBreakdown(breakdown Breakdown, format OutputFormat) (string, error) {
	switch format {
	case OutputFormatText:
		return fmt.Sprintf(textBreakdownTemplateConstant, breakdown.Host, breakdown.Path, breakdown.Canonical), nil
	case OutputFormatJSON:
		encodedBytes, marshalError := json.MarshalIndent(breakdown, jsonIndentPrefixConstant, jsonIndentConstant)
		if marshalError != nil {
			return "", fmt.Errorf(jsonMarshalErrorTemplateConstant, marshalError)
		}
		return string(encodedBytes) + trailingNewlineConstant, nil
	case OutputFormatYAML:
		encodedBytes, marshalError := yaml.Marshal(breakdown)
		if marshalError != nil {
			return "", fmt.Errorf(yamlMarshalErrorTemplateConstant, marshalError)
		}
		return string(encodedBytes), nil
	default:
		return "", fmt.Errorf(unsupportedFormatTemplateConstant, string(format))
	}
}
