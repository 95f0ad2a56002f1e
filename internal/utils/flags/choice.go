package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderPrefixConstant = "<"
	choicePlaceholderSuffixConstant = ">"
	choiceSeparatorConstant         = "|"
	choiceUsageTemplateConstant     = "`%s` %s"
)

// FormatChoiceUsage builds a flag usage string listing the accepted choices
// with the default option capitalized inside the placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))

	displayChoices := make([]string, 0, len(choices))
	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		if len(trimmedChoice) == 0 {
			continue
		}
		if strings.ToLower(trimmedChoice) == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		displayChoices = append(displayChoices, trimmedChoice)
	}

	placeholder := choicePlaceholderPrefixConstant + strings.Join(displayChoices, choiceSeparatorConstant) + choicePlaceholderSuffixConstant
	return strings.TrimSpace(fmt.Sprintf(choiceUsageTemplateConstant, placeholder, description))
}
