package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultFieldLabel is used in messages when a field has no resolvable label.
const DefaultFieldLabel = "This field"

// RequiredString validates that a string is not empty after trimming whitespace.
// The label is used for the human-readable message.
func RequiredString(field, label, value string) Rule {
	label = FieldLabel(label)
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        label + " is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": label,
			},
		},
	}
}

// MinLenString fails when 0 < length < min. Empty values pass: emptiness
// belongs to RequiredString. Length is counted in runes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n == 0 || n >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Must be at least %d characters", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// FieldLabel normalizes a form label for use in messages: the trailing
// required marker "*" is removed and an empty label becomes DefaultFieldLabel.
func FieldLabel(label string) string {
	label = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), "*"))
	if label == "" {
		return DefaultFieldLabel
	}
	return label
}
