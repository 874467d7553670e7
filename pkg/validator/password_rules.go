package validator

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// PasswordMinLength is the minimum password length accepted by PasswordPolicy.
const PasswordMinLength = 8

// PasswordPolicy requires at least PasswordMinLength characters with an uppercase
// letter, a lowercase letter and a digit. Symbols are optional.
// Empty values pass so that RequiredString owns the empty case.
func PasswordPolicy(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return len([]rune(value)) >= PasswordMinLength &&
				uppercaseRegex.MatchString(value) &&
				lowercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Password must be at least 8 characters and include uppercase, lowercase and numbers",
			TranslationKey: "validation.password",
			TranslationValues: map[string]any{
				"field": field,
				"min":   PasswordMinLength,
			},
		},
	}
}
