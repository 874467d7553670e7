package validator

import "regexp"

// emailPart excludes '@' and whitespace the way browsers define it, which
// includes the Unicode space separators and BOM that RE2's \s does not.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

// emailRegex is a structural check only: something@something.something
// with no whitespace or extra '@'. It is not RFC 5322.
var emailRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// SimpleEmail validates the structural shape of an email address.
// Empty values pass so that RequiredString owns the empty case.
func SimpleEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid email",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
