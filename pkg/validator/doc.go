// Package validator implements the field validation engine used by ProApp forms.
//
// A field carries a declarative FieldRules set (required, email, password,
// minLength). Validate expands the set into Rule values in a fixed order and
// returns the first failure, so a field only ever shows one message:
//
//	res := validator.Validate(
//	    validator.Field{ID: "contact-email", Label: "Email *", Value: v},
//	    validator.FieldRules{Required: true, Email: true},
//	)
//	if !res.Valid {
//	    // res.Message is ready for display, res.Error carries the translation key
//	}
//
// Empty values are owned by the required rule: email, password and minLength
// all accept an empty value so a blank optional field never produces a
// contradictory message.
//
// Rule primitives (RequiredString, SimpleEmail, PasswordPolicy, MinLenString)
// can be combined directly with Apply, which aggregates every failure into
// ValidationErrors, or First, which stops at the first one.
//
// DecorationFor turns a Result into the UI state of the field: success or
// error status, error region visibility and the aria-invalid flag.
package validator
