package submission

import "errors"

var (
	// ErrValidationFailed is joined with the validator.ValidationErrors of the failing fields.
	ErrValidationFailed = errors.New("form validation failed")
	// ErrTermsNotAccepted is returned when a form requires terms and they were not accepted.
	ErrTermsNotAccepted = errors.New("terms not accepted")
	// ErrAuthenticationRejected is reported when credentials do not match.
	// It never says which credential was wrong.
	ErrAuthenticationRejected = errors.New("authentication rejected")
	// ErrSubmissionInProgress is returned when a form is submitted while it is validating or loading.
	ErrSubmissionInProgress = errors.New("submission already in progress")
	// ErrUnknownKind is returned for a form kind without a definition.
	ErrUnknownKind = errors.New("unknown form kind")
	// ErrUnknownField is returned when a field id is not part of the form.
	ErrUnknownField = errors.New("unknown form field")
)
