package forms

import "errors"

var (
	// ErrNoSession is returned when a request reaches the forms module without a session id.
	ErrNoSession = errors.New("forms: request has no session")
	// ErrNoStream is reported to the flow when it navigates while no client stream is attached.
	ErrNoStream = errors.New("forms: no client stream attached")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("forms: invalid configuration")
)
