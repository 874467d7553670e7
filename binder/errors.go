package binder

import "errors"

// Common binding errors
var (
	ErrInvalidPath    = errors.New("invalid path parameter")
	ErrInvalidSignals = errors.New("invalid datastar signals")
	// ErrBinderNotApplicable is returned by a binder that has nothing to read
	// from the request. handler.Wrap skips such binders.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
