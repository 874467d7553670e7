package session

import "errors"

var (
	// ErrEmptySessionID is returned when a store is called without a session id.
	ErrEmptySessionID = errors.New("session.empty_id")

	// ErrEmptyFlag is returned when a store is called without a flag name.
	ErrEmptyFlag = errors.New("session.empty_flag")

	// ErrStoreUnavailable wraps backend failures.
	ErrStoreUnavailable = errors.New("session.store_unavailable")

	// ErrNoSession indicates the request carries no session id.
	ErrNoSession = errors.New("session.not_found")
)
