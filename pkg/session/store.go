package session

import "context"

// LoggedInFlag is the persisted "user is signed in" flag the dashboard guard consults.
const LoggedInFlag = "userLoggedIn"

// FlagStore keeps boolean flags per visitor session.
type FlagStore interface {
	// Get reports the flag value; an unset flag is false with a nil error.
	Get(ctx context.Context, sessionID, flag string) (bool, error)
	Set(ctx context.Context, sessionID, flag string, value bool) error
	Delete(ctx context.Context, sessionID, flag string) error
}

func checkArgs(sessionID, flag string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if flag == "" {
		return ErrEmptyFlag
	}
	return nil
}
