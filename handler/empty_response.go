package handler

import "net/http"

type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content).
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

type errorResponse struct {
	err error
}

// Render hands the error back to Wrap, which passes it to the configured ErrorHandler.
func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error creates a response that renders nothing and reports err to the error handler.
//
// Example:
//
//	if errors.Is(err, submission.ErrUnknownKind) {
//		return handler.Error(handler.ErrNotFound)
//	}
func Error(err error) Response {
	return errorResponse{err: err}
}
