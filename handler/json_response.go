package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/proapp/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a JSON response. Errors are rendered into the error member
// with a status derived from their type.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	if err, ok := v.(error); ok {
		r.body.Error = errorToDetail(err, &r.status)
	} else {
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail converts err to ErrorDetail and sets the matching status.
func errorToDetail(err error, status *int) *ErrorDetail {
	*status = http.StatusInternalServerError

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{Code: "validation_error", Message: err.Error(), Details: map[string][]string{}}
		for _, f := range verrs.Fields() {
			detail.Details[f] = verrs.Get(f)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	return &ErrorDetail{Code: "internal_error", Message: err.Error()}
}
