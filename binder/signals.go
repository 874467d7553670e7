package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// signalsQueryParam is the query parameter Datastar uses for GET requests.
const signalsQueryParam = "datastar"

// Signals creates a binder that decodes Datastar signals into the target.
// GET requests carry signals in the "datastar" query parameter, other methods in the body.
// A request without any signals is reported as ErrBinderNotApplicable.
//
// Example:
//
//	type submitRequest struct {
//		Values map[string]string `json:"values"`
//		Terms  bool              `json:"terms"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet {
			if !r.URL.Query().Has(signalsQueryParam) {
				return ErrBinderNotApplicable
			}
		} else if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
			return ErrBinderNotApplicable
		}

		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}
