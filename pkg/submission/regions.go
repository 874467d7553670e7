package submission

// Region is a named part of the page whose visibility or enabled state the
// flow controls. IDs follow the markup: contact-loading, login-error,
// register-email-error, register-submit and so on.
type Region struct {
	ID       string `json:"id"`
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled,omitempty"`
	Text     string `json:"text,omitempty"`
}

// TermsRegionID is the error region of the terms checkbox.
const TermsRegionID = "register-terms-error"

// LoadingRegionID returns the id of a form's loading indicator.
func LoadingRegionID(k Kind) string { return string(k) + "-loading" }

// SuccessRegionID returns the id of a form's success indicator.
func SuccessRegionID(k Kind) string { return string(k) + "-success" }

// ErrorRegionID returns the id of a form's generic error region.
func ErrorRegionID(k Kind) string { return string(k) + "-error" }

// SubmitRegionID returns the id of a form's submit control.
func SubmitRegionID(k Kind) string { return string(k) + "-submit" }

// FieldErrorRegionID returns the id of a field's error region.
func FieldErrorRegionID(fieldID string) string { return fieldID + "-error" }

// Regions renders s into the regions its form owns, in a stable order:
// loading, success or login error, one per field, terms, submit.
func Regions(s FormState) []Region {
	regions := make([]Region, 0, len(s.Fields)+4)
	regions = append(regions, Region{ID: LoadingRegionID(s.Kind), Visible: s.LoadingVisible})

	if s.Kind == KindLogin {
		regions = append(regions, Region{ID: ErrorRegionID(s.Kind), Visible: s.LoginErrorVisible})
	} else {
		regions = append(regions, Region{ID: SuccessRegionID(s.Kind), Visible: s.SuccessVisible})
	}

	for _, f := range s.Fields {
		regions = append(regions, Region{
			ID:      FieldErrorRegionID(f.ID),
			Visible: f.Decoration.ErrorVisible,
			Text:    f.Decoration.Message,
		})
	}

	if s.Kind == KindRegister {
		regions = append(regions, Region{ID: TermsRegionID, Visible: s.TermsError != "", Text: s.TermsError})
	}

	regions = append(regions, Region{ID: SubmitRegionID(s.Kind), Visible: true, Disabled: s.SubmitDisabled})
	return regions
}
