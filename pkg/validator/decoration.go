package validator

// Status is the visual state of a field.
type Status string

const (
	StatusNone    Status = ""
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Decoration describes how a validated field is shown: its status class,
// whether its error region is visible and the aria-invalid flag.
// A field is never success and error at once because Status is a single value.
type Decoration struct {
	Status       Status `json:"status"`
	ErrorVisible bool   `json:"errorVisible"`
	Message      string `json:"message,omitempty"`
	AriaInvalid  *bool  `json:"ariaInvalid,omitempty"`
}

// DecorationFor maps a Result to its field decoration.
func DecorationFor(res Result) Decoration {
	invalid := !res.Valid
	if res.Valid {
		return Decoration{Status: StatusSuccess, AriaInvalid: &invalid}
	}
	return Decoration{
		Status:       StatusError,
		ErrorVisible: true,
		Message:      res.Message,
		AriaInvalid:  &invalid,
	}
}
