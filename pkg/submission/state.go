package submission

import (
	"net/url"

	"github.com/dmitrymomot/proapp/pkg/validator"
)

// Phase is the stage a form instance is in.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseLoading    Phase = "loading"
	PhaseSuccess    Phase = "success"
	PhaseError      Phase = "error"
)

// FieldState is the presentation state of one input.
type FieldState struct {
	ID         string               `json:"id"`
	Label      string               `json:"label"`
	Value      string               `json:"value"`
	Decoration validator.Decoration `json:"decoration"`
}

// Destination is a navigation target plus the query signal it carries.
type Destination struct {
	Page   string `json:"page"`
	Signal string `json:"signal"`
}

// URL renders the destination as a site-relative URL, e.g. /dashboard?logged=true.
func (d Destination) URL() string {
	u := url.URL{Path: "/" + d.Page}
	if d.Signal != "" {
		u.RawQuery = url.Values{d.Signal: {"true"}}.Encode()
	}
	return u.String()
}

// FormState is the complete, explicit state of one form instance.
// It is only ever replaced through Reduce; subscribers receive copies.
type FormState struct {
	ID                string       `json:"id"`
	Kind              Kind         `json:"kind"`
	Phase             Phase        `json:"phase"`
	Fields            []FieldState `json:"fields"`
	TermsAccepted     bool         `json:"termsAccepted"`
	TermsError        string       `json:"termsError,omitempty"`
	LoadingVisible    bool         `json:"loadingVisible"`
	SubmitDisabled    bool         `json:"submitDisabled"`
	SuccessVisible    bool         `json:"successVisible"`
	LoginErrorVisible bool         `json:"loginErrorVisible"`
	Destination       *Destination `json:"destination,omitempty"`
	Version           uint64       `json:"version"`
}

// Field returns the state of the field with the given id.
func (s FormState) Field(id string) (FieldState, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldState{}, false
}

// Values returns the current field values keyed by field id.
func (s FormState) Values() map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f.ID] = f.Value
	}
	return values
}

// Settled reports whether the form has nothing left to do on its own:
// no loading in progress and no visible success waiting to expire or redirect.
func (s FormState) Settled() bool {
	switch s.Phase {
	case PhaseLoading, PhaseValidating:
		return false
	case PhaseSuccess:
		return s.Destination != nil || !s.SuccessVisible
	default:
		return true
	}
}

// NewState builds the initial state for a definition.
func NewState(id string, def Definition) FormState {
	fields := make([]FieldState, len(def.Fields))
	for i, f := range def.Fields {
		fields[i] = FieldState{ID: f.ID, Label: f.Label}
	}
	return FormState{
		ID:     id,
		Kind:   def.Kind,
		Phase:  PhaseIdle,
		Fields: fields,
	}
}

func (s FormState) clone() FormState {
	out := s
	out.Fields = make([]FieldState, len(s.Fields))
	copy(out.Fields, s.Fields)
	if s.Destination != nil {
		d := *s.Destination
		out.Destination = &d
	}
	return out
}
