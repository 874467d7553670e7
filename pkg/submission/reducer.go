package submission

import "github.com/dmitrymomot/proapp/pkg/validator"

// Event is an input to Reduce.
type Event interface {
	apply(s *FormState)
}

// PhaseChanged records the phase the state machine moved to.
type PhaseChanged struct{ Phase Phase }

// FieldValidated stores the submitted value and its validation verdict.
type FieldValidated struct {
	ID     string
	Value  string
	Result validator.Result
}

// TermsChecked stores the terms checkbox and its error text (empty when accepted).
type TermsChecked struct {
	Accepted bool
	Message  string
}

// LoadingStarted shows the loading indicator and disables the submit control.
type LoadingStarted struct{}

// LoadingFinished hides the loading indicator and re-enables the submit control.
type LoadingFinished struct{}

// SuccessShown shows the success indicator.
type SuccessShown struct{}

// SuccessExpired hides the success indicator.
type SuccessExpired struct{}

// FormReset clears every field value and validation decoration.
type FormReset struct{}

// LoginRejected shows the generic login error.
type LoginRejected struct{}

// Navigated records that the form sent the user elsewhere.
type Navigated struct{ Destination Destination }

// Cancelled discards transient indicators after pending effects were dropped.
type Cancelled struct{}

func (e PhaseChanged) apply(s *FormState) { s.Phase = e.Phase }

func (e FieldValidated) apply(s *FormState) {
	for i := range s.Fields {
		if s.Fields[i].ID == e.ID {
			s.Fields[i].Value = e.Value
			s.Fields[i].Decoration = validator.DecorationFor(e.Result)
			return
		}
	}
}

func (e TermsChecked) apply(s *FormState) {
	s.TermsAccepted = e.Accepted
	if e.Accepted {
		s.TermsError = ""
		return
	}
	s.TermsError = e.Message
}

func (LoadingStarted) apply(s *FormState) {
	s.LoadingVisible = true
	s.SubmitDisabled = true
	s.LoginErrorVisible = false
	s.Destination = nil
}

func (LoadingFinished) apply(s *FormState) {
	s.LoadingVisible = false
	s.SubmitDisabled = false
}

func (SuccessShown) apply(s *FormState)   { s.SuccessVisible = true }
func (SuccessExpired) apply(s *FormState) { s.SuccessVisible = false }
func (LoginRejected) apply(s *FormState)  { s.LoginErrorVisible = true }

func (FormReset) apply(s *FormState) {
	for i := range s.Fields {
		s.Fields[i].Value = ""
		s.Fields[i].Decoration = validator.Decoration{}
	}
	s.TermsAccepted = false
	s.TermsError = ""
}

func (e Navigated) apply(s *FormState) {
	d := e.Destination
	s.Destination = &d
}

func (Cancelled) apply(s *FormState) {
	s.LoadingVisible = false
	s.SubmitDisabled = false
	s.SuccessVisible = false
}

// Reduce returns the state that results from applying events in order.
// The input state is not modified.
func Reduce(s FormState, events ...Event) FormState {
	if len(events) == 0 {
		return s
	}
	next := s.clone()
	for _, ev := range events {
		if ev != nil {
			ev.apply(&next)
		}
	}
	next.Version++
	return next
}
