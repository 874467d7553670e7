package submission

import (
	"fmt"

	"github.com/dmitrymomot/proapp/pkg/validator"
)

// Kind identifies a form and prefixes its presentation regions.
type Kind string

const (
	KindContact  Kind = "contact"
	KindRegister Kind = "register"
	KindLogin    Kind = "login"
)

// Outcome selects what happens once the loading delay has elapsed.
type Outcome int

const (
	// OutcomeReset shows success and clears the form.
	OutcomeReset Outcome = iota
	// OutcomeRedirect shows success and navigates after a further delay.
	OutcomeRedirect
	// OutcomeAuthenticate verifies credentials and navigates or shows a generic error.
	OutcomeAuthenticate
)

// Definition describes a form: its fields, rules and how a valid submission ends.
type Definition struct {
	Kind          Kind
	Fields        []validator.FieldSpec
	RequiresTerms bool
	Outcome       Outcome
	// ExpireSuccess hides the success indicator after Delays.SuccessExpiry.
	ExpireSuccess bool
	// Destination is used by OutcomeRedirect and OutcomeAuthenticate.
	Destination Destination
	// EmailField and PasswordField name the credential inputs for OutcomeAuthenticate.
	EmailField    string
	PasswordField string
}

// Field returns the field definition with the given id.
func (d Definition) Field(id string) (validator.FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return validator.FieldSpec{}, false
}

// DashboardPage is the navigation target of successful register and login flows.
const DashboardPage = "dashboard"

func ContactForm() Definition {
	return Definition{
		Kind: KindContact,
		Fields: []validator.FieldSpec{
			{ID: "contact-name", Label: "Name *", Rules: validator.FieldRules{Required: true}},
			{ID: "contact-email", Label: "Email *", Rules: validator.FieldRules{Required: true, Email: true}},
			{ID: "contact-subject", Label: "Subject *", Rules: validator.FieldRules{Required: true}},
			{ID: "contact-message", Label: "Message *", Rules: validator.FieldRules{Required: true, MinLength: 10}},
		},
		Outcome:       OutcomeReset,
		ExpireSuccess: true,
	}
}

func RegisterForm() Definition {
	return Definition{
		Kind: KindRegister,
		Fields: []validator.FieldSpec{
			{ID: "register-name", Label: "Full name *", Rules: validator.FieldRules{Required: true, MinLength: 2}},
			{ID: "register-email", Label: "Email *", Rules: validator.FieldRules{Required: true, Email: true}},
			{ID: "register-company", Label: "Company *", Rules: validator.FieldRules{Required: true}},
			{ID: "register-password", Label: "Password *", Rules: validator.FieldRules{Required: true, Password: true}},
		},
		RequiresTerms: true,
		Outcome:       OutcomeRedirect,
		Destination:   Destination{Page: DashboardPage, Signal: "registered"},
	}
}

func LoginForm() Definition {
	return Definition{
		Kind: KindLogin,
		Fields: []validator.FieldSpec{
			{ID: "login-email", Label: "Email *", Rules: validator.FieldRules{Required: true, Email: true}},
			{ID: "login-password", Label: "Password *", Rules: validator.FieldRules{Required: true}},
		},
		Outcome:       OutcomeAuthenticate,
		Destination:   Destination{Page: DashboardPage, Signal: "logged"},
		EmailField:    "login-email",
		PasswordField: "login-password",
	}
}

// Lookup returns the built-in definition for kind.
func Lookup(kind Kind) (Definition, error) {
	switch kind {
	case KindContact:
		return ContactForm(), nil
	case KindRegister:
		return RegisterForm(), nil
	case KindLogin:
		return LoginForm(), nil
	default:
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
