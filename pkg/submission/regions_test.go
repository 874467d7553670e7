package submission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/proapp/pkg/submission"
	"github.com/dmitrymomot/proapp/pkg/validator"
)

func regionsByID(rs []submission.Region) map[string]submission.Region {
	out := make(map[string]submission.Region, len(rs))
	for _, r := range rs {
		out[r.ID] = r
	}
	return out
}

func TestRegions_Login(t *testing.T) {
	t.Parallel()

	s := submission.Reduce(submission.NewState("f", submission.LoginForm()),
		submission.LoadingFinished{},
		submission.LoginRejected{},
	)
	rs := submission.Regions(s)

	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{
		"login-loading", "login-error", "login-email-error", "login-password-error", "login-submit",
	}, ids)

	byID := regionsByID(rs)
	assert.True(t, byID["login-error"].Visible)
	assert.False(t, byID["login-loading"].Visible)
	assert.False(t, byID["login-submit"].Disabled)
}

func TestRegions_Register(t *testing.T) {
	t.Parallel()

	s := submission.Reduce(submission.NewState("f", submission.RegisterForm()),
		submission.FieldValidated{ID: "register-email", Value: "x", Result: validator.Result{
			Message: "Please enter a valid email",
			Error:   &validator.ValidationError{Field: "register-email"},
		}},
		submission.TermsChecked{Message: "You must accept the terms to continue"},
		submission.LoadingStarted{},
	)
	byID := regionsByID(submission.Regions(s))

	assert.True(t, byID["register-loading"].Visible)
	assert.True(t, byID["register-submit"].Disabled)
	assert.False(t, byID["register-success"].Visible)

	email := byID["register-email-error"]
	assert.True(t, email.Visible)
	assert.Equal(t, "Please enter a valid email", email.Text)

	terms, ok := byID[submission.TermsRegionID]
	require.True(t, ok)
	assert.True(t, terms.Visible)
	assert.Equal(t, "You must accept the terms to continue", terms.Text)

	_, ok = byID["register-error"]
	assert.False(t, ok)
}

func TestRegions_ContactHasNoTerms(t *testing.T) {
	t.Parallel()

	byID := regionsByID(submission.Regions(submission.NewState("f", submission.ContactForm())))
	_, ok := byID[submission.TermsRegionID]
	assert.False(t, ok)
	_, ok = byID["contact-success"]
	assert.True(t, ok)
	assert.Len(t, byID, 7)
}
