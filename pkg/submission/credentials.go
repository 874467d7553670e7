package submission

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier decides whether a login attempt is accepted.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// VerifierFunc adapts a function to CredentialVerifier.
type VerifierFunc func(email, password string) bool

func (f VerifierFunc) Verify(email, password string) bool { return f(email, password) }

// Demo credentials accepted by DemoVerifier.
const (
	DemoEmail    = "demo@proapp.com"
	DemoPassword = "Demo123456"
)

// DemoVerifier accepts exactly one email/password pair. It is not a user store.
type DemoVerifier struct {
	email string
	hash  []byte
}

// NewDemoVerifier hashes password with bcrypt at the given cost.
// A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewDemoVerifier(email, password string, cost int) (*DemoVerifier, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}
	return &DemoVerifier{email: email, hash: hash}, nil
}

// MustDemoVerifier returns a verifier for DemoEmail/DemoPassword and panics on failure.
func MustDemoVerifier(cost int) *DemoVerifier {
	v, err := NewDemoVerifier(DemoEmail, DemoPassword, cost)
	if err != nil {
		panic("submission: demo verifier: " + err.Error())
	}
	return v
}

// Verify compares the email exactly and the password against the bcrypt hash.
// Both checks always run so a wrong email and a wrong password take similar time.
func (v *DemoVerifier) Verify(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	return emailOK && passwordOK
}
