package submission

import "time"

// Delays are the artificial latencies of the simulated submission.
type Delays struct {
	Submit        time.Duration `env:"FORM_SUBMIT_DELAY" envDefault:"2s"`
	Login         time.Duration `env:"FORM_LOGIN_DELAY" envDefault:"1500ms"`
	Redirect      time.Duration `env:"FORM_REDIRECT_DELAY" envDefault:"2s"`
	SuccessExpiry time.Duration `env:"FORM_SUCCESS_TTL" envDefault:"5s"`
}

func DefaultDelays() Delays {
	return Delays{
		Submit:        2000 * time.Millisecond,
		Login:         1500 * time.Millisecond,
		Redirect:      2000 * time.Millisecond,
		SuccessExpiry: 5000 * time.Millisecond,
	}
}

// loading returns the loading delay for the outcome.
func (d Delays) loading(o Outcome) time.Duration {
	if o == OutcomeAuthenticate {
		return d.Login
	}
	return d.Submit
}
