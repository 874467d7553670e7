// Package submission runs the lifecycle of the site's three forms (contact,
// register, login) from the moment the user submits until the outcome is
// shown.
//
// A Flow owns one form instance. Submit validates every field with
// pkg/validator, checks the terms flag where the form needs it and, when the
// input is clean, moves the form into Loading for an artificial delay. What
// happens next depends on the Definition's Outcome:
//
//   - OutcomeReset (contact): show success, clear the fields and hide the
//     success indicator again after Delays.SuccessExpiry.
//   - OutcomeRedirect (register): show success and navigate to
//     /dashboard?registered=true after Delays.Redirect.
//   - OutcomeAuthenticate (login): ask the CredentialVerifier; navigate to
//     /dashboard?logged=true or show a generic error that never says which
//     credential was wrong.
//
// Phases are enforced by a pkg/statemachine machine, so a second submit while
// a form is validating or loading fails with ErrSubmissionInProgress. Delays
// go through a pkg/scheduler Group; Cancel (or a new Submit) discards every
// pending effect.
//
// The visible state lives in FormState and only changes through Reduce.
// Subscribers receive each new state; Regions turns a state into the named
// page regions a presenter patches.
//
// # Usage
//
//	flow := submission.NewFlow(submission.LoginForm(),
//	    submission.WithNavigator(nav),
//	    submission.WithLogger(log),
//	)
//	unsubscribe := flow.Subscribe(func(s submission.FormState) {
//	    render(submission.Regions(s))
//	})
//	defer unsubscribe()
//
//	err := flow.Submit(ctx, submission.Submission{Values: values})
//	if errors.Is(err, submission.ErrValidationFailed) {
//	    // field errors are already in the state
//	}
package submission
