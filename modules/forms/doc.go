// Package forms serves the contact, register and login forms over Datastar.
//
// Every (session, form kind) pair owns one submission.Flow held by a Registry. The browser
// talks to four endpoints under the mount point:
//
//	GET  /{kind}/state             current form state as signals
//	POST /{kind}/validate/{field}  blur validation of one field
//	POST /{kind}/submit            SSE stream following one submission
//	POST /{kind}/cancel            discard pending effects
//
// Form state travels as signals under "forms.<kind>", keyed by camelCase versions of the
// DOM ids (see SignalName). The submit stream pushes a patch for every state change,
// forwards announcements to the "announcement" signal and ends with a redirect when the
// flow navigates. A client that disconnects mid-stream cancels the flow.
package forms
