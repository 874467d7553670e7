package handler

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming capabilities.
// It provides methods to send components, signals and redirects through an established SSE connection.
type StreamContext interface {
	Context

	// SendComponent sends a templ component with rendering options.
	//
	// Example:
	//
	//	err := stream.SendComponent(
	//		pages.Toast(msg),
	//		handler.WithTarget("#toast-container"),
	//		handler.WithPatchMode(handler.PatchPrepend),
	//	)
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendSignals merges values into the frontend signals.
	//
	// Example:
	//
	//	err := stream.SendSignals(map[string]any{
	//		"loginLoading": true,
	//		"loginSubmitDisabled": true,
	//	})
	SendSignals(signals map[string]any) error

	// Redirect asks the browser to navigate to url.
	Redirect(url string) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) Redirect(url string) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.Redirect(url)
}
