package handler

import (
	"net/http"
)

// SSEHandler is a function that handles Server-Sent Events streaming.
// It receives a StreamContext with methods for sending components, signals and redirects.
//
// The handler should run for the lifetime of the SSE connection. The connection is
// closed when the handler returns or the client disconnects.
//
// Example:
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		states := make(chan submission.FormState, 8)
//		unsubscribe := flow.Subscribe(func(s submission.FormState) { states <- s })
//		defer unsubscribe()
//
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case s := <-states:
//				if err := stream.SendSignals(presenter.Signals(s)); err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render validates the DataStar connection and executes the SSE handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	ctx := &streamContext{
		Context: NewContext(w, r),
		sse:     NewSSE(w, r),
	}
	return s.handler(ctx)
}

// SSE creates a new SSE response that runs the given handler.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
