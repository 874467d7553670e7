// Package handler is the typed HTTP layer of the application.
//
// Handlers are written as HandlerFunc[C, R] values: C is a request Context, R the bound
// request struct. Wrap turns them into http.HandlerFunc, running binders, decorators and an
// ErrorHandler around the call. A handler returns a Response which knows how to render
// itself for both plain HTTP and Datastar requests.
//
// Responses:
//
//   - Templ renders a templ component as HTML, or as an element patch over SSE.
//   - Signals patches Datastar signals, or writes them as JSON for other clients.
//   - SSE keeps the connection open and hands the handler a StreamContext for
//     pushing signals, components and redirects as they happen.
//   - Redirect, Empty, JSON and Error cover the rest.
//
// Example:
//
//	type menuRequest struct {
//		Menu site.Menu `json:"menu"`
//	}
//
//	toggle := handler.HandlerFunc[handler.Context, menuRequest](
//		func(ctx handler.Context, req menuRequest) handler.Response {
//			return handler.Signals(map[string]any{"menuOpen": req.Menu.Toggle().Open})
//		},
//	)
//
//	r.Post("/ui/menu/toggle", handler.Wrap(toggle,
//		handler.WithBinders[handler.Context, menuRequest](binder.Signals()),
//		handler.WithErrorHandler[handler.Context, menuRequest](errorHandler),
//	))
//
// NewErrorHandler builds the shared error handler: it logs with the request id, classifies
// HTTPError and validator.ValidationErrors, and renders an error page or a Datastar toast.
package handler
