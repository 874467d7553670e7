// Package httpserver runs the site's HTTP handler with timeouts from Config,
// stops gracefully on SIGINT, SIGTERM or context cancellation, and provides
// liveness and readiness handlers.
package httpserver
