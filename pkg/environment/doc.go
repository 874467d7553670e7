// Package environment names the deployment stage (development, staging,
// production) and carries it through context.Context.
//
// Parse turns an APP_ENV value into an Environment; the logger factory and the
// HTTP error handler use it to choose between verbose and quiet behaviour.
// Middleware stores the value on each request so handlers can read it back
// with FromContext.
package environment
