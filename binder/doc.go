// Package binder fills typed request structs from HTTP requests.
//
// Binders are plain functions with the signature func(*http.Request, any) error and are
// combined through handler.WithBinders. Signals decodes the Datastar signal payload and Path
// copies router parameters into fields tagged with `path:"name"`.
package binder
