// Package clientip resolves the address of the visitor behind reverse
// proxies and carries it in the request context for logging and rate
// limiting.
package clientip
