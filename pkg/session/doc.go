// Package session identifies visitors with an anonymous cookie and keeps
// per-visitor boolean flags (MemoryStore or Redis-backed RedisStore).
//
// It is not an authentication system. The only flag the site reads is
// LoggedInFlag, consulted by Guard in front of the dashboard together with the
// logged=true and registered=true query signals that the login and register
// forms append when they navigate there.
package session
