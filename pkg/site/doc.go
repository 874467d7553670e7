// Package site holds the small pieces of page behaviour shared by every page:
// which navigation link is current, the FAQ accordion and the mobile menu.
//
// Accordion and Menu are plain values. A Datastar request carries the current
// value in its signals; the handler applies one transition and patches the
// result back.
package site
