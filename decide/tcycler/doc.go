// Package tcycler detects translated cyclers: machines whose tape
// window around the head repeats after p steps up to a fixed signed
// spatial displacement, rather than returning to the exact same head
// coordinate.
//
// The search is gated by tape-edge anchoring: outer rounds advance only
// to moments where the tape just grew, since a
// translated-cycle candidate must re-extend the tape in the same
// direction and re-enter the same state. This keeps the expensive
// window-equality check behind a cheap integer/bool predicate.
//
// Errors: Find never returns an error; see decide/cycler's doc comment
// for the shared failure-semantics rationale.
package tcycler
