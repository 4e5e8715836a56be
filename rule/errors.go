package rule

import "errors"

// Sentinel errors for TNF parsing. Callers branch with errors.Is; Parse
// itself never panics and returns the empty Rule alongside these.
var (
	// ErrEmptyCode indicates the TNF string was empty after trimming.
	ErrEmptyCode = errors.New("rule: empty TNF code")

	// ErrRowLength indicates a group's triple count differs from the
	// first group's, or is not a multiple of 3 characters.
	ErrRowLength = errors.New("rule: inconsistent row length")

	// ErrBadSymbol indicates a written symbol digit is out of [0, S), where
	// S is the first group's triple count.
	ErrBadSymbol = errors.New("rule: symbol out of range")

	// ErrBadDirection indicates a direction character was not 'L' or 'R'.
	ErrBadDirection = errors.New("rule: invalid direction")

	// ErrBadState indicates a target state letter is out of [A, A+N).
	ErrBadState = errors.New("rule: target state out of range")
)
