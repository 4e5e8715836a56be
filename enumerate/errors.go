package enumerate

import "errors"

// ErrInvalidShape is returned by Run when n or s is outside rule.MaxStates/
// rule.MaxSymbols.
var ErrInvalidShape = errors.New("enumerate: invalid (N, S) shape")
