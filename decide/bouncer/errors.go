package bouncer

import "errors"

// ErrInvalidDegree is returned when a caller explicitly supplies a
// negative MaxDegree budget; the degree search requires degree >= 1.
var ErrInvalidDegree = errors.New("bouncer: max degree must be >= 1")
