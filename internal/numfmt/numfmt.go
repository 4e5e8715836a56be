// Package numfmt parses the step and period flags the CLI accepts,
// including scientific notation ("1e8") for large step budgets.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseUint parses s as a non-negative integer, accepting both plain
// decimal ("100000000") and scientific notation ("1e8"). It rejects
// fractional results (e.g. "1.5e1" is not an integer) and values that
// overflow int64.
func ParseUint(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("numfmt: empty value")
	}

	if !strings.ContainsAny(s, "eE.") {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("numfmt: %q: %w", s, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("numfmt: %q is negative", s)
		}

		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("numfmt: %q: %w", s, err)
	}
	if f < 0 || math.Trunc(f) != f {
		return 0, fmt.Errorf("numfmt: %q is not a non-negative integer", s)
	}
	if f > math.MaxInt64 {
		return 0, fmt.Errorf("numfmt: %q overflows int64", s)
	}

	return int64(f), nil
}
