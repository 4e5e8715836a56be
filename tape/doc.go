// Package tape implements the two-sided, amortised-O(1) growing bit-level
// store described in component B: a contiguous buffer of touched cells,
// a signed head coordinate, and the offset that maps the head onto the
// buffer. Growth never shifts absolute head coordinates: a left-side grow
// prepends a doubled block of zeros and bumps offset by the same amount,
// a right-side grow appends a single cell.
//
// Complexity: Peek is O(1). Step is amortised O(1): growth happens at
// most once per call, and when it does the left-growth cost is amortised
// by doubling exactly like append() amortises on the right. Segment is
// O(stop-start).
//
// Errors: this package has no sentinel errors. Segment and Peek clip
// silently to zero outside the touched region, per spec (out-of-range
// reads are defined, not exceptional).
package tape
