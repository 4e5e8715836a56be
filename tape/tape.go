package tape

import "github.com/katalvlaran/turingbeaver/rule"

// Peek returns the symbol under the head. O(1).
func (t *Tape) Peek() rule.Symbol {
	return t.data[t.head+t.offset]
}

// Step writes tr.Symbol under the head, updates the carried state to
// tr.TargetState, and moves the head one cell per tr.Dir. It returns
// true iff the touched region grew by one cell as a result (the head
// moved past a previously untouched edge).
//
// Growth is amortised O(1): a left grow prepends a block of zeros equal
// to the current buffer length (doubling it) and bumps offset by the
// same amount, so absolute head coordinates never shift; a right grow
// appends a single cell and lets append's own amortisation do the rest.
func (t *Tape) Step(tr rule.Transition) (grew bool) {
	t.data[t.head+t.offset] = tr.Symbol
	t.state = tr.TargetState

	if tr.Dir == rule.Left {
		t.head--
		if t.head < t.leftEdge {
			t.leftEdge = t.head
			grew = true
		}
		if t.head+t.offset < 0 {
			t.growLeft()
		}
	} else {
		t.head++
		if t.head+t.offset >= len(t.data) {
			t.data = append(t.data, 0)
			grew = true
		}
	}

	return grew
}

// growLeft prepends len(t.data) zero cells and shifts offset to match,
// doubling the buffer while keeping absolute head coordinates stable.
func (t *Tape) growLeft() {
	n := len(t.data)
	grown := make([]rule.Symbol, n+n)
	copy(grown[n:], t.data)
	t.data = grown
	t.offset += n
}

// Segment extracts the inclusive window [start, stop] as a TapeSegment,
// with RelativeHead = head - start. Coordinates outside the touched
// region ([leftEdge, RightEdge()]) read as zero. start must be <= stop;
// callers that violate this get an empty Data slice.
func (t *Tape) Segment(start, stop int) TapeSegment {
	if start > stop {
		return TapeSegment{State: t.state, RelativeHead: t.head - start}
	}

	data := make([]rule.Symbol, stop-start+1)
	for i := start; i <= stop; i++ {
		if i < t.leftEdge || i > t.RightEdge() {
			continue // reads as zero, already the slice's zero value
		}
		data[i-start] = t.data[i+t.offset]
	}

	return TapeSegment{
		State:        t.state,
		Data:         data,
		RelativeHead: t.head - start,
	}
}

// Blank reports whether every touched cell is zero.
func (t *Tape) Blank() bool {
	for _, v := range t.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy sharing no backing storage with t.
func (t *Tape) Clone() *Tape {
	data := make([]rule.Symbol, len(t.data))
	copy(data, t.data)

	return &Tape{
		data:     data,
		head:     t.head,
		offset:   t.offset,
		leftEdge: t.leftEdge,
		state:    t.state,
	}
}

// Equal reports whether two segments carry the same state, relative head,
// and data, which is the contract used to detect repeated macro-level
// tape behaviour.
func (s TapeSegment) Equal(other TapeSegment) bool {
	if s.State != other.State || s.RelativeHead != other.RelativeHead {
		return false
	}
	if len(s.Data) != len(other.Data) {
		return false
	}
	for i := range s.Data {
		if s.Data[i] != other.Data[i] {
			return false
		}
	}

	return true
}

// Key returns a comparable string suitable as a map key, mixing State,
// RelativeHead, and every data byte, for use by macro-transition caches
// that memoise repeated segment comparisons.
func (s TapeSegment) Key() string {
	b := make([]byte, 0, len(s.Data)+2*10+2)
	b = appendInt(b, s.State)
	b = append(b, ':')
	b = appendInt(b, s.RelativeHead)
	b = append(b, ':')
	for _, v := range s.Data {
		b = append(b, byte(v)+'0')
	}

	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}
