package tape

import "github.com/katalvlaran/turingbeaver/rule"

// growthSlack is the number of spare cells the initial buffer carries so
// a freshly constructed Tape can absorb a few steps before its first
// grow; kept small since growth itself is amortised O(1) regardless.
const growthSlack = 4

// Tape is a two-sided, growing sequence of symbols carrying the state
// most recently associated with its head. The zero value is not usable;
// construct with New.
type Tape struct {
	data     []rule.Symbol
	head     int // signed absolute coordinate of the cell under the head
	offset   int // data[head+offset] is the cell under the head
	leftEdge int // minimum head has ever taken
	state    int // current machine state, carried so segments self-describe
}

// New returns a Tape with a single touched cell (coordinate 0, value 0)
// and the given starting state.
func New(startState int) *Tape {
	return &Tape{
		data:     make([]rule.Symbol, 1, 1+growthSlack),
		head:     0,
		offset:   0,
		leftEdge: 0,
		state:    startState,
	}
}

// Head returns the head's current absolute coordinate.
func (t *Tape) Head() int { return t.head }

// State returns the state carried by the tape.
func (t *Tape) State() int { return t.state }

// LeftEdge returns the furthest-left coordinate ever touched.
func (t *Tape) LeftEdge() int { return t.leftEdge }

// RightEdge returns the furthest-right coordinate ever touched, derived
// as len(data) - offset - 1.
func (t *Tape) RightEdge() int { return len(t.data) - t.offset - 1 }

// Len returns the number of touched cells.
func (t *Tape) Len() int { return t.RightEdge() - t.leftEdge + 1 }

// TapeSegment is a finite window of tape plus the head's position
// relative to the window and the state at the window's timestamp.
// Equality and hashing (via Key) treat two segments as equal iff their
// State, RelativeHead, and Data all match.
type TapeSegment struct {
	State        int
	Data         []rule.Symbol
	RelativeHead int
}

// MacroTransition records a jump between two tape segments taken over a
// number of elementary steps. Equal ignores Steps: it exists to let
// deciders detect "the same macro-level move happened again", regardless
// of how many elementary steps it took the first and second time.
type MacroTransition struct {
	From  TapeSegment
	To    TapeSegment
	Steps int
}

// Equal reports whether m and other describe the same macro transition,
// ignoring Steps.
func (m MacroTransition) Equal(other MacroTransition) bool {
	return m.From.Equal(other.From) && m.To.Equal(other.To)
}
