package rule

import (
	"fmt"
	"strings"
)

// Parse decodes a TNF string into a Rule.
//
// Grammar: N groups separated by '_'; each group has S triples; each
// triple is either "---" (halt) or "dSt" where d ∈ {0..S-1} is the
// written symbol, S ∈ {L,R} is the direction, and t ∈ {A,B,...} names
// the target state. Groups must all have the same triple count (this
// fixes S); that count also fixes N as the number of groups.
//
// On any violation Parse returns the empty Rule (NumStates()==0) and a
// sentinel error wrapped with positional context. Leading/trailing
// whitespace is trimmed before parsing.
func Parse(code string) (Rule, error) {
	s := strings.TrimSpace(code)
	if s == "" {
		return Rule{}, ErrEmptyCode
	}

	groups := strings.Split(s, "_")
	n := len(groups)
	numSymbols := -1
	cells := make([]Transition, 0, n*6)

	for gi, group := range groups {
		if len(group)%3 != 0 {
			return Rule{}, fmt.Errorf("rule: group %d has length %d, not a multiple of 3: %w", gi, len(group), ErrRowLength)
		}
		width := len(group) / 3
		if numSymbols == -1 {
			numSymbols = width
		} else if width != numSymbols {
			return Rule{}, fmt.Errorf("rule: group %d has %d symbols, want %d: %w", gi, width, numSymbols, ErrRowLength)
		}

		for j := 0; j < width; j++ {
			triple := group[j*3 : j*3+3]
			t, err := parseTriple(triple, n, numSymbols)
			if err != nil {
				return Rule{}, fmt.Errorf("rule: group %d symbol %d (%q): %w", gi, j, triple, err)
			}
			cells = append(cells, t)
		}
	}

	if numSymbols <= 0 || numSymbols > MaxSymbols {
		return Rule{}, fmt.Errorf("rule: %d symbols out of range: %w", numSymbols, ErrRowLength)
	}

	return Rule{n: n, s: numSymbols, cells: cells}, nil
}

// parseTriple decodes one "dSt" or "---" triple. n is the number of
// states already fixed by the group count, used to range-check t; s is
// the symbol count fixed by the first group's width, used to range-check d.
func parseTriple(triple string, n, s int) (Transition, error) {
	if triple == "---" {
		return haltTransition, nil
	}

	d := triple[0]
	if d < '0' || d > '9' || int(d-'0') >= s {
		return Transition{}, fmt.Errorf("%w: %q", ErrBadSymbol, string(d))
	}

	var dir Direction
	switch triple[1] {
	case 'L':
		dir = Left
	case 'R':
		dir = Right
	default:
		return Transition{}, fmt.Errorf("%w: %q", ErrBadDirection, string(triple[1]))
	}

	st := triple[2]
	if st < 'A' || int(st-'A') >= n {
		return Transition{}, fmt.Errorf("%w: %q", ErrBadState, string(st))
	}

	return Transition{Symbol: Symbol(d - '0'), Dir: dir, TargetState: int(st - 'A')}, nil
}

// Write renders r as its canonical TNF string: groups per state,
// separated by '_', each group a concatenation of S triples. Halt
// transitions always round-trip to "---", regardless of the Symbol/Dir
// they happen to carry, and unassigned cells of a partial rule are
// written as "---" as well. Write(Parse(s)) == s for any well-formed s
// with no trailing whitespace; Parse(Write(r)) == r for any filled Rule r
// whose halt transitions use the canonical encoding Parse produces.
func (r Rule) Write() string {
	if r.Empty() {
		return ""
	}

	var b strings.Builder
	for state := 0; state < r.n; state++ {
		if state > 0 {
			b.WriteByte('_')
		}
		for sym := 0; sym < r.s; sym++ {
			writeTriple(&b, r.At(state, Symbol(sym)))
		}
	}

	return b.String()
}

func writeTriple(b *strings.Builder, t Transition) {
	if t.IsHalt() || !t.Assigned() {
		b.WriteString("---")
		return
	}
	b.WriteByte('0' + byte(t.Symbol))
	b.WriteString(t.Dir.String())
	b.WriteByte('A' + byte(t.TargetState))
}

// String implements fmt.Stringer by delegating to Write.
func (r Rule) String() string { return r.Write() }

// MarshalText implements encoding.TextMarshaler so a Rule can flow
// through JSON-based bucket records without a bespoke serializer; the
// wire representation is exactly Write's TNF string.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.Write()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}
