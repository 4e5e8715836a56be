package tape

import (
	"fmt"
	"strconv"
	"strings"
)

// DenseWindow renders the 2*radius+1 cells centred on the head as a
// single digit string, with the head's own cell wrapped in brackets.
// Cells outside the touched region render as '0'. Formatter-only: no
// correctness weight.
func (t *Tape) DenseWindow(radius int) string {
	var b strings.Builder
	for d := -radius; d <= radius; d++ {
		coord := t.head + d
		sym := t.symbolAt(coord)
		if d == 0 {
			fmt.Fprintf(&b, "[%d]", sym)
		} else {
			b.WriteByte('0' + byte(sym))
		}
	}

	return b.String()
}

// symbolAt reads the touched-region value at an absolute coordinate,
// returning 0 outside [leftEdge, RightEdge()].
func (t *Tape) symbolAt(coord int) int {
	if coord < t.leftEdge || coord > t.RightEdge() {
		return 0
	}

	return int(t.data[coord+t.offset])
}

// RunLength renders the touched region left-to-right as a sequence of
// "<symbol>x<count>" runs separated by spaces, e.g. "0x3 1x2 0x1".
func (t *Tape) RunLength() string {
	touched := t.data[t.leftEdge+t.offset:]
	if len(touched) == 0 {
		return ""
	}

	var b strings.Builder
	cur := touched[0]
	count := 1
	for _, v := range touched[1:] {
		if v == cur {
			count++
			continue
		}
		writeRun(&b, cur, count)
		cur, count = v, 1
	}
	writeRun(&b, cur, count)

	return strings.TrimSpace(b.String())
}

func writeRun(b *strings.Builder, sym byte, count int) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte('0' + sym)
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(count))
}

// BinaryRLE renders the touched region as a run-length-encoded string
// over the two-symbol alphabet {0,1}: runs of zeros and ones alternate,
// each written as its length only (no symbol marker), starting with the
// count of leading zeros (which may be 0). This mirrors the "01-RLE"
// compact trace format used by BB2/BB3 style demonstrations.
func (t *Tape) BinaryRLE() string {
	touched := t.data[t.leftEdge+t.offset:]
	if len(touched) == 0 {
		return "0"
	}

	var b strings.Builder
	cur := touched[0]
	count := 1
	if cur != 0 {
		b.WriteString("0 ") // leading zero run of length 0
	}
	for _, v := range touched[1:] {
		if v == cur {
			count++
			continue
		}
		b.WriteString(strconv.Itoa(count))
		b.WriteByte(' ')
		cur, count = v, 1
	}
	b.WriteString(strconv.Itoa(count))

	return b.String()
}
