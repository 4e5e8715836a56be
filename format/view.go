package format

import "github.com/katalvlaran/turingbeaver/machine"

// DenseWindow renders the machine's tape window around the head, with the
// head cell bracketed and the whole window styled in the current state's
// colour.
func DenseWindow(m *machine.Machine, radius int) string {
	window := m.Tape().DenseWindow(radius)

	return Colorize(m.Tape().State(), window)
}

// RunLength renders the machine's touched region as run-length text,
// prefixed with the current state's colour swatch (a single styled
// space), matching the original's habit of tagging a trace line with its
// state colour even though the run-length text itself carries no colour.
func RunLength(m *machine.Machine) string {
	return Colorize(m.Tape().State(), " ") + " " + m.Tape().RunLength()
}
