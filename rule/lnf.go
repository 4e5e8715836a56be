package rule

// minLNFStates is the smallest N for which LexicalNormalForm actually
// permutes state labels; below this it is a documented no-op.
const minLNFStates = 4

// LexicalNormalForm canonicalises r by relabelling states in the order
// they are first reached by a breadth-first walk of the transition
// graph starting at (state=0, symbol=0). States never reached by the
// walk keep their relative order, appended after the reached ones. The
// start state is always fixed at label 0.
//
// LexicalNormalForm is idempotent: lnf(lnf(r)) == lnf(r). It is applied
// only when NumStates() >= 4; for smaller rules it returns r unchanged.
// The relabelling is good enough for N <= 4; for N >= 5 it should be
// treated as best-effort deduplication, never a correctness-bearing
// canonical form.
func LexicalNormalForm(r Rule) Rule {
	if r.Empty() || r.n < minLNFStates {
		return r
	}

	label := relabel(r)
	out := NewBlank(r.n, r.s)
	for oldState := 0; oldState < r.n; oldState++ {
		newState := label[oldState]
		for sym := 0; sym < r.s; sym++ {
			t := r.At(oldState, Symbol(sym))
			if !t.Assigned() {
				continue
			}
			if t.IsHalt() {
				out = out.Set(newState, Symbol(sym), haltTransition)
				continue
			}
			out = out.Set(newState, Symbol(sym), Transition{
				Symbol:      t.Symbol,
				Dir:         t.Dir,
				TargetState: label[t.TargetState],
			})
		}
	}

	return out
}

// relabel computes, for each original state index, its new label under
// the breadth-first first-reached order described by LexicalNormalForm.
func relabel(r Rule) []int {
	label := make([]int, r.n)
	visited := make([]bool, r.n)
	for i := range label {
		label[i] = -1
	}

	queue := make([]int, 0, r.n)
	next := 0

	visit := func(state int) {
		visited[state] = true
		label[state] = next
		next++
		queue = append(queue, state)
	}
	visit(0)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for sym := 0; sym < r.s; sym++ {
			t := r.At(u, Symbol(sym))
			if !t.Assigned() || t.IsHalt() || visited[t.TargetState] {
				continue
			}
			visit(t.TargetState)
		}
	}

	// Unreached states keep their relative order, appended last.
	for s := 0; s < r.n; s++ {
		if !visited[s] {
			label[s] = next
			next++
		}
	}

	return label
}
