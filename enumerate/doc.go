// Package enumerate walks the tree-normal-form tree of N-state, S-symbol
// rules, extending each partial rule only at its first unfilled cell and
// only along admissible "canonical extension" transitions, then classifies
// every terminal rule through a cost-ordered pipeline of deciders.
//
// # Complexity
//
// The walk visits at most one node per distinct partial rule reachable
// under the canonical-extension constraint; memory is bounded by the
// explicit stack. The walk is at most N*S levels deep (one per cell of a
// fully-filled rule), and the stack holds the not-yet-visited siblings
// pushed at each of those levels.
//
// # Errors
//
// Run never returns an error for an individual candidate: classification
// failure is a bucket ("unclassified"), not an error. Run returns
// ErrInvalidShape for an out-of-range (N, S), ctx's error if ctx is
// cancelled, and the filesystem error if the output directory or a bucket
// file cannot be created or written.
package enumerate
