// Package decide holds the types shared by the behavioural classifiers
// in decide/cycler, decide/tcycler, and decide/bouncer: a Budget that
// bounds how hard a decider tries, and the common shape their outer
// loops use to grow a step bound across rounds.
//
// Every decider in the sibling packages is an idempotent classifier: it
// either returns a positive certificate or reports "not found within
// budget" — never an error for exhaustion. A Go error return is reserved
// for genuine programmer mistakes (e.g. a negative MaxDegree passed to
// the bouncer).
package decide
