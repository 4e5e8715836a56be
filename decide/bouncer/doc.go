// Package bouncer detects bouncers (quadratic tape growth) and bells
// (higher-degree polynomial growth): machines whose extension events on
// one side of the tape occur at step counts that form a degree-k
// polynomial sequence in the number of extensions, for some small k.
//
// Complexity: O(MaxSteps) to walk the machine and record extension
// events, plus O(records * MaxXPeriod * MaxDegree) for the per-event
// finite-difference scan.
//
// Errors: ErrInvalidDegree is the one programmer-error case (a
// negative MaxDegree; zero falls back to Budget.Degree's default of 4);
// budget exhaustion without a detected
// polynomial is reported through Result.Found == false, never an error.
package bouncer
