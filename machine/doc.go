// Package machine wraps a rule.Rule and a *tape.Tape into a steppable
// Turing machine: Step, Seek, Reset, Peek, Halted. A Machine's state
// lives entirely on its tape (tape.Tape.State); the machine itself only
// tracks the rule and the number of steps taken.
//
// Complexity: Step is whatever tape.Tape.Step costs (amortised O(1)).
// Seek(n) from the current step count forward is O(n-steps) calls to
// Step; seeking to a step count behind the current one resets to a
// blank tape and replays forward from zero, an O(n) slow path logged at
// warn level via applog.
//
// Errors: this package has no sentinel errors; Step's failure mode
// (halted machine) is reported through StepResult.Success rather than a
// Go error, since it is an expected, frequently-checked condition, not
// a programmer mistake.
package machine
