package enumerate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/decide/bouncer"
	"github.com/katalvlaran/turingbeaver/decide/cycler"
	"github.com/katalvlaran/turingbeaver/decide/tcycler"
	"github.com/katalvlaran/turingbeaver/internal/applog"
	"github.com/katalvlaran/turingbeaver/machine"
	"github.com/katalvlaran/turingbeaver/rule"
)

// classify runs the seven-stage cost-ordered pipeline over a single
// filled rule and returns the bucket it landed in plus a human-readable
// parameter string for the output file. counterSimSteps configures the
// counter stage's sample window; 0 falls back to isCounter's own
// numSymbols-scaled default.
func classify(r rule.Rule, maxSteps int64, counterSimSteps int, log *applog.Logger) (Bucket, string) {
	fresh := func() *machine.Machine { return machine.New(r, log) }

	cheap := clampBudget(maxSteps, 1_000)
	if res := tcycler.Find(fresh(), decide.DefaultBudget(cheap)); res.Found {
		return CheapTCycler, tcyclerParams(res)
	}

	mid := clampBudget(maxSteps, 10_000)
	if res := cycler.Find(fresh(), decide.DefaultBudget(mid)); res.Found {
		return Cycler, cyclerParams(res)
	}

	medium := clampBudget(maxSteps, 100_000)
	if res := tcycler.Find(fresh(), decide.DefaultBudget(medium)); res.Found {
		return MediumTCycler, tcyclerParams(res)
	}

	bouncerBudget := decide.Budget{MaxSteps: clampBudget(maxSteps, 100_000), MaxDegree: 4, MaxXPeriod: 20, ConfidenceLevel: 3}
	if res, err := bouncer.Find(fresh(), bouncerBudget); err == nil && res.Found {
		if res.Degree == 2 {
			confirmBudget := decide.Budget{MaxSteps: clampBudget(maxSteps, 1_000_000), MaxDegree: 2, MaxXPeriod: bouncerBudget.MaxXPeriod, ConfidenceLevel: bouncerBudget.ConfidenceLevel + 2}
			if confirmed, cerr := bouncer.Find(fresh(), confirmBudget); cerr == nil && confirmed.Found && confirmed.Degree == 2 {
				return Bouncer, bouncerParams(confirmed)
			}
		} else {
			return Bouncer, bouncerParams(res)
		}
	}

	if isCounter(fresh(), r.NumSymbols(), counterSimSteps) {
		return Counter, ""
	}

	heavy := clampBudget(maxSteps, maxSteps)
	if res := tcycler.Find(fresh(), decide.DefaultBudget(heavy)); res.Found {
		return HeavyTCycler, tcyclerParams(res)
	}

	return Unclassified, ""
}

// isCounter runs the "counter" heuristic: simulate simSteps steps and
// declare a counter if the touched-region width stays below
// 25*log10(simSteps). configuredSimSteps overrides the default
// numSymbols-scaled window when positive.
func isCounter(m *machine.Machine, numSymbols, configuredSimSteps int) bool {
	simSteps := configuredSimSteps
	if simSteps <= 0 {
		simSteps = 50 * numSymbols
		if simSteps < 10 {
			simSteps = 10
		}
	}

	for i := 0; i < simSteps; i++ {
		if res := m.Step(); !res.Success {
			break
		}
	}

	tp := m.Tape()
	width := float64(tp.RightEdge() - tp.LeftEdge() + 1)
	threshold := 25 * math.Log10(float64(simSteps))

	return width < threshold
}

// clampBudget returns the smaller of a proposed stage budget and the
// overall ceiling, so no pipeline stage can outspend the candidate's
// configured step budget.
func clampBudget(ceiling, proposed int64) int64 {
	if ceiling > 0 && proposed > ceiling {
		return ceiling
	}

	return proposed
}

func cyclerParams(res cycler.Result) string {
	return fmt.Sprintf("period=%d preperiod=%d offset=%d", res.Period, res.Preperiod, res.Offset)
}

func tcyclerParams(res tcycler.Result) string {
	return fmt.Sprintf("period=%d preperiod=%d offset=%d", res.Period, res.Preperiod, res.Offset)
}

func bouncerParams(res bouncer.Result) string {
	return fmt.Sprintf("degree=%d start=%d xPeriod=%d side=%s", res.Degree, res.Start, res.XPeriod, res.Side)
}
