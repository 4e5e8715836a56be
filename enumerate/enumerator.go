package enumerate

import (
	"context"

	"github.com/katalvlaran/turingbeaver/internal/applog"
	"github.com/katalvlaran/turingbeaver/machine"
	"github.com/katalvlaran/turingbeaver/rule"
)

// Run walks the TNF tree for an N-state, S-symbol alphabet and classifies
// every terminal candidate it reaches, writing accepted candidates to
// bucket files under the configured output directory. ctx is checked
// between candidates so a long enumeration can be interrupted.
func Run(ctx context.Context, n, s int, opts ...Option) (Summary, error) {
	if n < 1 || n > rule.MaxStates || s < 1 || s > rule.MaxSymbols {
		return Summary{}, ErrInvalidShape
	}

	cfg := newConfig(opts...)
	summary := newSummary()

	out, err := newOutputWriter(cfg.outputDir, n, s)
	if err != nil {
		return summary, err
	}
	defer out.Close()

	stack := []frame{{r: rule.NewBlank(n, s), highestSymbol: 0, highestState: 0}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		summary.Visited++

		status, expandState, expandSymbol := explore(top.r, cfg.maxSteps, cfg.log)

		switch status {
		case statusHalted:
			summary.Halted++

		case statusExpand:
			children := admissibleChildren(top, expandState, expandSymbol, n, s)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}

		case statusBudgetExceeded:
			finalized := top.r.Filled() || (top.highestState == n-1 && int(top.highestSymbol) == s-1)
			if !finalized {
				summary.Pruned++

				continue
			}

			bucket, params := classify(top.r, cfg.maxSteps, cfg.counterSimSteps, cfg.log)
			if shouldPrint(n, s, bucket, params, cfg) {
				lnf := rule.LexicalNormalForm(top.r)
				if err := out.Write(bucket, lnf.Write(), params); err != nil {
					return summary, err
				}
			}
			summary.Counts[bucket]++
			if cfg.bucketHook != nil {
				cfg.bucketHook(bucket, Candidate{Rule: top.r, Params: params})
			}
		}
	}

	return summary, nil
}

type exploreStatus int

const (
	statusHalted exploreStatus = iota
	statusExpand
	statusBudgetExceeded
)

// explore simulates r from its initial configuration until it halts,
// reaches a cell that has never been assigned (the next expansion point),
// or exceeds maxSteps. When it returns statusExpand, expandState/
// expandSymbol identify the unfilled cell.
func explore(r rule.Rule, maxSteps int64, log *applog.Logger) (exploreStatus, int, rule.Symbol) {
	m := machine.New(r, log)

	for maxSteps <= 0 || m.Steps() < maxSteps {
		if m.Halted() {
			return statusHalted, 0, 0
		}

		tr := m.Peek()
		if !tr.Assigned() {
			return statusExpand, m.Tape().State(), m.Tape().Peek()
		}

		m.Step()
	}

	return statusBudgetExceeded, 0, 0
}

// admissibleChildren fills (state, symbol) with every canonical-extension
// transition and returns the resulting child frames in visitation order:
// symbol ascending, direction Left then Right, target ascending with Halt
// last.
func admissibleChildren(parent frame, state int, symbol rule.Symbol, n, s int) []frame {
	maxSymbol := parent.highestSymbol + 1
	if int(maxSymbol) > s-1 {
		maxSymbol = rule.Symbol(s - 1)
	}

	maxTarget := parent.highestState + 1
	if maxTarget > n-1 {
		maxTarget = n - 1
	}

	var children []frame
	for writeSym := rule.Symbol(0); writeSym <= maxSymbol; writeSym++ {
		for _, dir := range []rule.Direction{rule.Left, rule.Right} {
			for target := 0; target <= maxTarget; target++ {
				children = append(children, childFrame(parent, state, symbol, writeSym, dir, target, n))
			}
			// Halt is appended last among this (symbol, direction)'s targets.
			children = append(children, childFrame(parent, state, symbol, writeSym, dir, rule.HaltState, n))
		}
	}

	return children
}

func childFrame(parent frame, state int, readSymbol, writeSymbol rule.Symbol, dir rule.Direction, target int, n int) frame {
	tr := rule.Transition{Symbol: writeSymbol, Dir: dir, TargetState: target}
	child := frame{
		r:             parent.r.Set(state, readSymbol, tr),
		highestSymbol: parent.highestSymbol,
		highestState:  parent.highestState,
	}
	if writeSymbol > child.highestSymbol {
		child.highestSymbol = writeSymbol
	}
	if target >= 0 && target > child.highestState {
		child.highestState = target
	}

	return child
}

// shouldPrint applies the configured per-(N,S) print filter. Unclassified
// and counter candidates carry no numeric parameters to filter on and
// always print.
func shouldPrint(n, s int, bucket Bucket, params string, cfg *runConfig) bool {
	if bucket == Unclassified || bucket == Counter {
		return true
	}

	b := cfg.printFilter.For(n, s)
	period, preperiod, degree := parseParams(params)

	if b.MinPeriod > 0 && period < b.MinPeriod {
		return false
	}
	if b.MinPreperiod > 0 && preperiod < b.MinPreperiod {
		return false
	}
	if b.MinDegree > 0 && degree < b.MinDegree {
		return false
	}

	return true
}
