package decide

import "math"

// Budget bounds a decider's search effort. Zero-value fields are
// replaced by DefaultBudget's values where a decider needs a positive
// default to make progress.
type Budget struct {
	// MaxSteps is the total elementary-step ceiling across every outer
	// round; exceeding it without a match is the "not found" case.
	MaxSteps int64

	// InitialPeriodBound seeds the doubling period-bound search used by
	// the cycler and translated-cycler.
	InitialPeriodBound int64

	// GrowthFactor multiplies the period bound each outer round; values
	// <= 1.0 are treated as the default 1.1.
	GrowthFactor float64

	// MaxXPeriod is the bouncer's spatial-period search ceiling P.
	MaxXPeriod int

	// MaxDegree is the bouncer's maximum polynomial degree D.
	MaxDegree int

	// ConfidenceLevel is the bouncer's extra-confirming-samples count C.
	ConfidenceLevel int
}

// DefaultBudget returns reasonable reference parameters: an initial
// period bound of 100, a 1.1 growth factor, and a modest bouncer search
// (degree up to 4, x-period up to 8, confidence 3).
func DefaultBudget(maxSteps int64) Budget {
	return Budget{
		MaxSteps:           maxSteps,
		InitialPeriodBound: 100,
		GrowthFactor:       1.1,
		MaxXPeriod:         8,
		MaxDegree:          4,
		ConfidenceLevel:    3,
	}
}

func (b Budget) growthFactor() float64 {
	if b.GrowthFactor <= 1.0 {
		return 1.1
	}

	return b.GrowthFactor
}

// InitialBound returns InitialPeriodBound, or 100 if it was left at its
// zero value.
func (b Budget) InitialBound() int64 {
	if b.InitialPeriodBound <= 0 {
		return 100
	}

	return b.InitialPeriodBound
}

// NextBound grows a period bound by b's growth factor, rounding up so it
// strictly increases even at small values.
func (b Budget) NextBound(current int64) int64 {
	next := int64(math.Ceil(float64(current) * b.growthFactor()))
	if next <= current {
		next = current + 1
	}

	return next
}

// XPeriod returns MaxXPeriod, or 8 if left at its zero value.
func (b Budget) XPeriod() int {
	if b.MaxXPeriod <= 0 {
		return 8
	}

	return b.MaxXPeriod
}

// Degree returns MaxDegree, or 4 if left at its zero value.
func (b Budget) Degree() int {
	if b.MaxDegree <= 0 {
		return 4
	}

	return b.MaxDegree
}

// Confidence returns ConfidenceLevel, or 3 if left at its zero value.
func (b Budget) Confidence() int {
	if b.ConfidenceLevel <= 0 {
		return 3
	}

	return b.ConfidenceLevel
}
