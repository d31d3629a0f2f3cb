package seld

import "gonum.org/v1/gonum/stat"

// epsilon is 64-bit machine epsilon, added to denominators so that ratios
// over zero counters saturate near zero instead of dividing by zero. It
// does not measurably bias results at realistic event counts.
const epsilon = 2.220446049250313e-16

// MaxAngularErrorDeg is the largest possible angular separation between
// two directions. It is reported as the localization error while no
// localized true positives have been accumulated.
const MaxAngularErrorDeg = 180.0

// Scores holds the location-sensitive detection scores and the
// class-sensitive localization scores derived from an accumulator.
type Scores struct {
	// Location-sensitive detection
	ErrorRate float64 // (S+D+I) / reference events
	Precision float64
	Recall    float64
	F         float64

	// Class-sensitive localization
	LocalizationError     float64 // mean angular error over localized TPs (degrees)
	LocalizationPrecision float64
	LocalizationRecall    float64
	LocalizationF         float64
}

// Scores derives the current metric values from the accumulated counters.
// It is read-only and idempotent; the accumulator keeps accepting updates
// afterwards, so intermediate scores can be reported during a run.
func (a *Accumulator) Scores() Scores {
	c := a.c

	var s Scores
	s.ErrorRate = float64(c.Substitutions+c.Deletions+c.Insertions) / (float64(c.RefEvents) + epsilon)
	s.Precision = float64(c.TruePositives) / (float64(c.SysEvents) + epsilon)
	s.Recall = float64(c.TruePositives) / (float64(c.RefEvents) + epsilon)
	s.F = 2 * s.Precision * s.Recall / (s.Precision + s.Recall + epsilon)

	if c.LocalizedTP > 0 {
		s.LocalizationError = c.TotalAngularErrorDeg / (float64(c.LocalizedTP) + epsilon)
	} else {
		// No localized comparisons yet. Epsilon alone would produce a huge
		// and misleading ratio here, hence the explicit sentinel.
		s.LocalizationError = MaxAngularErrorDeg
	}
	s.LocalizationPrecision = float64(c.LocalizedTP) / (float64(c.SysEvents) + epsilon)
	s.LocalizationRecall = float64(c.LocalizedTP) / (float64(c.RefEvents) + epsilon)
	s.LocalizationF = 2 * s.LocalizationPrecision * s.LocalizationRecall / (s.LocalizationPrecision + s.LocalizationRecall + epsilon)

	return s
}

// EarlyStoppingScore combines an already-computed detection pair (error
// rate and F-score) and localization pair (mean DOA error in degrees and
// frame recall in [0, 1]) into the single scalar used for early stopping.
// Each term is normalized to a comparable [0, 1] range and averaged
// unweighted; lower is better.
func EarlyStoppingScore(errorRate, fScore, doaErrorDeg, frameRecall float64) float64 {
	return stat.Mean([]float64{
		errorRate,
		1 - fScore,
		doaErrorDeg / MaxAngularErrorDeg,
		1 - frameRecall,
	}, nil)
}
