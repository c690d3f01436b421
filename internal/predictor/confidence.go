package predictor

import (
	"github.com/Alias1177/trendcast/internal/calculate"
)

const (
	confidenceWindow   = 4
	confidenceFloor    = 0.1
	confidenceCeil     = 0.9
	fallbackConfidence = 0.5
)

// ConfidenceScore maps the variance of recent changes to a score in
// [0.1, 0.9]: consistent day-to-day change scores near 0.9, volatile change
// decays toward 0.1. A heuristic, not a calibrated probability. Series
// shorter than 3, or windows with fewer than 2 defined differences, score
// the fixed fallback 0.5.
func (p *Predictor) ConfidenceScore() float64 {
	n := len(p.series)
	if n < 3 {
		return fallbackConfidence
	}

	window := confidenceWindow
	if window > n {
		window = n
	}

	var diffs []float64
	for i := n - window; i < n; i++ {
		if estimate := p.backward(i); estimate.Defined {
			diffs = append(diffs, estimate.Value)
		}
	}

	if len(diffs) < 2 {
		return fallbackConfidence
	}

	variance := calculate.PopulationVariance(diffs)
	return calculate.Clamp(1/(1+variance), confidenceFloor, confidenceCeil)
}
