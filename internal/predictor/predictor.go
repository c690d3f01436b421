package predictor

import (
	"errors"
	"fmt"
	"math"

	"github.com/Alias1177/trendcast/internal/calculate"
	"github.com/Alias1177/trendcast/models"
)

var (
	ErrEmptySeries = errors.New("series must contain at least one value")
	ErrNotFinite   = errors.New("series contains NaN or infinite values")
)

// Combination weights for the three sub-predictions. The recent-average
// method gets the largest weight as the most stable signal.
const (
	weightMomentum = 0.3
	weightRecent   = 0.4
	weightSmoothed = 0.3

	recentTrendWindow = 3
)

// Predictor estimates the next value of an ordered price series using
// finite-difference slope estimators. The stored series is never mutated
// after construction, so a Predictor is safe for concurrent reads.
type Predictor struct {
	series []float64
}

// New validates and copies the input series. The series must be non-empty,
// ordered oldest to newest, and contain only finite values.
func New(series []float64) (*Predictor, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	for i, value := range series {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("value at index %d: %w", i, ErrNotFinite)
		}
	}

	copied := make([]float64, len(series))
	copy(copied, series)

	return &Predictor{series: copied}, nil
}

// Series returns a copy of the stored series.
func (p *Predictor) Series() []float64 {
	copied := make([]float64, len(p.series))
	copy(copied, p.series)
	return copied
}

// Len returns the number of observations in the series.
func (p *Predictor) Len() int {
	return len(p.series)
}

// ForwardDifference returns series[i+1] - series[i], or the sentinel 0 when
// index i has no forward neighbor.
func (p *Predictor) ForwardDifference(i int) float64 {
	return p.forward(i).Value
}

// BackwardDifference returns series[i] - series[i-1], or the sentinel 0 when
// index i has no backward neighbor.
func (p *Predictor) BackwardDifference(i int) float64 {
	return p.backward(i).Value
}

// CentralDifference returns (series[i+1] - series[i-1]) / 2, or the sentinel 0
// when index i is missing either neighbor.
func (p *Predictor) CentralDifference(i int) float64 {
	return p.central(i).Value
}

func (p *Predictor) forward(i int) models.DifferenceEstimate {
	if i < 0 || i >= len(p.series)-1 {
		return models.DifferenceEstimate{}
	}
	return models.DifferenceEstimate{Value: p.series[i+1] - p.series[i], Defined: true}
}

func (p *Predictor) backward(i int) models.DifferenceEstimate {
	if i <= 0 || i >= len(p.series) {
		return models.DifferenceEstimate{}
	}
	return models.DifferenceEstimate{Value: p.series[i] - p.series[i-1], Defined: true}
}

func (p *Predictor) central(i int) models.DifferenceEstimate {
	if i <= 0 || i >= len(p.series)-1 {
		return models.DifferenceEstimate{}
	}
	return models.DifferenceEstimate{Value: (p.series[i+1] - p.series[i-1]) / 2, Defined: true}
}

// TrendMetrics computes the full per-index difference arrays and the average
// of each direction over its defined entries. Boundary entries where a
// neighbor is missing are marked undefined rather than folded in as zeros,
// so genuine zero-change steps still count toward the averages.
func (p *Predictor) TrendMetrics() *models.TrendReport {
	n := len(p.series)

	forward := make([]models.DifferenceEstimate, n)
	backward := make([]models.DifferenceEstimate, n)
	central := make([]models.DifferenceEstimate, n)

	for i := 0; i < n; i++ {
		forward[i] = p.forward(i)
		backward[i] = p.backward(i)
		central[i] = p.central(i)
	}

	return &models.TrendReport{
		Forward:     forward,
		Backward:    backward,
		Central:     central,
		ForwardAvg:  averageDefined(forward),
		BackwardAvg: averageDefined(backward),
		CentralAvg:  averageDefined(central),
	}
}

// averageDefined averages the defined entries of a difference array. With no
// defined entries (series of length 1) the result is an undefined NaN, which
// callers must surface instead of treating as zero.
func averageDefined(estimates []models.DifferenceEstimate) models.DifferenceEstimate {
	var values []float64
	for _, estimate := range estimates {
		if estimate.Defined {
			values = append(values, estimate.Value)
		}
	}

	if len(values) == 0 {
		return models.DifferenceEstimate{Value: math.NaN()}
	}

	return models.DifferenceEstimate{Value: calculate.Average(values), Defined: true}
}

// PredictNextValue combines three slope estimates into a next-value
// prediction:
//  1. momentum: tomorrow repeats the latest observed change
//  2. recent average: mean backward difference over the last few steps
//  3. smoothed: central difference at the second-to-last index
func (p *Predictor) PredictNextValue() *models.PredictionReport {
	n := len(p.series)
	last := p.series[n-1]

	method1 := last + p.BackwardDifference(n-1)

	avgRecentTrend := p.recentTrend(recentTrendWindow)
	method2 := last + avgRecentTrend

	method3 := method2
	if n >= 3 {
		method3 = last + p.CentralDifference(n-2)
	}

	final := weightMomentum*method1 + weightRecent*method2 + weightSmoothed*method3

	return &models.PredictionReport{
		FinalPrediction:   final,
		PredictionMethod1: method1,
		PredictionMethod2: method2,
		PredictionMethod3: method3,
		LastPrice:         last,
		AvgRecentTrend:    avgRecentTrend,
		ConfidenceScore:   p.ConfidenceScore(),
	}
}

// recentTrend averages the defined backward differences over the last
// min(window, length) indices. Returns 0 when no difference is defined
// (series of length 1), leaving the prediction at the last price.
func (p *Predictor) recentTrend(window int) float64 {
	n := len(p.series)
	if window > n {
		window = n
	}

	var values []float64
	for i := n - window; i < n; i++ {
		if estimate := p.backward(i); estimate.Defined {
			values = append(values, estimate.Value)
		}
	}

	if len(values) == 0 {
		return 0
	}

	return calculate.Average(values)
}
