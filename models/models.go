package models

// Config holds all application configuration
type Config struct {
	OutputDir  string    `env:"OUTPUT_DIR" envDefault:"./charts"`
	LogLevel   string    `env:"LOG_LEVEL" envDefault:"info"`
	SaveCharts bool      `env:"SAVE_CHARTS" envDefault:"true"`
	Prices     []float64 `env:"PRICES"` // comma-separated, overrides the demo datasets
	Label      string    `env:"LABEL" envDefault:"Custom Series"`
}

// DifferenceEstimate is a finite-difference estimate at a single index.
// Defined is false where the required neighbor does not exist; Value then
// holds the boundary sentinel 0 (or NaN for an empty aggregate).
type DifferenceEstimate struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// TrendReport holds the per-index difference arrays and their averages.
// An average over a direction with no defined entries (series of length 1)
// is reported as undefined with a NaN value, never coerced to 0.
type TrendReport struct {
	Forward     []DifferenceEstimate `json:"forward"`
	Backward    []DifferenceEstimate `json:"backward"`
	Central     []DifferenceEstimate `json:"central"`
	ForwardAvg  DifferenceEstimate   `json:"forward_avg"`
	BackwardAvg DifferenceEstimate   `json:"backward_avg"`
	CentralAvg  DifferenceEstimate   `json:"central_avg"`
}

// PredictionReport stores the outcome of a single prediction call
type PredictionReport struct {
	FinalPrediction   float64 `json:"final_prediction"`
	PredictionMethod1 float64 `json:"prediction_method_1"` // momentum: last + latest change
	PredictionMethod2 float64 `json:"prediction_method_2"` // recent average trend
	PredictionMethod3 float64 `json:"prediction_method_3"` // smoothed central estimate
	LastPrice         float64 `json:"last_price"`
	AvgRecentTrend    float64 `json:"avg_recent_trend"`
	ConfidenceScore   float64 `json:"confidence_score"`
}
