package models

type Reporter interface {
	Print(label string, prices []float64, report *PredictionReport) error
	PrintTrend(trend *TrendReport) error
}

type ChartRenderer interface {
	Save(prices []float64, predicted float64, label string) (string, error)
}
