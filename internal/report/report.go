package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/trendcast/models"
)

// Color thresholds for the confidence line.
var (
	highColor   = color.New(color.FgGreen, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgRed, color.Bold)
	titleColor  = color.New(color.FgCyan, color.Bold)
)

// Writer renders prediction results as human-readable console output. It
// only consumes values produced by the predictor; nothing flows back.
type Writer struct {
	out    io.Writer
	logger zerolog.Logger
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:    out,
		logger: log.With().Str("component", "report").Logger(),
	}
}

// Print renders the observed prices and the full prediction breakdown.
func (w *Writer) Print(label string, prices []float64, report *models.PredictionReport) error {
	if _, err := titleColor.Fprintf(w.out, "\nExample: %s\n", label); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	table := tablewriter.NewWriter(w.out)
	table.Header([]string{"Day", "Price"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, price := range prices {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", price),
		})
	}

	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("building price table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering price table: %w", err)
	}

	fmt.Fprintf(w.out, "Predicted next price: $%.2f\n", report.FinalPrediction)
	fmt.Fprintf(w.out, "  momentum:          %.2f\n", report.PredictionMethod1)
	fmt.Fprintf(w.out, "  recent average:    %.2f\n", report.PredictionMethod2)
	fmt.Fprintf(w.out, "  smoothed:          %.2f\n", report.PredictionMethod3)
	fmt.Fprintf(w.out, "  avg recent trend:  %+.2f\n", report.AvgRecentTrend)

	confidenceColor := mediumColor
	if report.ConfidenceScore >= 0.7 {
		confidenceColor = highColor
	} else if report.ConfidenceScore <= 0.3 {
		confidenceColor = lowColor
	}
	if _, err := confidenceColor.Fprintf(w.out, "Confidence: %.1f%%\n", report.ConfidenceScore*100); err != nil {
		return fmt.Errorf("writing confidence line: %w", err)
	}

	w.logger.Debug().
		Str("label", label).
		Float64("final_prediction", report.FinalPrediction).
		Float64("confidence", report.ConfidenceScore).
		Msg("report printed")

	return nil
}

// PrintTrend renders the per-index difference estimates and their averages.
// Undefined entries print as n/a, never as 0.
func (w *Writer) PrintTrend(trend *models.TrendReport) error {
	table := tablewriter.NewWriter(w.out)
	table.Header([]string{"Index", "Forward", "Backward", "Central"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i := range trend.Forward {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			formatEstimate(trend.Forward[i]),
			formatEstimate(trend.Backward[i]),
			formatEstimate(trend.Central[i]),
		})
	}
	data = append(data, []string{
		"avg",
		formatEstimate(trend.ForwardAvg),
		formatEstimate(trend.BackwardAvg),
		formatEstimate(trend.CentralAvg),
	})

	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("building trend table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering trend table: %w", err)
	}

	return nil
}

func formatEstimate(estimate models.DifferenceEstimate) string {
	if !estimate.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", estimate.Value)
}
