package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Renderer saves prediction charts as PNG files into a caller-chosen output
// directory. Rendering only happens when Save is invoked explicitly.
type Renderer struct {
	outputDir string
	logger    zerolog.Logger
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		outputDir: outputDir,
		logger:    log.With().Str("component", "chart").Logger(),
	}
}

// Save renders the observed prices as a line chart with the predicted next
// point highlighted, writes it into the output directory (created if absent)
// and returns the full file path.
func (r *Renderer) Save(prices []float64, predicted float64, label string) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", r.outputDir, err)
	}

	days := make([]float64, len(prices))
	for i := range prices {
		days[i] = float64(i + 1)
	}

	graph := chart.Chart{
		Title:  "Stock Market Prediction - " + label,
		Width:  800,
		Height: 400,
		XAxis:  chart.XAxis{Name: "Day"},
		YAxis:  chart.YAxis{Name: "Stock Price ($)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Actual Prices",
				XValues: days,
				YValues: prices,
				Style: chart.Style{
					StrokeColor: drawing.ColorGreen,
					StrokeWidth: 2,
					DotColor:    drawing.ColorGreen,
					DotWidth:    4,
				},
			},
			chart.ContinuousSeries{
				Name:    "Predicted Price",
				XValues: []float64{float64(len(prices) + 1)},
				YValues: []float64{predicted},
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    drawing.ColorRed,
					DotWidth:    8,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	path := filepath.Join(r.outputDir, Filename(label))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart file: %w", err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	r.logger.Info().Str("path", path).Msg("chart saved")

	return path, nil
}

// Filename derives the chart file name from a display label, replacing
// spaces so the label is safe as a file name.
func Filename(label string) string {
	return strings.ReplaceAll(label, " ", "_") + "_prediction.png"
}
