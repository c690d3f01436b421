package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/trendcast/config"
	"github.com/Alias1177/trendcast/internal/chart"
	"github.com/Alias1177/trendcast/internal/predictor"
	"github.com/Alias1177/trendcast/internal/report"
	"github.com/Alias1177/trendcast/models"
)

type dataset struct {
	label  string
	prices []float64
}

// Built-in weekly price samples, used when PRICES is not set.
var demoDatasets = []dataset{
	{"Rising Stock", []float64{100, 102, 104, 106, 108, 110, 112}},
	{"Volatile Stock", []float64{100, 95, 105, 98, 107, 102, 109}},
	{"Falling Stock", []float64{120, 118, 115, 113, 110, 108, 105}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	datasets := demoDatasets
	if len(cfg.Prices) > 0 {
		datasets = []dataset{{cfg.Label, cfg.Prices}}
	}

	var writer models.Reporter = report.NewWriter(os.Stdout)
	var renderer models.ChartRenderer = chart.NewRenderer(cfg.OutputDir)

	for _, ds := range datasets {
		p, err := predictor.New(ds.prices)
		if err != nil {
			log.Fatal().Err(err).Str("dataset", ds.label).Msg("invalid input series")
		}

		prediction := p.PredictNextValue()

		if err := writer.Print(ds.label, ds.prices, prediction); err != nil {
			log.Fatal().Err(err).Msg("printing report failed")
		}
		if err := writer.PrintTrend(p.TrendMetrics()); err != nil {
			log.Fatal().Err(err).Msg("printing trend metrics failed")
		}

		if cfg.SaveCharts {
			if _, err := renderer.Save(ds.prices, prediction.FinalPrediction, ds.label); err != nil {
				log.Error().Err(err).Str("dataset", ds.label).Msg("saving chart failed")
			}
		}
	}
}
