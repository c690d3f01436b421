package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.OutputDir != "./charts" {
		t.Errorf("OutputDir = %q, want ./charts", cfg.OutputDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.SaveCharts {
		t.Error("SaveCharts should default to true")
	}
	if len(cfg.Prices) != 0 {
		t.Errorf("Prices = %v, want empty", cfg.Prices)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("SAVE_CHARTS", "false")
	t.Setenv("PRICES", "100, 102.5,99")
	t.Setenv("LABEL", "My Stock")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q, want /tmp/out", cfg.OutputDir)
	}
	if cfg.SaveCharts {
		t.Error("SaveCharts should be false")
	}
	if cfg.Label != "My Stock" {
		t.Errorf("Label = %q, want My Stock", cfg.Label)
	}

	want := []float64{100, 102.5, 99}
	if len(cfg.Prices) != len(want) {
		t.Fatalf("Prices = %v, want %v", cfg.Prices, want)
	}
	for i := range want {
		if cfg.Prices[i] != want[i] {
			t.Errorf("Prices[%d] = %v, want %v", i, cfg.Prices[i], want[i])
		}
	}
}

func TestLoadInvalidPrices(t *testing.T) {
	t.Setenv("PRICES", "100,abc,99")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject malformed PRICES")
	}
}

func TestParsePrices(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"single value", "100", 1, false},
		{"spaces around values", " 100 , 102 ", 2, false},
		{"trailing comma", "100,102,", 0, true},
		{"not a number", "100,up,102", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrices(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parsePrices(%q) expected error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePrices(%q) unexpected error: %v", tt.raw, err)
			}
			if len(got) != tt.want {
				t.Errorf("parsePrices(%q) = %v, want %d values", tt.raw, got, tt.want)
			}
		})
	}
}
