package renderer

import (
	"testing"
	"time"
)

func TestRenderStats(t *testing.T) {
	tests := []struct {
		name          string
		stats         RenderStats
		wantAverage   float64
		wantPerSecond float64
	}{
		{"empty", RenderStats{}, 0, 0},
		{"typical", RenderStats{TotalPixels: 100, TotalSamples: 400, Elapsed: 2 * time.Second}, 4, 200},
		{"no elapsed time", RenderStats{TotalPixels: 10, TotalSamples: 10}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.AverageSamples(); got != tt.wantAverage {
				t.Errorf("AverageSamples() = %v, want %v", got, tt.wantAverage)
			}
			if got := tt.stats.SamplesPerSecond(); got != tt.wantPerSecond {
				t.Errorf("SamplesPerSecond() = %v, want %v", got, tt.wantPerSecond)
			}
		})
	}
}
