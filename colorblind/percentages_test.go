package colorblind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Golden values per mode. The table defines the simulated perceptual mapping,
// so every coefficient is checked for exact equality.
func TestModePercentagesGolden(t *testing.T) {
	tests := []struct {
		mode             Mode
		red, green, blue [3]float32
	}{
		{ModeNormal, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
		{ModeProtanopia, [3]float32{0.56667, 0.43333, 0}, [3]float32{0.55833, 0.44167, 0}, [3]float32{0, 0.24167, 0.75833}},
		{ModeProtanomaly, [3]float32{0.81667, 0.18333, 0}, [3]float32{0.33333, 0.66667, 0}, [3]float32{0, 0.125, 0.875}},
		{ModeDeuteranopia, [3]float32{0.625, 0.375, 0}, [3]float32{0.70, 0.30, 0}, [3]float32{0, 0.30, 0.70}},
		{ModeDeuteranomaly, [3]float32{0.80, 0.20, 0}, [3]float32{0.25833, 0.74167, 0}, [3]float32{0, 0.14167, 0.85833}},
		{ModeTritanopia, [3]float32{0.95, 0.5, 0}, [3]float32{0, 0.43333, 0.56667}, [3]float32{0, 0.475, 0.525}},
		{ModeTritanomaly, [3]float32{0.96667, 0.3333, 0}, [3]float32{0, 0.73333, 0.26667}, [3]float32{0, 0.18333, 0.81667}},
		{ModeAchromatopsia, [3]float32{0.299, 0.587, 0.114}, [3]float32{0.299, 0.587, 0.114}, [3]float32{0.299, 0.587, 0.114}},
		{ModeAchromatomaly, [3]float32{0.618, 0.32, 0.62}, [3]float32{0.163, 0.775, 0.62}, [3]float32{0.163, 0.320, 0.516}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			p := tt.mode.Percentages()
			assert.Equal(t, tt.red, p.Red)
			assert.Equal(t, tt.green, p.Green)
			assert.Equal(t, tt.blue, p.Blue)
		})
	}
}

func TestModePercentagesOutOfRange(t *testing.T) {
	assert.Equal(t, ModeNormal.Percentages(), Mode(-1).Percentages())
	assert.Equal(t, ModeNormal.Percentages(), Mode(100).Percentages())
}

// Every coefficient lies in [0, 1]. The Tritanopia and Tritanomaly red rows
// sum past 1.0 — a deviation inherited verbatim from the reference table — so
// those two rows are asserted explicitly rather than range-checked away.
func TestModePercentagesRowRanges(t *testing.T) {
	const rowSumTolerance = 0.001

	for m := ModeNormal; m < modeCount; m++ {
		p := m.Percentages()
		for _, row := range [][3]float32{p.Red, p.Green, p.Blue} {
			for _, c := range row {
				assert.GreaterOrEqual(t, c, float32(0), "mode %v", m)
				assert.LessOrEqual(t, c, float32(1), "mode %v", m)
			}
		}

		switch m {
		case ModeTritanopia:
			assert.InDelta(t, 1.45, rowSum(p.Red), rowSumTolerance, "documented red-row excess")
		case ModeTritanomaly:
			assert.InDelta(t, 1.29997, rowSum(p.Red), rowSumTolerance, "documented red-row excess")
		case ModeAchromatomaly:
			// The reference Achromatomaly rows are not row-stochastic either; no sum assertion.
		default:
			assert.InDelta(t, 1.0, rowSum(p.Red), rowSumTolerance, "mode %v red row", m)
			assert.InDelta(t, 1.0, rowSum(p.Green), rowSumTolerance, "mode %v green row", m)
			assert.InDelta(t, 1.0, rowSum(p.Blue), rowSumTolerance, "mode %v blue row", m)
		}
	}
}

func TestChannelMixPercentagesApply(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		r, g, b float32
		wantR   float32
		wantG   float32
		wantB   float32
	}{
		{"identity passes through", ModeNormal, 0.25, 0.5, 0.75, 0.25, 0.5, 0.75},
		{"achromatopsia collapses to luma", ModeAchromatopsia, 1, 0, 0, 0.299, 0.299, 0.299},
		{"deuteranopia mixes red and green", ModeDeuteranopia, 1, 0, 0, 0.625, 0.70, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.mode.Percentages().Apply(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.wantR, r, 1e-6)
			assert.InDelta(t, tt.wantG, g, 1e-6)
			assert.InDelta(t, tt.wantB, b, 1e-6)
		})
	}
}

func rowSum(row [3]float32) float64 {
	return float64(row[0]) + float64(row[1]) + float64(row[2])
}
