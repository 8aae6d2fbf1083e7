package colorblind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "Normal"},
		{ModeProtanopia, "Protanopia"},
		{ModeProtanomaly, "Protanomaly"},
		{ModeDeuteranopia, "Deuteranopia"},
		{ModeDeuteranomaly, "Deuteranomaly"},
		{ModeTritanopia, "Tritanopia"},
		{ModeTritanomaly, "Tritanomaly"},
		{ModeAchromatopsia, "Achromatopsia"},
		{ModeAchromatomaly, "Achromatomaly"},
		{Mode(-1), "Normal"},
		{Mode(42), "Normal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestModeCycleOrder(t *testing.T) {
	tests := []struct {
		name string
		from Mode
		want Mode
	}{
		{"normal to protanopia", ModeNormal, ModeProtanopia},
		{"protanopia to protanomaly", ModeProtanopia, ModeProtanomaly},
		{"protanomaly to deuteranopia", ModeProtanomaly, ModeDeuteranopia},
		{"deuteranopia to deuteranomaly", ModeDeuteranopia, ModeDeuteranomaly},
		{"deuteranomaly to tritanopia", ModeDeuteranomaly, ModeTritanopia},
		{"tritanopia to tritanomaly", ModeTritanopia, ModeTritanomaly},
		{"tritanomaly to achromatopsia", ModeTritanomaly, ModeAchromatopsia},
		{"achromatopsia to achromatomaly", ModeAchromatopsia, ModeAchromatomaly},
		{"achromatomaly wraps to normal", ModeAchromatomaly, ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Cycle())
		})
	}
}

// Cycling nine times from any starting mode must land back on the starting
// mode, and no fewer than nine steps may do so — the order is a single cycle
// touching every variant exactly once.
func TestModeCycleClosure(t *testing.T) {
	for start := ModeNormal; start < modeCount; start++ {
		m := start
		seen := map[Mode]bool{start: true}
		for step := 1; step < modeCount; step++ {
			m = m.Cycle()
			assert.NotEqual(t, start, m, "cycle from %v closed early at step %d", start, step)
			assert.False(t, seen[m], "cycle from %v revisited %v at step %d", start, m, step)
			seen[m] = true
		}
		assert.Equal(t, start, m.Cycle(), "cycle from %v did not close after %d steps", start, modeCount)
	}
}

func TestModeCycleOutOfRange(t *testing.T) {
	assert.Equal(t, ModeNormal, Mode(-3).Cycle())
	assert.Equal(t, ModeNormal, Mode(99).Cycle())
}
