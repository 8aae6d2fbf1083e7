package colorblind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()
	assert.Equal(t, ModeNormal, s.Mode())
	assert.False(t, s.Enabled())
	assert.Equal(t, ModeNormal, s.EffectiveMode())
}

func TestNewSettingsOptions(t *testing.T) {
	s := NewSettings(WithMode(ModeTritanopia), WithEnabled(true))
	assert.Equal(t, ModeTritanopia, s.Mode())
	assert.True(t, s.Enabled())
	assert.Equal(t, ModeTritanopia, s.EffectiveMode())
}

// Disabled settings always behave as Normal regardless of the selected mode.
func TestEffectiveModeDisabledOverridesSelection(t *testing.T) {
	for m := ModeNormal; m < modeCount; m++ {
		s := NewSettings(WithMode(m))
		assert.Equal(t, ModeNormal, s.EffectiveMode(), "mode %v", m)

		s.SetEnabled(true)
		assert.Equal(t, m, s.EffectiveMode(), "mode %v", m)

		s.SetEnabled(false)
		assert.Equal(t, ModeNormal, s.EffectiveMode(), "mode %v", m)
	}
}

func TestDeriveChangeDetection(t *testing.T) {
	s := NewSettings()

	// A freshly created Settings publishes once.
	p, changed := s.Derive()
	require.True(t, changed)
	assert.Equal(t, ModeNormal.Percentages(), p)

	// No intervening mutation: the second derivation is a no-op.
	p2, changed := s.Derive()
	assert.False(t, changed)
	assert.Equal(t, p, p2)

	// A real mutation marks the settings changed again.
	s.SetEnabled(true)
	s.SetMode(ModeProtanopia)
	p3, changed := s.Derive()
	assert.True(t, changed)
	assert.Equal(t, ModeProtanopia.Percentages(), p3)

	// Writing the same values back is not a change.
	s.SetEnabled(true)
	s.SetMode(ModeProtanopia)
	_, changed = s.Derive()
	assert.False(t, changed)
}

func TestDerivePercentagesCacheTracksDerive(t *testing.T) {
	s := NewSettings(WithMode(ModeDeuteranopia), WithEnabled(true))
	_, _ = s.Derive()
	assert.Equal(t, ModeDeuteranopia.Percentages(), s.Percentages())

	// Mutation alone does not move the cache; the derivation step does.
	s.SetMode(ModeTritanomaly)
	assert.Equal(t, ModeDeuteranopia.Percentages(), s.Percentages())
	_, _ = s.Derive()
	assert.Equal(t, ModeTritanomaly.Percentages(), s.Percentages())
}

func TestSettingsCycle(t *testing.T) {
	s := NewSettings(WithMode(ModeAchromatomaly))
	assert.Equal(t, ModeNormal, s.Cycle())
	assert.Equal(t, ModeNormal, s.Mode())

	assert.Equal(t, ModeProtanopia, s.Cycle())
	assert.Equal(t, ModeProtanomaly, s.Cycle())
}

// End-to-end scenarios from the simulation contract.
func TestDeriveScenarios(t *testing.T) {
	t.Run("deuteranomaly enabled", func(t *testing.T) {
		s := NewSettings(WithMode(ModeDeuteranomaly), WithEnabled(true))
		p, changed := s.Derive()
		require.True(t, changed)
		assert.Equal(t, [3]float32{0.80, 0.20, 0}, p.Red)
		assert.Equal(t, [3]float32{0.25833, 0.74167, 0}, p.Green)
		assert.Equal(t, [3]float32{0, 0.14167, 0.85833}, p.Blue)
	})

	t.Run("tritanopia disabled derives identity", func(t *testing.T) {
		s := NewSettings(WithMode(ModeTritanopia))
		p, changed := s.Derive()
		require.True(t, changed)
		assert.Equal(t, [3]float32{1, 0, 0}, p.Red)
		assert.Equal(t, [3]float32{0, 1, 0}, p.Green)
		assert.Equal(t, [3]float32{0, 0, 1}, p.Blue)
	})
}
