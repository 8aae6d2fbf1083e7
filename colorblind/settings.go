package colorblind

import "sync"

// settings is the implementation of the Settings interface.
type settings struct {
	mu *sync.Mutex

	mode    Mode
	enabled bool

	// dirty is set whenever mode or enabled actually changes and cleared by
	// Derive, so the derived percentages are only recomputed (and republished
	// to the GPU) when the state changed since the last derivation.
	dirty bool

	// derived caches the percentages of the effective mode as of the last Derive call.
	derived ChannelMixPercentages
}

// Settings holds the color-blindness simulation state for a single capture
// point (camera / post processor). Each capture point owns exactly one
// Settings for its entire lifetime; there is no shared mutable state between
// capture points. Application or input logic mutates the mode and enabled
// flag during the tick phase of a frame, and the post processor derives the
// channel-mixing percentages from it strictly afterwards in the same frame,
// before the rendering pass consumes them.
//
// The derived percentages always correspond to the effective mode: the
// selected mode when enabled, Normal otherwise. Disabling the simulation
// therefore restores unmodified output without losing the mode selection.
type Settings interface {
	// Mode returns the currently selected simulation mode.
	// This is the selection even while the simulation is disabled.
	//
	// Returns:
	//   - Mode: the selected mode
	Mode() Mode

	// Enabled returns whether the simulation is enabled.
	//
	// Returns:
	//   - bool: true if the simulation is enabled
	Enabled() bool

	// EffectiveMode returns the mode the simulation actually applies:
	// the selected mode when enabled, ModeNormal otherwise.
	//
	// Returns:
	//   - Mode: the effective mode
	EffectiveMode() Mode

	// SetMode selects the simulation mode. Marks the settings changed only
	// when the mode differs from the current selection.
	//
	// Parameters:
	//   - m: the mode to select
	SetMode(m Mode)

	// SetEnabled toggles the simulation on or off. Marks the settings changed
	// only when the flag differs from the current value.
	//
	// Parameters:
	//   - enabled: true to enable the simulation
	SetEnabled(enabled bool)

	// Cycle advances the selected mode to its successor in the fixed cycling
	// order and returns the new selection. Intended to be called once per
	// discrete trigger edge (key-down event), not per continuous-press tick.
	//
	// Returns:
	//   - Mode: the newly selected mode
	Cycle() Mode

	// Derive recomputes the channel-mixing percentages from the effective mode
	// when the settings changed since the last call, and reports whether they
	// were recomputed. When nothing changed the cached value is returned with
	// changed == false, so callers can skip republishing to the GPU.
	//
	// Returns:
	//   - ChannelMixPercentages: the percentages of the effective mode
	//   - bool: true if the value was recomputed since the last call
	Derive() (ChannelMixPercentages, bool)

	// Percentages returns the most recently derived channel-mixing percentages
	// without consuming the change flag.
	//
	// Returns:
	//   - ChannelMixPercentages: the cached derived percentages
	Percentages() ChannelMixPercentages
}

var _ Settings = &settings{}

// NewSettings creates Settings with the default state: ModeNormal, disabled.
// The first Derive call always reports changed so a freshly attached capture
// point publishes its uniform once.
//
// Parameters:
//   - options: functional options to configure the settings
//
// Returns:
//   - Settings: the newly created settings
func NewSettings(options ...SettingsBuilderOption) Settings {
	s := &settings{
		mu:      &sync.Mutex{},
		mode:    ModeNormal,
		enabled: false,
		dirty:   true,
		derived: ModeNormal.Percentages(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *settings) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *settings) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *settings) EffectiveMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveMode()
}

func (s *settings) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == m {
		return
	}
	s.mode = m
	s.dirty = true
}

func (s *settings) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enabled == enabled {
		return
	}
	s.enabled = enabled
	s.dirty = true
}

func (s *settings) Cycle() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = s.mode.Cycle()
	s.dirty = true
	return s.mode
}

func (s *settings) Derive() (ChannelMixPercentages, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return s.derived, false
	}
	s.derived = s.effectiveMode().Percentages()
	s.dirty = false
	return s.derived, true
}

func (s *settings) Percentages() ChannelMixPercentages {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.derived
}

// effectiveMode returns the mode the simulation applies. Caller must hold the mutex.
func (s *settings) effectiveMode() Mode {
	if !s.enabled {
		return ModeNormal
	}
	return s.mode
}
