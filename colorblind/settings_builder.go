package colorblind

// SettingsBuilderOption is a functional option for configuring Settings.
// Use the With* functions to create options.
type SettingsBuilderOption func(*settings)

// WithMode sets the initially selected simulation mode.
//
// Parameters:
//   - m: the mode to select
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithMode(m Mode) SettingsBuilderOption {
	return func(s *settings) {
		s.mode = m
	}
}

// WithEnabled sets whether the simulation starts enabled.
//
// Parameters:
//   - enabled: true to start with the simulation enabled
//
// Returns:
//   - SettingsBuilderOption: option function to apply
func WithEnabled(enabled bool) SettingsBuilderOption {
	return func(s *settings) {
		s.enabled = enabled
	}
}
