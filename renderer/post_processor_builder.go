package renderer

import "github.com/Carmen-Shannon/oxy-colorblind/colorblind"

// PostProcessorBuilderOption is a functional option applied to a post processor during
// construction via NewPostProcessor.
type PostProcessorBuilderOption func(*postProcessor)

// WithSettings sets the simulation settings instance the post processor will own.
// When not specified, a default Settings (Normal mode, disabled) is created.
//
// Parameters:
//   - s: the settings instance to use
//
// Returns:
//   - PostProcessorBuilderOption: a function that applies the settings option to a post processor
func WithSettings(s colorblind.Settings) PostProcessorBuilderOption {
	return func(p *postProcessor) {
		p.settings = s
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - PostProcessorBuilderOption: a function that applies the present mode option to a post processor
func WithPresentMode(mode PresentMode) PostProcessorBuilderOption {
	return func(p *postProcessor) {
		p.pendingPresentMode = &mode
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - PostProcessorBuilderOption: a function that applies the force software renderer option to a post processor
func WithForceSoftwareRenderer(force bool) PostProcessorBuilderOption {
	return func(p *postProcessor) {
		p.forceFallbackAdapter = force
	}
}
