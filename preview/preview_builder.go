package preview

import (
	"time"

	"github.com/Carmen-Shannon/oxy-colorblind/renderer"
	"github.com/Carmen-Shannon/oxy-colorblind/window"
)

// PreviewBuilderOption is a functional option for configuring a Preview.
// Use the With* functions to create options that are applied directly to the preview instance.
type PreviewBuilderOption func(*preview)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - PreviewBuilderOption: option function to apply
func WithProfiling(enabled bool) PreviewBuilderOption {
	return func(p *preview) {
		p.profilingEnabled = enabled
	}
}

// WithTickRate sets the tick rate in ticks per second.
// The tick callback will be called at this rate for input and state updates.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - PreviewBuilderOption: option function to apply
func WithTickRate(fps float64) PreviewBuilderOption {
	return func(p *preview) {
		if fps <= 0 {
			fps = 60.0
		}
		p.tickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a pre-configured window for the preview to use.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - PreviewBuilderOption: option function to apply
func WithWindow(w window.Window) PreviewBuilderOption {
	return func(p *preview) {
		p.window = w
	}
}

// WithPostProcessor sets the post processor driven by the render loop.
//
// Parameters:
//   - pp: a pre-configured PostProcessor instance
//
// Returns:
//   - PreviewBuilderOption: option function to apply
func WithPostProcessor(pp renderer.PostProcessor) PreviewBuilderOption {
	return func(p *preview) {
		p.processor = pp
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - PreviewBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) PreviewBuilderOption {
	return func(p *preview) {
		if fps <= 0 {
			p.renderFrameLimit = 0
			return
		}
		p.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
