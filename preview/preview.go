package preview

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-colorblind/preview/profiler"
	"github.com/Carmen-Shannon/oxy-colorblind/renderer"
	"github.com/Carmen-Shannon/oxy-colorblind/window"
)

// preview implements the Preview interface.
// Coordinates the tick, render, and window threads.
type preview struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window    window.Window
	processor renderer.PostProcessor

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate     time.Duration
	tickCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Preview is the main entry point for the interactive viewer.
// It orchestrates the tick loop, render loop, and window management
// around a single post-processing effect.
type Preview interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Processor returns the post processor driven by the render loop.
	//
	// Returns:
	//   - renderer.PostProcessor: the post processor instance
	Processor() renderer.PostProcessor

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the tick rate in ticks per second.
	// The tick callback will be called at this rate for input and state updates.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each tick.
	// Use this for input processing and effect state updates.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the main preview loop (blocks until window closes).
	Run()

	// Quit signals all preview goroutines to stop and shuts down the viewer.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewPreview creates a new Preview instance with the provided options.
// Initializes the quit channel and profiler with sensible defaults.
// Options are applied directly to the preview struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for preview configuration (window, processor, tick rate, etc.)
//
// Returns:
//   - Preview: the newly created preview
func NewPreview(options ...PreviewBuilderOption) Preview {
	p := &preview{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		tickRate:         time.Second / 60,
	}

	for _, opt := range options {
		opt(p)
	}

	if p.window != nil && p.processor != nil {
		p.window.SetResizeCallback(func(width, height int) {
			p.processor.Resize(width, height)
		})
	}

	return p
}

func (p *preview) Window() window.Window {
	return p.window
}

func (p *preview) Processor() renderer.PostProcessor {
	return p.processor
}

func (p *preview) Run() {
	p.handle()
	p.window.ProcessMessages()
}

// Quit signals all preview goroutines to stop and shuts down the viewer.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (p *preview) Quit() {
	p.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (p *preview) signalQuit() {
	p.quitOnce.Do(func() {
		p.running = false
		close(p.quitChannel)
	})
}

// handle launches the tick, render, and quit goroutines.
// Each goroutine is tracked by the preview's WaitGroup.
func (p *preview) handle() {
	p.wg.Add(3)
	go p.handleTick()
	go p.handleRender()
	go p.handleQuit()
}

// handleTick runs the fixed-rate tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (p *preview) handleTick() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.tickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-p.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if p.tickCallback != nil {
				p.tickCallback(dt)
			}
		case newRate := <-p.tickRateChannel:
			ticker.Reset(newRate)
			p.tickRate = newRate
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Each frame flushes pending effect state to the GPU, records the post-processing pass,
// and presents the swapchain. Recovers from panics to avoid crashing the process and
// signals quit on recovery.
func (p *preview) handleRender() {
	defer p.wg.Done()
	// Recover from panics inside the render goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			p.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-p.quitChannel:
			return
		default:
			lastRender = time.Now()

			if p.processor != nil {
				// Flush pending settings before recording the pass so the frame
				// never samples a half-written uniform.
				p.processor.Update()
				if err := p.processor.Render(); err != nil {
					log.Printf("render frame failed: %v", err)
				} else {
					p.processor.Present()
				}
			}

			if p.profilingEnabled && p.profiler != nil {
				p.profiler.Tick()
			}

			// Frame rate limiting
			if p.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := p.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (p *preview) handleQuit() {
	defer p.wg.Done()
	<-p.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (p *preview) EnableProfiler() {
	p.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (p *preview) DisableProfiler() {
	p.profilingEnabled = false
}

// SetTickRate sets the tick rate in ticks per second.
// If the preview is running, the change takes effect immediately.
func (p *preview) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if p.running {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case p.tickRateChannel <- newRate:
		default:
			select {
			case <-p.tickRateChannel:
			default:
			}
			p.tickRateChannel <- newRate
		}
	} else {
		p.tickRate = newRate
	}
}

// SetTickCallback registers the function called each tick.
func (p *preview) SetTickCallback(callback func(deltaTime float32)) {
	p.tickCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (p *preview) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		p.renderFrameLimit = 0
		return
	}
	p.renderFrameLimit = time.Second / time.Duration(fps)
}
