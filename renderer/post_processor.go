// package renderer implements the GPU post-processing pass that applies a
// color-blindness simulation to a captured scene image and presents the result
// to a window surface.
package renderer

import (
	_ "embed"
	"image"
	"sync"

	"github.com/Carmen-Shannon/oxy-colorblind/colorblind"
	"github.com/Carmen-Shannon/oxy-colorblind/common"
	"github.com/Carmen-Shannon/oxy-colorblind/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-colorblind/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-colorblind/renderer/shader"
	"github.com/Carmen-Shannon/oxy-colorblind/window"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/post_process.wgsl
var postProcessWGSL string

const (
	postProcessPipelineKey = "post_process"

	// Binding indices within group 0 of the post-process shader.
	sourceTextureBinding = 0
	sourceSamplerBinding = 1
	percentagesBinding   = 2
)

// postProcessor is the implementation of the PostProcessor interface.
type postProcessor struct {
	mu *sync.Mutex

	settings colorblind.Settings

	backendType RendererBackendType
	backend     RendererBackend

	pipeline pipeline.Pipeline
	provider bind_group_provider.BindGroupProvider

	// layoutDescriptor is the merged group 0 layout used to (re)build the bind group.
	layoutDescriptor wgpu.BindGroupLayoutDescriptor

	// ready is set once a source image has been uploaded and the bind group built.
	// Render skips the pass until then, so callers can run the frame loop before
	// the first capture arrives.
	ready bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// PostProcessor drives the color-blindness simulation pass.
//
// The typical frame flow is:
//  1. Mutate Settings() between frames (set or cycle the mode, toggle enabled)
//  2. Update() derives the active matrix and uploads it to the GPU when it changed
//  3. Render() encodes and submits the full-screen pass
//  4. Present() displays the result
//
// The source image the pass operates on is supplied via UploadSource and can be
// replaced at any time between frames.
type PostProcessor interface {
	// Settings returns the simulation settings owned by this post processor.
	// Mutations are picked up by the next Update call.
	//
	// Returns:
	//   - colorblind.Settings: the settings instance
	Settings() colorblind.Settings

	// UploadSource uploads a new source image for the pass to sample. Creates the GPU
	// source texture on first call and recreates it when the image dimensions change,
	// rebuilding the bind group as needed.
	//
	// Parameters:
	//   - img: the image to upload
	//
	// Returns:
	//   - error: an error if staging or the GPU upload fails
	UploadSource(img image.Image) error

	// Update derives the active channel-mixing matrix from the settings and writes it
	// to the GPU uniform buffer. The write is skipped when the settings have not
	// changed since the previous call.
	Update()

	// Render encodes and submits the full-screen simulation pass for the current frame.
	// The pass is skipped without error until a source image has been uploaded.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	Render() error

	// Present presents the rendered frame to the display.
	// Must be called once per frame after Render.
	Present()

	// Resize reconfigures the surface for a new window size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered
	// to the display. A call to Resize is required after changing this for the new mode to
	// take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Release releases all GPU resources held by the post processor.
	Release()
}

var _ PostProcessor = &postProcessor{}

// NewPostProcessor creates a PostProcessor rendering to the given window's surface.
// It creates the GPU backend, compiles the post-process shaders, and registers the
// render pipeline. A source image must be uploaded via UploadSource before the pass
// produces output.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window providing the surface to render into
//   - options: variadic list of PostProcessorBuilderOption functions to configure the post processor
//
// Returns:
//   - PostProcessor: a new PostProcessor instance
//   - error: an error if pipeline or sampler creation fails
func NewPostProcessor(backendType RendererBackendType, win window.Window, options ...PostProcessorBuilderOption) (PostProcessor, error) {
	p := &postProcessor{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(p)
	}

	if p.settings == nil {
		p.settings = colorblind.NewSettings()
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		p.backend = newWGPUPostProcessBackend(win.SurfaceDescriptor(), p.forceFallbackAdapter)
	}

	if p.pendingPresentMode != nil {
		p.backend.SetPresentMode(*p.pendingPresentMode)
	}

	p.backend.ConfigureSurface(win.Width(), win.Height())

	vs := shader.NewShader(postProcessPipelineKey+"_vs", shader.ShaderTypeVertex, postProcessWGSL)
	fs := shader.NewShader(postProcessPipelineKey+"_fs", shader.ShaderTypeFragment, postProcessWGSL)

	p.pipeline = pipeline.NewPipeline(postProcessPipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)
	if err := p.backend.RegisterRenderPipeline(p.pipeline); err != nil {
		return nil, err
	}

	// The uniform layout comes from the fragment shader, which declares all of
	// group 0. The vertex stage sees the same declarations, so merging keeps the
	// visibility flags consistent with the pipeline layout.
	merged := mergeBindGroupLayouts(vs.BindGroupLayoutDescriptors(), fs.BindGroupLayoutDescriptors())
	p.layoutDescriptor = merged[0]

	p.provider = bind_group_provider.NewBindGroupProvider(postProcessPipelineKey)
	if err := p.backend.InitSampler(p.provider, sourceSamplerBinding, common.SamplerStagingData{}); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *postProcessor) Settings() colorblind.Settings {
	return p.settings
}

func (p *postProcessor) UploadSource(img image.Image) error {
	staged, err := common.StageImage(img)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	recreated, err := p.backend.UploadSource(p.provider, sourceTextureBinding, staged)
	if err != nil {
		return err
	}

	if recreated || !p.ready {
		if err := p.backend.InitBindGroup(p.provider, p.layoutDescriptor, nil, nil); err != nil {
			return err
		}
		p.ready = true

		// The uniform buffer starts zeroed, so push the current matrix regardless
		// of the settings dirty state.
		pct, _ := p.settings.Derive()
		p.writePercentages(pct)
	}

	return nil
}

func (p *postProcessor) Update() {
	pct, changed := p.settings.Derive()
	if !changed {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		// No buffer yet. The derived value is cached on the settings and uploaded
		// when the bind group is built.
		return
	}
	p.writePercentages(pct)
}

// writePercentages marshals the matrix into the GPU uniform layout and stages the
// buffer write. Caller holds the mutex or is still single-threaded in construction.
func (p *postProcessor) writePercentages(pct colorblind.ChannelMixPercentages) {
	uniform := colorblind.NewGPUPercentagesUniform(pct)
	p.backend.WriteBuffers([]bind_group_provider.BufferWrite{
		{
			Provider: p.provider,
			Binding:  percentagesBinding,
			Offset:   0,
			Data:     uniform.Marshal(),
		},
	})
}

func (p *postProcessor) Render() error {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()

	if !ready {
		return nil
	}

	if err := p.backend.BeginFrame(); err != nil {
		return err
	}
	p.backend.Draw(p.pipeline, []bind_group_provider.BindGroupProvider{p.provider})
	p.backend.EndFrame()
	return nil
}

func (p *postProcessor) Present() {
	p.backend.Present()
}

func (p *postProcessor) Resize(width, height int) {
	p.backend.ConfigureSurface(width, height)
}

func (p *postProcessor) SetPresentMode(mode PresentMode) {
	p.backend.SetPresentMode(mode)
}

func (p *postProcessor) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ready = false
	if p.provider != nil {
		p.provider.Release()
	}
	p.backend.Release()
}
