// package simulate applies a color-blindness channel-mixing matrix to images
// on the CPU. It is the software counterpart of the GPU post-processing pass:
// the same matrices, applied pixel-by-pixel to an image.Image. Useful for
// generating preview stills, feeding the demo's source texture, and as a
// reference implementation the GPU path can be checked against.
package simulate

import (
	"image"
	"image/draw"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-colorblind/colorblind"
	"github.com/chewxy/math32"
)

// simulator is the implementation of the Simulator interface.
type simulator struct {
	// pool manages a bounded set of reusable goroutines for the row-parallel
	// mixing phase. Workers persist across calls, avoiding per-call goroutine
	// spawn/teardown overhead.
	pool    worker.DynamicWorkerPool
	workers int
}

// Simulator converts images through a color-blindness simulation matrix.
// A Simulator owns a worker pool and can be reused across many images;
// concurrent calls are safe because each call works on its own buffers.
type Simulator interface {
	// Image applies the channel-mixing matrix of the given mode to an image.
	// The source image is not modified.
	//
	// Parameters:
	//   - img: the source image
	//   - mode: the simulation mode whose matrix to apply
	//
	// Returns:
	//   - *image.RGBA: the converted image
	Image(img image.Image, mode colorblind.Mode) *image.RGBA

	// Apply applies an explicit channel-mixing matrix to an image. Output
	// channels are clamped to [0, 255]; alpha is passed through unchanged.
	// The source image is not modified.
	//
	// Parameters:
	//   - img: the source image
	//   - p: the channel-mixing percentages to apply
	//
	// Returns:
	//   - *image.RGBA: the converted image
	Apply(img image.Image, p colorblind.ChannelMixPercentages) *image.RGBA
}

var _ Simulator = &simulator{}

// NewSimulator creates a Simulator with the provided options.
// The worker count defaults to NumCPU-1 (minimum 1).
//
// Parameters:
//   - options: functional options to configure the simulator
//
// Returns:
//   - Simulator: the newly created simulator
func NewSimulator(options ...SimulatorBuilderOption) Simulator {
	s := &simulator{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(s)
	}

	// Queue size of 256 accommodates one task per row band for large images with headroom.
	s.pool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)
	return s
}

func (s *simulator) Image(img image.Image, mode colorblind.Mode) *image.RGBA {
	return s.Apply(img, mode.Percentages())
}

func (s *simulator) Apply(img image.Image, p colorblind.ChannelMixPercentages) *image.RGBA {
	bounds := img.Bounds()

	src := image.NewRGBA(bounds)
	draw.Draw(src, bounds, img, bounds.Min, draw.Src)
	dst := image.NewRGBA(bounds)

	height := bounds.Dy()
	if height == 0 {
		return dst
	}

	// Split the image into one band of rows per worker and submit each band to
	// the pool. A WaitGroup provides a barrier since pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for per-call workloads.
	bandRows := (height + s.workers - 1) / s.workers

	var wg sync.WaitGroup
	taskID := 0
	for row := 0; row < height; row += bandRows {
		startRow := row
		endRow := min(row+bandRows, height)

		wg.Add(1)
		id := taskID
		taskID++
		s.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				mixRows(src, dst, p, startRow, endRow)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return dst
}

// mixRows applies the channel-mixing matrix to rows [startRow, endRow) of src,
// writing into dst. Both images share the same bounds and RGBA layout, so rows
// are addressed directly through Pix.
func mixRows(src, dst *image.RGBA, p colorblind.ChannelMixPercentages, startRow, endRow int) {
	width := src.Bounds().Dx()
	for y := startRow; y < endRow; y++ {
		rowStart := y * src.Stride
		for x := range width {
			i := rowStart + x*4

			r := float32(src.Pix[i]) / 255
			g := float32(src.Pix[i+1]) / 255
			b := float32(src.Pix[i+2]) / 255

			mr, mg, mb := p.Apply(r, g, b)

			dst.Pix[i] = quantize(mr)
			dst.Pix[i+1] = quantize(mg)
			dst.Pix[i+2] = quantize(mb)
			dst.Pix[i+3] = src.Pix[i+3]
		}
	}
}

// quantize clamps a mixed channel value to [0, 1] and converts it to an 8-bit channel.
// Clamping matters for the rows whose coefficients sum past 1.0.
func quantize(c float32) uint8 {
	return uint8(math32.Round(math32.Min(math32.Max(c, 0), 1) * 255))
}
