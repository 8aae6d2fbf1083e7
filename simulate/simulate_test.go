package simulate

import (
	"image"
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/oxy-colorblind/colorblind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solid returns a w x h image filled with a single color.
func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// assertUniform checks that every pixel of img is within tolerance of want.
func assertUniform(t *testing.T, img *image.RGBA, want color.RGBA, tolerance int) {
	t.Helper()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			got := img.RGBAAt(x, y)
			assert.InDelta(t, int(want.R), int(got.R), float64(tolerance), "red at (%d,%d)", x, y)
			assert.InDelta(t, int(want.G), int(got.G), float64(tolerance), "green at (%d,%d)", x, y)
			assert.InDelta(t, int(want.B), int(got.B), float64(tolerance), "blue at (%d,%d)", x, y)
			assert.Equal(t, want.A, got.A, "alpha at (%d,%d)", x, y)
		}
	}
}

func TestSimulatorNormalIsIdentity(t *testing.T) {
	sim := NewSimulator(WithWorkers(2))

	src := solid(8, 8, color.RGBA{R: 201, G: 87, B: 13, A: 255})
	out := sim.Image(src, colorblind.ModeNormal)

	assertUniform(t, out, color.RGBA{R: 201, G: 87, B: 13, A: 255}, 0)
}

func TestSimulatorWhiteAndBlackPreserved(t *testing.T) {
	sim := NewSimulator(WithWorkers(2))

	// Rows of these matrices sum to 1.0, so white maps to white and black to
	// black.
	modes := []colorblind.Mode{
		colorblind.ModeProtanopia,
		colorblind.ModeDeuteranopia,
		colorblind.ModeAchromatopsia,
	}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			white := sim.Image(solid(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255}), mode)
			assertUniform(t, white, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 1)

			black := sim.Image(solid(4, 4, color.RGBA{A: 255}), mode)
			assertUniform(t, black, color.RGBA{A: 255}, 0)
		})
	}
}

func TestSimulatorClampsOverdrivenChannels(t *testing.T) {
	sim := NewSimulator(WithWorkers(2))

	// The tritanopia red row sums to 1.45, so a white source would overflow the
	// red channel without clamping.
	out := sim.Image(solid(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255}), colorblind.ModeTritanopia)

	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			assert.Equal(t, uint8(255), out.RGBAAt(x, y).R)
		}
	}
}

func TestSimulatorAchromatopsiaGraysOut(t *testing.T) {
	sim := NewSimulator()

	// Achromatopsia averages the channels with luma weights, so the output is
	// the same in all three channels.
	out := sim.Image(solid(4, 4, color.RGBA{R: 200, G: 30, B: 90, A: 255}), colorblind.ModeAchromatopsia)

	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			got := out.RGBAAt(x, y)
			assert.Equal(t, got.R, got.G)
			assert.Equal(t, got.G, got.B)
		}
	}
}

func TestSimulatorAlphaPassthrough(t *testing.T) {
	sim := NewSimulator(WithWorkers(3))

	src := solid(5, 5, color.RGBA{R: 120, G: 60, B: 30, A: 77})
	out := sim.Image(src, colorblind.ModeDeuteranomaly)

	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			assert.Equal(t, uint8(77), out.RGBAAt(x, y).A)
		}
	}
}

func TestSimulatorApplyMatchesMatrix(t *testing.T) {
	sim := NewSimulator(WithWorkers(2))

	// Swap red and green with an explicit matrix.
	p := colorblind.ChannelMixPercentages{
		Red:   [3]float32{0, 1, 0},
		Green: [3]float32{1, 0, 0},
		Blue:  [3]float32{0, 0, 1},
	}
	out := sim.Apply(solid(3, 3, color.RGBA{R: 10, G: 250, B: 40, A: 255}), p)

	assertUniform(t, out, color.RGBA{R: 250, G: 10, B: 40, A: 255}, 0)
}

func TestSimulatorSourceUnmodified(t *testing.T) {
	sim := NewSimulator()

	src := solid(4, 4, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	_ = sim.Image(src, colorblind.ModeAchromatopsia)

	assertUniform(t, src, color.RGBA{R: 255, G: 0, B: 0, A: 255}, 0)
}

func TestSimulatorManyRowsFewWorkers(t *testing.T) {
	sim := NewSimulator(WithWorkers(2))

	// More rows than workers forces banding; every row must still be covered.
	src := solid(3, 64, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	out := sim.Image(src, colorblind.ModeDeuteranopia)

	require.Equal(t, src.Bounds(), out.Bounds())
	assertUniform(t, out, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 1)
}

func TestSimulatorEmptyImage(t *testing.T) {
	sim := NewSimulator()

	out := sim.Image(image.NewRGBA(image.Rect(0, 0, 0, 0)), colorblind.ModeProtanopia)
	require.NotNil(t, out)
	assert.Equal(t, 0, out.Bounds().Dx())
}
