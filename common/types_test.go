package common

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageImageConvertsToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 0, G: 0, B: 255, A: 255})

	staged, err := StageImage(src)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), staged.Width)
	assert.Equal(t, uint32(2), staged.Height)
	require.Len(t, staged.Pixels, 2*2*4)
	assert.Equal(t, byte(255), staged.Pixels[0])  // (0,0) red channel
	assert.Equal(t, byte(255), staged.Pixels[14]) // (1,1) blue channel
}

func TestStageImageNormalizesBoundsOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 13, 24))
	src.SetRGBA(10, 20, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	staged, err := StageImage(src)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), staged.Width)
	assert.Equal(t, uint32(4), staged.Height)
	assert.Equal(t, byte(1), staged.Pixels[0])
}

func TestStageImageRejectsNilAndEmpty(t *testing.T) {
	_, err := StageImage(nil)
	assert.Error(t, err)

	_, err = StageImage(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	assert.Error(t, err)
}
