package colorblind

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUPercentagesUniformSize(t *testing.T) {
	g := NewGPUPercentagesUniform(ModeNormal.Percentages())
	assert.Equal(t, 48, g.Size())
}

func TestGPUPercentagesUniformMarshal(t *testing.T) {
	g := NewGPUPercentagesUniform(ModeDeuteranomaly.Percentages())
	buf := g.Marshal()
	require.Len(t, buf, 48)

	readVec3 := func(offset int) [3]float32 {
		var v [3]float32
		for i := range 3 {
			v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[offset+i*4:]))
		}
		return v
	}

	// WGSL uniform layout: vec3<f32> fields at offsets 0, 16, 32.
	assert.Equal(t, [3]float32{0.80, 0.20, 0}, readVec3(0))
	assert.Equal(t, [3]float32{0.25833, 0.74167, 0}, readVec3(16))
	assert.Equal(t, [3]float32{0, 0.14167, 0.85833}, readVec3(32))

	// Padding words are zeroed.
	for _, offset := range []int{12, 28, 44} {
		assert.Zero(t, binary.LittleEndian.Uint32(buf[offset:]), "padding at offset %d", offset)
	}
}
