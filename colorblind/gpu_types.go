package colorblind

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUPercentagesUniform is the GPU-aligned representation of the channel-mix
// uniform buffer. Matches the WGSL Percentages struct layout exactly: three
// vec3<f32> fields at 16-byte alignment, offsets 0, 16, and 32.
// Size: 48 bytes (WGSL uniform address space alignment).
type GPUPercentagesUniform struct {
	Red   [3]float32 // offset  0: red output row (vec3<f32>)
	_pad0 float32    // offset 12: padding to 16
	Green [3]float32 // offset 16: green output row (vec3<f32>)
	_pad1 float32    // offset 28: padding to 32
	Blue  [3]float32 // offset 32: blue output row (vec3<f32>)
	_pad2 float32    // offset 44: padding to 48 bytes
}

// NewGPUPercentagesUniform builds the GPU uniform from derived channel-mixing percentages.
//
// Parameters:
//   - p: the channel-mixing percentages to upload
//
// Returns:
//   - GPUPercentagesUniform: the GPU-aligned uniform value
func NewGPUPercentagesUniform(p ChannelMixPercentages) GPUPercentagesUniform {
	return GPUPercentagesUniform{
		Red:   p.Red,
		Green: p.Green,
		Blue:  p.Blue,
	}
}

// Size returns the size of the GPUPercentagesUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUPercentagesUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPercentagesUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUPercentagesUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Red[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Green[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.Blue[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], 0)
	binary.LittleEndian.PutUint32(buf[28:], 0)
	binary.LittleEndian.PutUint32(buf[44:], 0)
	return buf
}
