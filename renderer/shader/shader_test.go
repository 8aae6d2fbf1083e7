package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postProcessSource = `
struct Percentages {
    red: vec3<f32>,
    green: vec3<f32>,
    blue: vec3<f32>,
}

@group(0) @binding(0) var sourceTexture: texture_2d<f32>;
@group(0) @binding(1) var sourceSampler: sampler;
@group(0) @binding(2) var<uniform> percentages: Percentages;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    var out: VertexOutput;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(0.0);
}
`

func TestNewShaderParsesEntryPoints(t *testing.T) {
	vs := NewShader("post_process_vs", ShaderTypeVertex, postProcessSource)
	fs := NewShader("post_process_fs", ShaderTypeFragment, postProcessSource)

	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, vs.ShaderType())
	assert.Equal(t, ShaderTypeFragment, fs.ShaderType())
}

func TestNewShaderModuleDescriptor(t *testing.T) {
	s := NewShader("post_process_fs", ShaderTypeFragment, postProcessSource)

	require.NotNil(t, s.Module())
	assert.Equal(t, "post_process_fs", s.Module().Label)
	require.NotNil(t, s.Module().WGSLDescriptor)
	assert.Equal(t, postProcessSource, s.Module().WGSLDescriptor.Code)
	assert.Equal(t, postProcessSource, s.Source())
}

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("broken", ShaderTypeFragment, "")
	})
}

func TestParseBindGroupLayoutsClassifiesResources(t *testing.T) {
	s := NewShader("post_process_fs", ShaderTypeFragment, postProcessSource)

	descriptors := s.BindGroupLayoutDescriptors()
	require.Len(t, descriptors, 1)

	entries := descriptors[0].Entries
	require.Len(t, entries, 3)

	// Entries are sorted by binding index.
	assert.Equal(t, uint32(0), entries[0].Binding)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, entries[0].Texture.SampleType)
	assert.Equal(t, wgpu.TextureViewDimension2D, entries[0].Texture.ViewDimension)
	assert.False(t, entries[0].Texture.Multisampled)

	assert.Equal(t, uint32(1), entries[1].Binding)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, entries[1].Sampler.Type)

	assert.Equal(t, uint32(2), entries[2].Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entries[2].Buffer.Type)

	for _, entry := range entries {
		assert.Equal(t, wgpu.ShaderStageFragment, entry.Visibility)
	}
}

func TestParseBindGroupLayoutsComputesUniformSize(t *testing.T) {
	s := NewShader("post_process_fs", ShaderTypeFragment, postProcessSource)

	entries := s.BindGroupLayoutDescriptor(0).Entries
	require.Len(t, entries, 3)

	// Three vec3<f32> fields at 16-byte alignment: offsets 0, 16, 32, total 48.
	assert.Equal(t, uint64(48), entries[2].Buffer.MinBindingSize)
}

func TestBindGroupVarNames(t *testing.T) {
	s := NewShader("post_process_fs", ShaderTypeFragment, postProcessSource)

	assert.Equal(t, "sourceTexture", s.BindGroupVarName(0, 0))
	assert.Equal(t, "sourceSampler", s.BindGroupVarName(0, 1))
	assert.Equal(t, "percentages", s.BindGroupVarName(0, 2))
	assert.Equal(t, "", s.BindGroupVarName(1, 0))

	binding, ok := s.BindGroupFromVarName(0, "percentages")
	require.True(t, ok)
	assert.Equal(t, 2, binding)

	_, ok = s.BindGroupFromVarName(0, "missing")
	assert.False(t, ok)
}

func TestParseEntryPointIgnoresComments(t *testing.T) {
	source := `
// @vertex
// fn commented_out() {}
/* @fragment
fn also_commented() {} */
@vertex
fn real_vertex() -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0);
}
`
	assert.Equal(t, "real_vertex", parseEntryPoint(source, ShaderTypeVertex))
	assert.Equal(t, "", parseEntryPoint(source, ShaderTypeFragment))
}

func TestStripBlockCommentsNested(t *testing.T) {
	source := "a /* outer /* inner */ still outer */ b"
	assert.Equal(t, "a  b", stripBlockComments(source))
}

func TestComputeStructSizesNestedStructs(t *testing.T) {
	source := `
struct Inner {
    a: vec3<f32>,
    b: f32,
}
struct Outer {
    first: Inner,
    second: vec4<f32>,
}
`
	structs := parseStructBlocks(stripComments(source))
	sizes := computeStructSizes(structs)

	require.Contains(t, sizes, "Inner")
	require.Contains(t, sizes, "Outer")
	// Inner: vec3 at 0 (size 12, align 16), f32 at 12, rounded to 16.
	assert.Equal(t, uint64(16), sizes["Inner"].size)
	// Outer: Inner at 0 (16), vec4 at 16, total 32.
	assert.Equal(t, uint64(32), sizes["Outer"].size)
}

func TestResolveTypeLayoutArrays(t *testing.T) {
	known := map[string]wgslTypeLayout{}

	fixed, ok := resolveTypeLayout("array<vec3<f32>, 3>", known)
	require.True(t, ok)
	// vec3<f32> stride rounds up to 16.
	assert.Equal(t, uint64(48), fixed.size)

	_, ok = resolveTypeLayout("array<Unknown, 2>", known)
	assert.False(t, ok)
}

func TestBuiltinFieldsExcludedFromLayout(t *testing.T) {
	source := `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}
`
	structs := parseStructBlocks(stripComments(source))
	sizes := computeStructSizes(structs)

	require.Contains(t, sizes, "VertexOutput")
	// Only the vec2 counts; the @builtin position is not part of the buffer layout.
	assert.Equal(t, uint64(8), sizes["VertexOutput"].size)
}
