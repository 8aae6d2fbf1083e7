package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeBindGroupLayoutsORsVisibilityForSharedBindings(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "vs_group_0",
			Entries: []wgpu.BindGroupLayoutEntry{
				{Binding: 2, Visibility: wgpu.ShaderStageVertex, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
			},
		},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Label: "fs_group_0",
			Entries: []wgpu.BindGroupLayoutEntry{
				{Binding: 2, Visibility: wgpu.ShaderStageFragment, Buffer: wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform}},
			},
		},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Contains(t, merged, 0)
	require.Len(t, merged[0].Entries, 1)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, merged[0].Entries[0].Visibility)
}

func TestMergeBindGroupLayoutsKeepsStageExclusiveGroups(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		1: {
			Entries: []wgpu.BindGroupLayoutEntry{
				{Binding: 0, Visibility: wgpu.ShaderStageVertex},
			},
		},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Entries: []wgpu.BindGroupLayoutEntry{
				{Binding: 0, Visibility: wgpu.ShaderStageFragment},
				{Binding: 1, Visibility: wgpu.ShaderStageFragment},
			},
		},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Len(t, merged, 2)
	assert.Equal(t, wgpu.ShaderStageVertex, merged[1].Entries[0].Visibility)
	assert.Len(t, merged[0].Entries, 2)
}

func TestMergeBindGroupLayoutsSortsEntriesByBinding(t *testing.T) {
	vertex := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Entries: []wgpu.BindGroupLayoutEntry{
				{Binding: 2, Visibility: wgpu.ShaderStageVertex},
				{Binding: 0, Visibility: wgpu.ShaderStageVertex},
			},
		},
	}
	fragment := map[int]wgpu.BindGroupLayoutDescriptor{
		0: {
			Entries: []wgpu.BindGroupLayoutEntry{
				{Binding: 1, Visibility: wgpu.ShaderStageFragment},
			},
		},
	}

	merged := mergeBindGroupLayouts(vertex, fragment)
	require.Len(t, merged[0].Entries, 3)
	for i, e := range merged[0].Entries {
		assert.Equal(t, uint32(i), e.Binding)
	}
}
