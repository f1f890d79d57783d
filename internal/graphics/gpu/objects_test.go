package gpu_test

import (
	"errors"
	"testing"

	"voxelchunk/internal/graphics/gpu"
	"voxelchunk/internal/graphics/gpu/gputest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVertexArrayChecksHandle(t *testing.T) {
	d := gputest.New()
	d.FailVertexArrays = 1

	_, err := gpu.NewVertexArray(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gpu.ErrVertexArrayCreation))

	var ce *gpu.CreateError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "vertex array", ce.Object)

	vao, err := gpu.NewVertexArray(d)
	require.NoError(t, err)
	assert.NotZero(t, vao.ID)
}

func TestNewBufferChecksHandle(t *testing.T) {
	d := gputest.New()
	d.FailBuffers = 1

	_, err := gpu.NewBuffer(d, "index buffer")
	assert.ErrorIs(t, err, gpu.ErrBufferCreation)
	assert.Contains(t, err.Error(), "index buffer")

	b, err := gpu.NewBuffer(d, "index buffer")
	require.NoError(t, err)
	b.Delete(d)
	assert.Zero(t, d.Live())
}

func TestBufferUpload(t *testing.T) {
	d := gputest.New()
	b, err := gpu.NewBuffer(d, "vertex buffer")
	require.NoError(t, err)

	b.Upload(d, gpu.ArrayBuffer, []byte{1, 2, 3}, gpu.StaticDraw)
	assert.Equal(t, b.ID, d.Bound[gpu.ArrayBuffer])
	assert.Equal(t, []byte{1, 2, 3}, d.Data[b.ID])
	assert.Equal(t, gpu.StaticDraw, d.Usage[b.ID])
}

func TestAttribLayoutApply(t *testing.T) {
	d := gputest.New()
	vao, err := gpu.NewVertexArray(d)
	require.NoError(t, err)
	vao.Bind(d)

	layout := gpu.AttribLayout{
		Stride: 20,
		Attribs: []gpu.Attrib{
			{Location: 0, Components: 3, Offset: 0},
			{Location: 1, Components: 2, Offset: 12},
		},
	}
	layout.Apply(d)

	attrs := d.Attribs[vao.ID]
	require.Len(t, attrs, 2)
	assert.True(t, attrs[1].Enabled)
	assert.Equal(t, int32(2), attrs[1].Size)
	assert.Equal(t, uintptr(12), attrs[1].Offset)
	assert.Equal(t, int32(20), attrs[1].Stride)
	assert.Equal(t, gpu.Float, attrs[0].Type)
}

func TestDeleteZeroHandleIsNoop(t *testing.T) {
	d := gputest.New()
	gpu.VertexArray{}.Delete(d)
	gpu.Buffer{}.Delete(d)
	assert.Empty(t, d.Calls)
}
