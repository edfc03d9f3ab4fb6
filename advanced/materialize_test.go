package advanced

import (
	"bytes"
	"math"
	"os"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polymesh/dbg"
)

func triangleResult() *Result {
	return &Result{
		Vertices:        []float64{0, 0, 1, 0, 0, 1},
		TriangleIndices: []int{0, 1, 2},
	}
}

func TestMaterialize(t *testing.T) {
	buffers, err := Materialize(triangleResult(), 2.5, CheckedNarrowing)
	require.NoError(t, err)

	assert.Equal(t, 3, buffers.VertexCount())
	assert.Equal(t, []ms3.Vec{{X: 0, Y: 0, Z: 2.5}, {X: 1, Y: 0, Z: 2.5}, {X: 0, Y: 1, Z: 2.5}}, buffers.Positions)
	assert.Equal(t, []uint32{0, 1, 2}, buffers.Indices)
	assert.Equal(t, make([]ms3.Vec, 3), buffers.Normals)
	assert.Equal(t, make([]ms2.Vec, 3), buffers.UVs)
}

func TestMaterialize_CheckedNarrowing(t *testing.T) {
	for name, tc := range map[string]struct {
		vertices []float64
		z        float64
	}{
		"huge x":   {[]float64{1e300, 0, 1, 0, 0, 1}, 0},
		"huge y":   {[]float64{0, -1e40, 1, 0, 0, 1}, 0},
		"nan":      {[]float64{0, 0, math.NaN(), 0, 0, 1}, 0},
		"infinity": {[]float64{0, 0, 1, 0, 0, math.Inf(1)}, 0},
		"z":        {[]float64{0, 0, 1, 0, 0, 1}, math.Inf(-1)},
	} {
		t.Run(name, func(t *testing.T) {
			result := &Result{Vertices: tc.vertices, TriangleIndices: []int{0, 1, 2}}
			buffers, err := Materialize(result, tc.z, CheckedNarrowing)
			assert.Nil(t, buffers)
			assert.True(t, errors.Is(err, ErrCouldNotConvertToFloat), "got %v", err)
		})
	}
}

func TestMaterialize_IndexOverflow(t *testing.T) {
	result := triangleResult()
	result.TriangleIndices = []int{0, 1, -1}
	_, err := Materialize(result, 0, CheckedNarrowing)
	assert.True(t, errors.Is(err, ErrIndexOverflow))

	if strconv.IntSize < 64 {
		t.Skip("int cannot hold indices past uint32")
	}
	maxIndex := uint64(math.MaxUint32)
	result.TriangleIndices = []int{0, 1, int(maxIndex + 2)}
	_, err = Materialize(result, 0, CheckedNarrowing)
	assert.True(t, errors.Is(err, ErrIndexOverflow))

	// Unchecked narrowing wraps instead of failing.
	buffers, err := Materialize(result, 0, UncheckedNarrowing)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 1}, buffers.Indices)
}

func TestMaterialize_DebugOutputInBothModes(t *testing.T) {
	var buf bytes.Buffer
	dbg.Output = &buf
	defer func() { dbg.Output = os.Stderr }()
	t.Setenv(dbg.EnvVar, "1")

	for _, narrowing := range []Narrowing{CheckedNarrowing, UncheckedNarrowing} {
		buf.Reset()
		_, err := Materialize(triangleResult(), 1, narrowing)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "[materialize]")
		assert.Contains(t, buf.String(), narrowing.String()+": 3 vertices, 1 triangles at z=1")
	}
}

func TestMaterialize_UncheckedNarrowing(t *testing.T) {
	result := &Result{
		Vertices:        []float64{1e300, 0, 1, 0, 0, 1},
		TriangleIndices: []int{0, 1, 2},
	}
	buffers, err := Materialize(result, 0.1, UncheckedNarrowing)
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), buffers.Positions[1].Z)
	assert.Equal(t, float32(1), buffers.Positions[1].X)
	assert.Equal(t, []uint32{0, 1, 2}, buffers.Indices)
}

func TestParseNarrowing(t *testing.T) {
	for _, n := range []Narrowing{CheckedNarrowing, UncheckedNarrowing} {
		parsed, err := ParseNarrowing(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
	parsed, err := ParseNarrowing("")
	assert.NoError(t, err)
	assert.Equal(t, CheckedNarrowing, parsed)

	_, err = ParseNarrowing("sometimes")
	assert.Error(t, err)
}
