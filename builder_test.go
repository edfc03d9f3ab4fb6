package polymesh

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/polymesh/advanced"
	"github.com/osuushi/polymesh/internal/fixtures"
	"github.com/osuushi/polymesh/mesh"
)

func positionsOf(t *testing.T, m *mesh.Mesh) mesh.Float32x3 {
	values, ok := m.Attribute(mesh.AttributePosition)
	require.True(t, ok)
	return values.(mesh.Float32x3)
}

func TestBuild_EmptyInput(t *testing.T) {
	m, err := NewBuilder().Build()
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	m, ok := NewBuilder().TryBuild()
	assert.Nil(t, m)
	assert.False(t, ok)
}

func TestBuild_Triangle(t *testing.T) {
	var b Builder
	b.WithZIndex(3).AddRings(Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	m, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, mesh.TriangleList, m.Topology())
	assert.Equal(t, 3, m.VertexCount())
	require.Equal(t, 3, m.Indices().Len())
	assert.Equal(t, 1, m.TriangleCount())
	for _, p := range positionsOf(t, m) {
		assert.Equal(t, float32(3), p.Z)
	}

	normals, ok := m.Attribute(mesh.AttributeNormal)
	require.True(t, ok)
	assert.Equal(t, mesh.Float32x3(make([]ms3.Vec, 3)), normals)
	uvs, ok := m.Attribute(mesh.AttributeUV0)
	require.True(t, ok)
	assert.Equal(t, mesh.Float32x2(make([]ms2.Vec, 3)), uvs)
}

func TestBuild_SquareWithHole(t *testing.T) {
	var gotHoles []int
	recorder := advanced.TriangulatorFunc(func(vertices []float64, holeIndices []int, dimensions int) ([]int, error) {
		gotHoles = holeIndices
		return advanced.Earcut.Triangulate(vertices, holeIndices, dimensions)
	})

	input := fixtures.SquareWithHole()
	b := NewBuilder(WithTriangulator(recorder))
	b.AddPolygon(input)
	m, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []int{4}, gotHoles)
	assert.Equal(t, 7, m.VertexCount())
	assertCoversPolygons(t, m, []PolygonInput{input})
}

func TestBuild_MultiplePolygons(t *testing.T) {
	inputs := []PolygonInput{
		fixtures.Square(20, 20, 1),
		fixtures.SimpleStar(),
		fixtures.Translate(fixtures.StarOutline(), 40, 0),
	}
	b := NewBuilder(WithZIndex(-1))
	expectedTriangles := 0
	expectedVertices := 0
	for _, input := range inputs {
		b.AddPolygon(input)
		indices, err := advanced.Earcut.Triangulate(input.Vertices, input.HoleIndices, advanced.Dimensions)
		require.NoError(t, err)
		expectedTriangles += len(indices) / 3
		expectedVertices += input.VertexCount()
	}
	assert.Equal(t, 3, b.Len())

	m, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, expectedVertices, m.VertexCount())
	assert.Equal(t, 3*expectedTriangles, m.Indices().Len())
	for i := 0; i < m.Indices().Len(); i++ {
		assert.Less(t, m.Indices().At(i), m.VertexCount())
	}
	assertCoversPolygons(t, m, inputs)
}

func TestBuild_SVGFixtures(t *testing.T) {
	for _, name := range []string{"square_with_hole", "two_squares", "frame"} {
		t.Run(name, func(t *testing.T) {
			inputs := fixtures.Load(name)
			b := NewBuilder()
			for _, input := range inputs {
				b.AddPolygon(input)
			}
			m, err := b.Build()
			require.NoError(t, err)
			assertCoversPolygons(t, m, inputs)
		})
	}
}

func TestBuild_PolygonOrder(t *testing.T) {
	b := NewBuilder()
	b.AddPolygon(fixtures.Square(0, 0, 1))
	b.AddPolygon(fixtures.Triangle())
	result, err := b.Triangulate()
	require.NoError(t, err)

	require.Len(t, result.PolygonRanges, 2)
	for _, index := range result.TriangleIndices[result.PolygonRanges[1].Start:] {
		assert.GreaterOrEqual(t, index, 4, "triangle polygon should address vertices after the square")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	build := func() *mesh.Mesh {
		b := NewBuilder(WithZIndex(0.5))
		for _, input := range fixtures.Load("frame") {
			b.AddPolygon(input)
		}
		m, err := b.Build()
		require.NoError(t, err)
		return m
	}
	assert.Equal(t, build(), build())
}

func TestBuild_CheckedAndUncheckedNarrowing(t *testing.T) {
	huge := PolygonFromRings(Ring{{X: 0, Y: 0}, {X: 1e300, Y: 0}, {X: 0, Y: 1}})

	checked := NewBuilder()
	checked.AddPolygon(huge)
	_, err := checked.Build()
	assert.True(t, errors.Is(err, ErrCouldNotConvertToFloat))
	_, ok := checked.TryBuild()
	assert.False(t, ok)

	unchecked := NewBuilder(WithNarrowing(UncheckedNarrowing))
	unchecked.AddPolygon(huge)
	m, ok := unchecked.TryBuild()
	require.True(t, ok)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, UncheckedNarrowing, unchecked.Narrowing())
	assert.Equal(t, 0.0, unchecked.ZIndex())
	assert.Equal(t, 2.5, unchecked.WithZIndex(2.5).ZIndex())
}

func TestBuild_TriangulationFailure(t *testing.T) {
	panicky := advanced.TriangulatorFunc(func([]float64, []int, int) ([]int, error) {
		panic("no ears left")
	})
	b := NewBuilder(WithTriangulator(panicky))
	b.AddPolygon(fixtures.Triangle())

	_, err := b.Build()
	var triangulationErr *TriangulationError
	require.True(t, errors.As(err, &triangulationErr))
	assert.Equal(t, "no ears left", triangulationErr.Reason)

	_, ok := b.TryBuild()
	assert.False(t, ok)
}

func TestNewMesh_RejectsInconsistentBuffers(t *testing.T) {
	buffers := &advanced.Buffers{
		Positions: make([]ms3.Vec, 3),
		Normals:   make([]ms3.Vec, 2),
		UVs:       make([]ms2.Vec, 3),
		Indices:   []uint32{0, 1, 2},
	}
	_, err := NewMesh(buffers)
	assert.True(t, errors.Is(err, mesh.ErrLengthMismatch))
	_, ok := TryNewMesh(buffers)
	assert.False(t, ok)
}

// Check that the mesh triangles cover exactly the area of the polygons, and
// that sampled points are covered by exactly one triangle when inside a
// polygon and none otherwise.
func assertCoversPolygons(t *testing.T, m *mesh.Mesh, inputs []PolygonInput) {
	t.Helper()

	var triangles []advanced.Ring
	var triangleArea float64
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		ring := advanced.Ring{
			{X: float64(tri[0].X), Y: float64(tri[0].Y)},
			{X: float64(tri[1].X), Y: float64(tri[1].Y)},
			{X: float64(tri[2].X), Y: float64(tri[2].Y)},
		}
		triangles = append(triangles, ring)
		triangleArea += math.Abs(ring.SignedArea())
	}

	var polygonArea float64
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, input := range inputs {
		for i, ring := range input.Rings() {
			if i == 0 {
				polygonArea += math.Abs(ring.SignedArea())
			} else {
				polygonArea -= math.Abs(ring.SignedArea())
			}
			for _, p := range ring {
				minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
				maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
			}
		}
	}
	require.InDelta(t, polygonArea, triangleArea, 1e-3, "sum of triangle areas should equal polygon area")

	// Odd offsets keep samples off the edges of the fixtures.
	step := math.Max(maxX-minX, maxY-minY) / 37
	for y := minY + step*0.317; y <= maxY; y += step {
		for x := minX + step*0.273; x <= maxX; x += step {
			p := advanced.Point{X: x, Y: y}
			inside := false
			for _, input := range inputs {
				crossings := 0
				for _, ring := range input.Rings() {
					crossings += ring.CrossingCount(p)
				}
				inside = inside || crossings%2 == 1
			}
			covered := 0
			for _, tri := range triangles {
				if tri.ContainsPointByEvenOdd(p) {
					covered++
				}
			}
			if inside {
				assert.Equal(t, 1, covered, "point %v should be covered once", p)
			} else {
				assert.Equal(t, 0, covered, "point %v should not be covered", p)
			}
		}
	}
}
