package polymesh

import (
	"github.com/osuushi/polymesh/advanced"
	"github.com/osuushi/polymesh/dbg"
)

// Builder collects polygons and the shared z index. The zero value is ready
// to use: z index 0, checked narrowing and the earcut triangulator.
type Builder struct {
	inputs       []PolygonInput
	zIndex       float64
	narrowing    Narrowing
	triangulator advanced.Triangulator
}

type Option func(*Builder)

func WithZIndex(zIndex float64) Option {
	return func(b *Builder) { b.zIndex = zIndex }
}

func WithNarrowing(narrowing Narrowing) Option {
	return func(b *Builder) { b.narrowing = narrowing }
}

// Replace the triangulator. Mostly useful for tests.
func WithTriangulator(triangulator advanced.Triangulator) Option {
	return func(b *Builder) { b.triangulator = triangulator }
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Set the Z coordinate given to every vertex.
func (b *Builder) WithZIndex(zIndex float64) *Builder {
	b.zIndex = zIndex
	return b
}

func (b *Builder) ZIndex() float64 {
	return b.zIndex
}

func (b *Builder) Narrowing() Narrowing {
	return b.narrowing
}

// Call AddPolygon for each polygon you want in the mesh. Polygons are
// triangulated in the order they are added, which is also the order of their
// vertices and triangles in the mesh. The input is not validated here.
func (b *Builder) AddPolygon(input PolygonInput) {
	b.inputs = append(b.inputs, input)
}

// Shorthand for AddPolygon(PolygonFromRings(outer, holes...)).
func (b *Builder) AddRings(outer Ring, holes ...Ring) {
	b.AddPolygon(PolygonFromRings(outer, holes...))
}

func (b *Builder) Len() int {
	return len(b.inputs)
}

// Triangulate and merge every polygon, without materializing.
func (b *Builder) Triangulate() (*advanced.Result, error) {
	dbg.Printf("build", "builder %s: %d polygons", dbg.Name(b), len(b.inputs))
	return advanced.Triangulate(b.inputs, b.triangulator)
}

// Triangulate, merge and materialize into engine-ready buffers.
func (b *Builder) Buffers() (*advanced.Buffers, error) {
	result, err := b.Triangulate()
	if err != nil {
		return nil, err
	}
	return advanced.Materialize(result, b.zIndex, b.narrowing)
}
