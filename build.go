package polymesh

import (
	"github.com/osuushi/polymesh/advanced"
	"github.com/osuushi/polymesh/mesh"
)

// Build the mesh through the host's checked API. Errors are ErrEmptyInput,
// a *TriangulationError, or, with checked narrowing, ErrCouldNotConvertToFloat
// or ErrIndexOverflow.
func (b *Builder) Build() (*mesh.Mesh, error) {
	buffers, err := b.Buffers()
	if err != nil {
		return nil, err
	}
	return NewMesh(buffers)
}

// Build the mesh through the host's optional API. Any failure yields
// (nil, false) with no further detail.
func (b *Builder) TryBuild() (*mesh.Mesh, bool) {
	buffers, err := b.Buffers()
	if err != nil {
		return nil, false
	}
	return TryNewMesh(buffers)
}

// Pack buffers into a triangle list mesh using the checked insertion API.
func NewMesh(buffers *advanced.Buffers) (*mesh.Mesh, error) {
	m := mesh.New(mesh.TriangleList)
	if err := m.InsertIndices(mesh.U32(buffers.Indices)); err != nil {
		return nil, err
	}
	if err := m.InsertAttribute(mesh.AttributePosition, mesh.Float32x3(buffers.Positions)); err != nil {
		return nil, err
	}
	if err := m.InsertAttribute(mesh.AttributeNormal, mesh.Float32x3(buffers.Normals)); err != nil {
		return nil, err
	}
	if err := m.InsertAttribute(mesh.AttributeUV0, mesh.Float32x2(buffers.UVs)); err != nil {
		return nil, err
	}
	return m, nil
}

// Pack buffers into a triangle list mesh using the optional insertion API.
func TryNewMesh(buffers *advanced.Buffers) (*mesh.Mesh, bool) {
	m := mesh.New(mesh.TriangleList)
	ok := m.TryInsertIndices(mesh.U32(buffers.Indices)) &&
		m.TryInsertAttribute(mesh.AttributePosition, mesh.Float32x3(buffers.Positions)) &&
		m.TryInsertAttribute(mesh.AttributeNormal, mesh.Float32x3(buffers.Normals)) &&
		m.TryInsertAttribute(mesh.AttributeUV0, mesh.Float32x2(buffers.UVs))
	if !ok {
		return nil, false
	}
	return m, true
}
