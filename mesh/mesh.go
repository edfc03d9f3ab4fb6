// Package mesh models the host engine's mesh object: a primitive topology,
// an optional index buffer, and a set of per-vertex attribute arrays keyed by
// attribute identifier.
//
// The host has shipped two revisions of its insertion API. The checked
// revision (InsertIndices, InsertAttribute) reports what went wrong as an
// error. The optional revision (TryInsertIndices, TryInsertAttribute) only
// reports whether the insert happened.
package mesh

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/soypat/glgl/math/ms3"
)

type PrimitiveTopology int

const (
	PointList PrimitiveTopology = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

func (t PrimitiveTopology) String() string {
	switch t {
	case PointList:
		return "point-list"
	case LineList:
		return "line-list"
	case LineStrip:
		return "line-strip"
	case TriangleList:
		return "triangle-list"
	case TriangleStrip:
		return "triangle-strip"
	}
	return "PrimitiveTopology(?)"
}

// Number of indices per primitive, or 0 for strips.
func (t PrimitiveTopology) stride() int {
	switch t {
	case PointList:
		return 1
	case LineList:
		return 2
	case TriangleList:
		return 3
	}
	return 0
}

var (
	ErrFormatMismatch  = errors.New("attribute format mismatch")
	ErrLengthMismatch  = errors.New("attribute length mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrIndexCount      = errors.New("index count does not match topology")
)

type Mesh struct {
	topology   PrimitiveTopology
	indices    Indices
	attributes map[AttributeID]VertexAttributeValues
}

func New(topology PrimitiveTopology) *Mesh {
	return &Mesh{
		topology:   topology,
		attributes: make(map[AttributeID]VertexAttributeValues),
	}
}

func (m *Mesh) Topology() PrimitiveTopology {
	return m.topology
}

// Indices returns nil if no index buffer was inserted.
func (m *Mesh) Indices() Indices {
	return m.indices
}

func (m *Mesh) Attribute(id AttributeID) (VertexAttributeValues, bool) {
	values, ok := m.attributes[id]
	return values, ok
}

// Attribute identifiers present on the mesh, ordered by ID.
func (m *Mesh) AttributeIDs() []AttributeID {
	ids := make([]AttributeID, 0, len(m.attributes))
	for id := range m.attributes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].ID < ids[j].ID })
	return ids
}

// Number of vertices, taken from the attributes. A mesh with no attributes
// has no vertices.
func (m *Mesh) VertexCount() int {
	for _, values := range m.attributes {
		return values.Len()
	}
	return 0
}

// Number of triangles with positions to draw. Meshes without a position
// attribute have none.
func (m *Mesh) TriangleCount() int {
	if m.topology != TriangleList {
		return 0
	}
	if _, ok := m.attributes[AttributePosition]; !ok {
		return 0
	}
	if m.indices != nil {
		return m.indices.Len() / 3
	}
	return m.VertexCount() / 3
}

// Corner positions of the i-th triangle of a triangle list mesh.
func (m *Mesh) Triangle(i int) [3]ms3.Vec {
	positions, _ := m.attributes[AttributePosition].(Float32x3)
	var tri [3]ms3.Vec
	if positions == nil {
		return tri
	}
	for corner := range tri {
		vertex := i*3 + corner
		if m.indices != nil {
			vertex = m.indices.At(vertex)
		}
		tri[corner] = positions[vertex]
	}
	return tri
}

// InsertIndices sets the index buffer. The index count must fit the
// topology and, once attributes exist, every index must address a vertex.
func (m *Mesh) InsertIndices(indices Indices) error {
	if stride := m.topology.stride(); stride != 0 && indices.Len()%stride != 0 {
		return errors.Wrapf(ErrIndexCount, "%d indices for %s", indices.Len(), m.topology)
	}
	if len(m.attributes) > 0 {
		if err := checkIndices(indices, m.VertexCount()); err != nil {
			return err
		}
	}
	m.indices = indices
	return nil
}

// InsertAttribute sets the values for an attribute, replacing any previous
// values. The values must have the attribute's format and the same length as
// every other attribute.
func (m *Mesh) InsertAttribute(id AttributeID, values VertexAttributeValues) error {
	if values.Format() != id.Format {
		return errors.Wrapf(ErrFormatMismatch, "%s wants %s, got %s", id.Name, id.Format, values.Format())
	}
	for other, existing := range m.attributes {
		if other != id && existing.Len() != values.Len() {
			return errors.Wrapf(ErrLengthMismatch, "%s has %d values, %s has %d", id.Name, values.Len(), other.Name, existing.Len())
		}
	}
	if m.indices != nil {
		if err := checkIndices(m.indices, values.Len()); err != nil {
			return err
		}
	}
	m.attributes[id] = values
	return nil
}

func (m *Mesh) TryInsertIndices(indices Indices) bool {
	return m.InsertIndices(indices) == nil
}

func (m *Mesh) TryInsertAttribute(id AttributeID, values VertexAttributeValues) bool {
	return m.InsertAttribute(id, values) == nil
}

func checkIndices(indices Indices, vertexCount int) error {
	for i := 0; i < indices.Len(); i++ {
		if index := indices.At(i); index >= vertexCount {
			return errors.Wrapf(ErrIndexOutOfRange, "index %d at %d with %d vertices", index, i, vertexCount)
		}
	}
	return nil
}
