package mesh

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

type VertexFormat int

const (
	FormatFloat32x2 VertexFormat = iota
	FormatFloat32x3
)

func (f VertexFormat) String() string {
	switch f {
	case FormatFloat32x2:
		return "float32x2"
	case FormatFloat32x3:
		return "float32x3"
	}
	return "VertexFormat(?)"
}

// AttributeID identifies a vertex attribute slot of the host's shaders.
type AttributeID struct {
	Name   string
	ID     int
	Format VertexFormat
}

var (
	AttributePosition = AttributeID{Name: "Vertex_Position", ID: 0, Format: FormatFloat32x3}
	AttributeNormal   = AttributeID{Name: "Vertex_Normal", ID: 1, Format: FormatFloat32x3}
	AttributeUV0      = AttributeID{Name: "Vertex_Uv", ID: 2, Format: FormatFloat32x2}
)

type VertexAttributeValues interface {
	Format() VertexFormat
	Len() int
}

type Float32x2 []ms2.Vec

func (Float32x2) Format() VertexFormat { return FormatFloat32x2 }
func (v Float32x2) Len() int          { return len(v) }

type Float32x3 []ms3.Vec

func (Float32x3) Format() VertexFormat { return FormatFloat32x3 }
func (v Float32x3) Len() int          { return len(v) }

// Indices is an index buffer. The element width is chosen by the caller;
// U16 halves the size for meshes with at most 65536 vertices.
type Indices interface {
	Len() int
	At(i int) int
}

type U16 []uint16

func (ix U16) Len() int      { return len(ix) }
func (ix U16) At(i int) int { return int(ix[i]) }

type U32 []uint32

func (ix U32) Len() int      { return len(ix) }
func (ix U32) At(i int) int { return int(ix[i]) }
