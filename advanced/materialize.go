package advanced

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/osuushi/polymesh/dbg"
)

// Narrowing selects how float64 coordinates and int indices are narrowed to
// the mesh's float32 attributes and uint32 indices.
type Narrowing int

const (
	// Fail with ErrCouldNotConvertToFloat or ErrIndexOverflow when a value
	// cannot be represented.
	CheckedNarrowing Narrowing = iota
	// Convert with plain Go conversions. Out of range values silently lose
	// precision or wrap.
	UncheckedNarrowing
)

func (n Narrowing) String() string {
	switch n {
	case CheckedNarrowing:
		return "checked"
	case UncheckedNarrowing:
		return "unchecked"
	}
	return "Narrowing(?)"
}

func ParseNarrowing(s string) (Narrowing, error) {
	switch s {
	case "", "checked":
		return CheckedNarrowing, nil
	case "unchecked":
		return UncheckedNarrowing, nil
	}
	return 0, errors.Errorf("unknown narrowing mode %q", s)
}

// Buffers holds per-vertex attributes and a triangle list index buffer ready
// to be handed to the host engine. Normals and UVs are zero placeholders;
// consumers that light or texture the mesh must compute their own.
type Buffers struct {
	Positions []ms3.Vec
	Normals   []ms3.Vec
	UVs       []ms2.Vec
	Indices   []uint32
}

func (b *Buffers) VertexCount() int {
	return len(b.Positions)
}

// Materialize converts a merged Result into Buffers, placing every vertex at
// height zIndex.
func Materialize(result *Result, zIndex float64, narrowing Narrowing) (*Buffers, error) {
	n := result.VertexCount()
	buffers := &Buffers{
		Positions: make([]ms3.Vec, n),
		Normals:   make([]ms3.Vec, n),
		UVs:       make([]ms2.Vec, n),
		Indices:   make([]uint32, len(result.TriangleIndices)),
	}

	var z float32
	if narrowing == UncheckedNarrowing {
		z = float32(zIndex)
		for i := range buffers.Positions {
			buffers.Positions[i] = ms3.Vec{
				X: float32(result.Vertices[i*Dimensions]),
				Y: float32(result.Vertices[i*Dimensions+1]),
				Z: z,
			}
		}
		for i, index := range result.TriangleIndices {
			buffers.Indices[i] = uint32(index)
		}
	} else {
		var err error
		if z, err = narrowFloat(zIndex); err != nil {
			return nil, errors.Wrap(err, "z index")
		}
		if err := fillChecked(buffers, result, z); err != nil {
			return nil, err
		}
	}
	dbg.Printf("materialize", "%s: %d vertices, %d triangles at z=%v", narrowing, n, len(buffers.Indices)/3, z)
	return buffers, nil
}

func fillChecked(buffers *Buffers, result *Result, z float32) error {
	for i := range buffers.Positions {
		x, err := narrowFloat(result.Vertices[i*Dimensions])
		if err != nil {
			return errors.Wrapf(err, "vertex %d x", i)
		}
		y, err := narrowFloat(result.Vertices[i*Dimensions+1])
		if err != nil {
			return errors.Wrapf(err, "vertex %d y", i)
		}
		buffers.Positions[i] = ms3.Vec{X: x, Y: y, Z: z}
	}
	for i, index := range result.TriangleIndices {
		if index < 0 || uint64(index) > math.MaxUint32 {
			return errors.Wrapf(ErrIndexOverflow, "index %d", index)
		}
		buffers.Indices[i] = uint32(index)
	}
	return nil
}

func narrowFloat(v float64) (float32, error) {
	// Abs is false for NaN, which the float32 check below catches.
	if math.Abs(v) > math.MaxFloat32 {
		return 0, errors.Wrapf(ErrCouldNotConvertToFloat, "%v out of range", v)
	}
	f := float32(v)
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrCouldNotConvertToFloat, "%v is not finite", v)
	}
	return f, nil
}
