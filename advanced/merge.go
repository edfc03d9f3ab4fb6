package advanced

import (
	"github.com/osuushi/polymesh/dbg"
)

// IndexRange is a half open range [Start, End) of a triangle index buffer.
type IndexRange struct {
	Start, End int
}

func (r IndexRange) Len() int {
	return r.End - r.Start
}

// Result is the output of triangulating one or more polygons: a flat
// coordinate buffer and a flat triangle index buffer whose entries address
// vertices (coordinate pairs) of that buffer.
type Result struct {
	Vertices        []float64
	TriangleIndices []int
	// The range of TriangleIndices contributed by each source polygon, in the
	// order the polygons were added.
	PolygonRanges []IndexRange
}

func (r *Result) VertexCount() int {
	return len(r.Vertices) / Dimensions
}

func (r *Result) TriangleCount() int {
	return len(r.TriangleIndices) / 3
}

// Vertex indices of the i-th triangle.
func (r *Result) Triangle(i int) [3]int {
	return [3]int{r.TriangleIndices[i*3], r.TriangleIndices[i*3+1], r.TriangleIndices[i*3+2]}
}

// Append other to r. Every index of other is rebased by the vertex count of
// r before it is appended, so that it keeps addressing the same vertex in the
// concatenated coordinate buffer.
func (r *Result) Merge(other Result) {
	base := r.VertexCount()
	start := len(r.TriangleIndices)

	for _, index := range other.TriangleIndices {
		r.TriangleIndices = append(r.TriangleIndices, index+base)
	}
	r.Vertices = append(r.Vertices, other.Vertices...)

	if len(other.PolygonRanges) == 0 {
		r.PolygonRanges = append(r.PolygonRanges, IndexRange{start, len(r.TriangleIndices)})
		return
	}
	for _, polygonRange := range other.PolygonRanges {
		r.PolygonRanges = append(r.PolygonRanges, IndexRange{polygonRange.Start + start, polygonRange.End + start})
	}
}

// Triangulate every polygon independently, in order, and merge the results
// into one Result. The first polygon seeds the merge; each following one is
// appended with its indices rebased. A nil triangulator means Earcut.
func Triangulate(inputs []PolygonInput, triangulator Triangulator) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyInput
	}
	if triangulator == nil {
		triangulator = Earcut
	}

	var merged *Result
	for i, input := range inputs {
		indices, err := triangulatePolygon(triangulator, i, input)
		if err != nil {
			return nil, err
		}
		dbg.Printf("merge", "polygon %d: %d vertices, %d triangles", i, input.VertexCount(), len(indices)/3)

		if merged == nil {
			merged = &Result{
				Vertices:        append([]float64(nil), input.Vertices...),
				TriangleIndices: indices,
				PolygonRanges:   []IndexRange{{0, len(indices)}},
			}
			continue
		}
		merged.Merge(Result{Vertices: input.Vertices, TriangleIndices: indices})
	}
	dbg.Dump(merged.TriangleIndices, merged.PolygonRanges)
	return merged, nil
}

// Run the triangulator on a single polygon and check that what comes back
// is usable, converting any panic into a TriangulationError.
func triangulatePolygon(triangulator Triangulator, polygon int, input PolygonInput) (indices []int, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(polygon, recover())
		if recoveredErr != nil {
			indices = nil
			err = recoveredErr
		}
	}()

	if len(input.Vertices)%Dimensions != 0 {
		return nil, triangulationErrorf(polygon, "odd coordinate count %d", len(input.Vertices))
	}

	indices, err = triangulator.Triangulate(input.Vertices, input.HoleIndices, Dimensions)
	if err != nil {
		return nil, &TriangulationError{Polygon: polygon, Reason: err.Error(), cause: err}
	}
	if len(indices)%3 != 0 {
		return nil, triangulationErrorf(polygon, "index count %d is not a multiple of 3", len(indices))
	}
	n := input.VertexCount()
	for _, index := range indices {
		if index < 0 || index >= n {
			return nil, triangulationErrorf(polygon, "index %d out of range for %d vertices", index, n)
		}
	}
	return indices, nil
}
