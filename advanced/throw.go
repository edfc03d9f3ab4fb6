package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// No polygon was added, so there is nothing to seed the merge with.
	ErrEmptyInput = errors.New("empty input")

	// A coordinate or the z index could not be narrowed to float32.
	ErrCouldNotConvertToFloat = errors.New("could not convert to float32")

	// A triangle index does not fit in the mesh index type.
	ErrIndexOverflow = errors.New("triangle index overflows index type")
)

// TriangulationError reports that the triangulator failed on one of the
// polygons, either by returning an error, by panicking, or by producing
// output that does not describe triangles over the polygon's vertices.
type TriangulationError struct {
	// Position of the failing polygon in the order polygons were added.
	Polygon int
	Reason  string
	cause   error
}

func (e *TriangulationError) Error() string {
	return fmt.Sprintf("triangulation of polygon %d failed: %s", e.Polygon, e.Reason)
}

func (e *TriangulationError) Unwrap() error {
	return e.cause
}

func triangulationErrorf(polygon int, format string, args ...interface{}) *TriangulationError {
	return &TriangulationError{Polygon: polygon, Reason: fmt.Sprintf(format, args...)}
}

// The triangulator is an external routine that reports bad geometry by
// panicking. The triangulation step defers this to convert any such panic
// into a TriangulationError for the polygon being processed.
func HandleTriangulatePanicRecover(polygon int, r interface{}) error {
	if r == nil {
		return nil
	}
	switch r := r.(type) {
	case *TriangulationError:
		return r
	case error:
		return &TriangulationError{Polygon: polygon, Reason: r.Error(), cause: r}
	default:
		return triangulationErrorf(polygon, "%v", r)
	}
}
