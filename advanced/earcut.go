package advanced

import "github.com/rclancey/earcut"

// Triangulator turns one polygon into a flat list of triangle vertex indices.
// Indices address vertices of the input coordinate buffer, three per
// triangle. Implementations must be pure functions of their input.
type Triangulator interface {
	Triangulate(vertices []float64, holeIndices []int, dimensions int) ([]int, error)
}

// Adapter to allow ordinary functions to be used as triangulators.
type TriangulatorFunc func(vertices []float64, holeIndices []int, dimensions int) ([]int, error)

func (f TriangulatorFunc) Triangulate(vertices []float64, holeIndices []int, dimensions int) ([]int, error) {
	return f(vertices, holeIndices, dimensions)
}

// Earcut is the default triangulator, backed by the ear clipping
// implementation in github.com/rclancey/earcut.
var Earcut Triangulator = TriangulatorFunc(earcut.Earcut)
