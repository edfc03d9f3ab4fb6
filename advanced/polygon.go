package advanced

// Dimensions is the number of scalars per vertex in every coordinate buffer
// handled by this package.
const Dimensions = 2

type Point struct {
	X float64
	Y float64
}

// A ring is a closed sequence of points. The closing edge from the last point
// back to the first is implied, so the first point must not be repeated.
type Ring []Point

// PolygonInput is one polygon as the triangulator expects it: a flat
// coordinate buffer holding the outer ring followed by every hole ring, and
// the vertex index at which each hole ring begins.
//
// Hole indices address vertices (coordinate pairs), not scalars, so a square
// followed by a triangular hole has Vertices of length 14 and HoleIndices
// [4]. No validation is done here; malformed input is reported by the
// triangulation step.
type PolygonInput struct {
	Vertices    []float64
	HoleIndices []int
}

func (input PolygonInput) VertexCount() int {
	return len(input.Vertices) / Dimensions
}

// Build a PolygonInput from an outer ring and any number of hole rings.
func PolygonFromRings(outer Ring, holes ...Ring) PolygonInput {
	count := len(outer)
	for _, hole := range holes {
		count += len(hole)
	}

	input := PolygonInput{Vertices: make([]float64, 0, count*Dimensions)}
	input.Vertices = outer.appendCoordinates(input.Vertices)
	for _, hole := range holes {
		input.HoleIndices = append(input.HoleIndices, input.VertexCount())
		input.Vertices = hole.appendCoordinates(input.Vertices)
	}
	return input
}

// Split a PolygonInput back into its rings. Out of range or unordered hole
// indices are clamped so that this never panics.
func (input PolygonInput) Rings() []Ring {
	var rings []Ring
	start := 0
	n := input.VertexCount()
	for _, hole := range append(append([]int(nil), input.HoleIndices...), n) {
		end := hole
		if end > n {
			end = n
		}
		if end < start {
			continue
		}
		ring := make(Ring, 0, end-start)
		for i := start; i < end; i++ {
			ring = append(ring, Point{input.Vertices[i*Dimensions], input.Vertices[i*Dimensions+1]})
		}
		rings = append(rings, ring)
		start = end
	}
	return rings
}

// Group a flat list of rings into polygons. A ring whose first point lies
// inside the most recent outer ring is treated as a hole of that ring;
// otherwise it starts a new polygon. Outer rings are normalized to
// counterclockwise winding and holes to clockwise winding.
func GroupRings(rings []Ring) []PolygonInput {
	var result []PolygonInput
	var outer Ring
	var holes []Ring
	flush := func() {
		if outer != nil {
			result = append(result, PolygonFromRings(outer, holes...))
		}
	}
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		if outer != nil && outer.ContainsPointByEvenOdd(ring[0]) {
			if ring.IsCCW() {
				ring = ring.Reverse()
			}
			holes = append(holes, ring)
			continue
		}
		flush()
		if !ring.IsCCW() {
			ring = ring.Reverse()
		}
		outer = ring
		holes = nil
	}
	flush()
	return result
}

func (ring Ring) appendCoordinates(coords []float64) []float64 {
	for _, p := range ring {
		coords = append(coords, p.X, p.Y)
	}
	return coords
}

// Shoelace area. Counterclockwise rings have positive area.
func (ring Ring) SignedArea() float64 {
	var sum float64
	for i, p := range ring {
		next := ring[CircularIndex(i+1, len(ring))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

func (ring Ring) IsCCW() bool {
	return ring.SignedArea() > 0
}

func (ring Ring) Reverse() Ring {
	reversed := make(Ring, 0, len(ring))
	for i := len(ring) - 1; i >= 0; i-- {
		reversed = append(reversed, ring[i])
	}
	return reversed
}

// Winding rule point-in-polygon. This is mostly useful for validating
// triangulations by sampling.
func (ring Ring) ContainsPointByEvenOdd(p Point) bool {
	return ring.CrossingCount(p)%2 == 1
}

// Number of ring edges crossed by a ray cast from p towards +X.
func (ring Ring) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range ring {
		next := ring[CircularIndex(i+1, len(ring))]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
