// Package fixtures provides test and demo shapes, either built ad hoc or
// parsed from the embedded SVG pictures in svg/.
package fixtures

import (
	"embed"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/polymesh/advanced"
)

// This is not a full (or even correct) svg parser. It collects every
// <polygon> element in document order and groups the rings into polygons
// with holes using advanced.GroupRings.

//go:embed svg
var pictures embed.FS

// Load a fixture by name, sans extension. Panics via log.Fatalf if anything
// goes wrong, since fixtures are known good.
func Load(name string) []advanced.PolygonInput {
	picture, err := pictures.Open("svg/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer picture.Close()

	inputs, err := ParseSVG(picture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return inputs
}

func ParseSVG(r io.Reader) ([]advanced.PolygonInput, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found")
	}
	rings := make([]advanced.Ring, 0, len(polygons))
	for _, polygonEl := range polygons {
		ring, err := parsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}
	return advanced.GroupRings(rings), nil
}

func parsePoints(pointString string) (advanced.Ring, error) {
	var ring advanced.Ring
	for _, pointString := range strings.Fields(pointString) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", pointStrings[0])
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", pointStrings[1])
		}
		ring = append(ring, advanced.Point{X: x, Y: y})
	}
	return ring, nil
}

// Some ad hoc fixtures

func Triangle() advanced.PolygonInput {
	return advanced.PolygonFromRings(advanced.Ring{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
}

func Square(x, y, size float64) advanced.PolygonInput {
	return advanced.PolygonFromRings(advanced.Ring{
		{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size},
	})
}

// A 10x10 square with a triangular hole. The hole starts at vertex 4.
func SquareWithHole() advanced.PolygonInput {
	return advanced.PolygonFromRings(
		advanced.Ring{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}},
		advanced.Ring{{X: -2, Y: -2}, {X: 0, Y: 2}, {X: 2, Y: -2}},
	)
}

func star(x, y, outerRadius, innerRadius float64) advanced.Ring {
	var ring advanced.Ring
	for i := 0; i < 10; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		ring = append(ring, advanced.Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return ring
}

func SimpleStar() advanced.PolygonInput {
	return advanced.PolygonFromRings(star(0, 0, 5, 2))
}

// A filled star with a smaller star cut out of it.
func StarOutline() advanced.PolygonInput {
	return advanced.PolygonFromRings(star(0, 0, 10, 5), star(0, 0, 8, 3).Reverse())
}

// Move every vertex of input by (dx, dy), returning a new input.
func Translate(input advanced.PolygonInput, dx, dy float64) advanced.PolygonInput {
	moved := advanced.PolygonInput{
		Vertices:    make([]float64, len(input.Vertices)),
		HoleIndices: append([]int(nil), input.HoleIndices...),
	}
	for i, v := range input.Vertices {
		if i%advanced.Dimensions == 0 {
			moved.Vertices[i] = v + dx
		} else {
			moved.Vertices[i] = v + dy
		}
	}
	return moved
}
