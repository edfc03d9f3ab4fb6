// Package config reads scene files for the polymesh command. A scene is a
// YAML document:
//
//	z_index: 1.5
//	narrowing: checked
//	polygons:
//	  - outer: [[0, 0], [10, 0], [10, 10], [0, 10]]
//	    holes:
//	      - [[2, 2], [2, 8], [8, 8]]
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/polymesh/advanced"
)

type Scene struct {
	ZIndex    float64   `yaml:"z_index"`
	Narrowing string    `yaml:"narrowing"`
	Polygons  []Polygon `yaml:"polygons"`
}

type Polygon struct {
	Outer [][2]float64   `yaml:"outer"`
	Holes [][][2]float64 `yaml:"holes"`
}

func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scene, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return scene, nil
}

func Decode(r io.Reader) (*Scene, error) {
	var scene Scene
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&scene); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode scene")
	}
	if _, err := advanced.ParseNarrowing(scene.Narrowing); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (s *Scene) NarrowingMode() advanced.Narrowing {
	// Validated by Decode.
	narrowing, _ := advanced.ParseNarrowing(s.Narrowing)
	return narrowing
}

// Polygon inputs in the order they appear in the scene.
func (s *Scene) Inputs() []advanced.PolygonInput {
	inputs := make([]advanced.PolygonInput, 0, len(s.Polygons))
	for _, polygon := range s.Polygons {
		holes := make([]advanced.Ring, 0, len(polygon.Holes))
		for _, hole := range polygon.Holes {
			holes = append(holes, toRing(hole))
		}
		inputs = append(inputs, advanced.PolygonFromRings(toRing(polygon.Outer), holes...))
	}
	return inputs
}

func toRing(points [][2]float64) advanced.Ring {
	ring := make(advanced.Ring, len(points))
	for i, p := range points {
		ring[i] = advanced.Point{X: p[0], Y: p[1]}
	}
	return ring
}
