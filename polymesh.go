// Package polymesh turns polygon outlines, optionally with holes, into
// triangle list meshes for the host engine.
//
// Polygons are collected with a Builder, each one is triangulated by ear
// clipping on its own, the results are merged into a single vertex and index
// buffer, and the buffers are packed into a mesh with position, normal and UV
// attributes. All vertices share one Z value, the builder's z index. Normals
// and UVs are zero placeholders.
package polymesh

import (
	"github.com/osuushi/polymesh/advanced"
)

type Point = advanced.Point
type Ring = advanced.Ring
type PolygonInput = advanced.PolygonInput
type Narrowing = advanced.Narrowing
type TriangulationError = advanced.TriangulationError

const (
	CheckedNarrowing   = advanced.CheckedNarrowing
	UncheckedNarrowing = advanced.UncheckedNarrowing
)

var (
	ErrEmptyInput             = advanced.ErrEmptyInput
	ErrCouldNotConvertToFloat = advanced.ErrCouldNotConvertToFloat
	ErrIndexOverflow          = advanced.ErrIndexOverflow
)

// Build a PolygonInput from an outer ring and any number of hole rings.
func PolygonFromRings(outer Ring, holes ...Ring) PolygonInput {
	return advanced.PolygonFromRings(outer, holes...)
}
