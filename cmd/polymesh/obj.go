package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/polymesh/mesh"
)

// Write a triangle list mesh as Wavefront OBJ. Normals are omitted since the
// mesh only carries zero placeholders.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	if m.Topology() != mesh.TriangleList {
		return errors.Errorf("cannot write %s mesh as OBJ", m.Topology())
	}
	values, _ := m.Attribute(mesh.AttributePosition)
	positions, ok := values.(mesh.Float32x3)
	if !ok {
		return errors.New("mesh has no positions")
	}
	values, _ = m.Attribute(mesh.AttributeUV0)
	uvs, _ := values.(mesh.Float32x2)

	bw := bufio.NewWriter(w)
	for _, p := range positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, uv := range uvs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}

	indices := m.Indices()
	for i := 0; i < m.TriangleCount(); i++ {
		var corners [3]int
		for c := range corners {
			corners[c] = i*3 + c
			if indices != nil {
				corners[c] = indices.At(i*3 + c)
			}
			corners[c]++ // OBJ is 1-based
		}
		if len(uvs) > 0 {
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", corners[0], corners[0], corners[1], corners[1], corners[2], corners[2])
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", corners[0], corners[1], corners[2])
		}
	}
	return bw.Flush()
}
