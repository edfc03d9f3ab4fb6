package dbg

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/polymesh/mesh"
)

// Padding around the shape in pixels
const drawPadding = 20

// Draw the triangles of a mesh as a filled wireframe, looking down the Z
// axis. Scale is in pixels per unit.
func DrawMesh(m *mesh.Mesh, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	n := m.TriangleCount()
	for i := 0; i < n; i++ {
		for _, p := range m.Triangle(i) {
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}
	if n == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for i := 0; i < n; i++ {
		tri := m.Triangle(i)
		c.MoveTo(float64(tri[0].X), float64(tri[0].Y))
		c.LineTo(float64(tri[1].X), float64(tri[1].Y))
		c.LineTo(float64(tri[2].X), float64(tri[2].Y))
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	return c
}

func WriteMeshPNG(w io.Writer, m *mesh.Mesh, scale float64) error {
	return DrawMesh(m, scale).EncodePNG(w)
}

// Print the mesh to the terminal (iTerm only).
func CatMesh(w io.Writer, m *mesh.Mesh, scale float64) error {
	path := filepath.Join(os.TempDir(), "polymesh.png")
	if err := DrawMesh(m, scale).SavePNG(path); err != nil {
		return err
	}
	return imgcat.CatFile(path, w)
}
