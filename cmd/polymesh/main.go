package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polymesh"
	"github.com/osuushi/polymesh/advanced"
	"github.com/osuushi/polymesh/dbg"
	"github.com/osuushi/polymesh/internal/config"
	"github.com/osuushi/polymesh/internal/fixtures"
)

// Demo of mesh building. By default, input on stdin should be newline
// separated points in the form "x y", with each ring separated by an extra
// newline. A ring that starts inside the previous outer ring is a hole of it.
// The mesh is written to stdout as Wavefront OBJ.
var (
	app       = kingpin.New("polymesh", "Triangulate polygons into a flat mesh.")
	zIndex    = app.Flag("z", "Z coordinate of every vertex.").Default("0").Float64()
	narrowing = app.Flag("narrowing", "How to narrow values to float32.").Default("checked").Enum("checked", "unchecked")
	svgPath   = app.Flag("svg", "Read <polygon> elements from an SVG file.").ExistingFile()
	scenePath = app.Flag("scene", "Read a YAML scene file. Overrides --z and --narrowing.").ExistingFile()
	outPath   = app.Flag("out", "Write the OBJ here instead of stdout.").Short('o').String()
	pngPath   = app.Flag("png", "Also draw the mesh to a PNG file.").String()
	preview   = app.Flag("imgcat", "Print a preview of the mesh to the terminal.").Bool()
	scale     = app.Flag("scale", "Pixels per unit for --png and --imgcat.").Default("20").Float64()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	builder, err := newBuilder()
	if err != nil {
		log.Fatalf("Could not read input: %v", err)
	}
	m, err := builder.Build()
	if err != nil {
		log.Fatalf("Could not build mesh: %v", err)
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Could not create %s: %v", *outPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := WriteOBJ(out, m); err != nil {
		log.Fatalf("Could not write OBJ: %v", err)
	}

	if *pngPath != "" {
		if err := dbg.DrawMesh(m, *scale).SavePNG(*pngPath); err != nil {
			log.Fatalf("Could not write PNG: %v", err)
		}
	}
	if *preview {
		if err := dbg.CatMesh(os.Stderr, m, *scale); err != nil {
			log.Printf("Could not preview mesh: %v", err)
		}
	}
}

func newBuilder() (*polymesh.Builder, error) {
	if *scenePath != "" {
		scene, err := config.Load(*scenePath)
		if err != nil {
			return nil, err
		}
		builder := polymesh.NewBuilder(
			polymesh.WithZIndex(scene.ZIndex),
			polymesh.WithNarrowing(scene.NarrowingMode()),
		)
		for _, input := range scene.Inputs() {
			builder.AddPolygon(input)
		}
		return builder, nil
	}

	mode, err := advanced.ParseNarrowing(*narrowing)
	if err != nil {
		return nil, err
	}
	builder := polymesh.NewBuilder(polymesh.WithZIndex(*zIndex), polymesh.WithNarrowing(mode))

	var inputs []advanced.PolygonInput
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		inputs, err = fixtures.ParseSVG(f)
		if err != nil {
			return nil, err
		}
	} else {
		rings, err := readRings(os.Stdin)
		if err != nil {
			return nil, err
		}
		inputs = advanced.GroupRings(rings)
	}
	for _, input := range inputs {
		builder.AddPolygon(input)
	}
	return builder, nil
}

func readRings(in io.Reader) ([]advanced.Ring, error) {
	var rings []advanced.Ring
	scanner := bufio.NewScanner(in)
	var ring advanced.Ring
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if text == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = nil
			}
			continue
		}

		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	return rings, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("want \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, err
	}
	return advanced.Point{X: x, Y: y}, nil
}
