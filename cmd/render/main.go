// Command render reads a JSON point set, triangulates it, and writes an SVG visualizing the
// mesh: one line per triangle edge plus a dot per input site. It fulfills the renderer
// collaborator role spec'd out for the triangulation core (iterate triangles, emit edges,
// dedupe by address order) — it is a static image writer, not an interactive viewer.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/urfave/cli/v3"

	delaunay "github.com/arnebn/delaunay2d"
	"github.com/arnebn/delaunay2d/point"
)

const (
	edgeStyle = "stroke:rgb(120,120,120);stroke-width:1"
	siteStyle = "fill:rgb(200,30,30)"
	margin    = 20
)

func main() {
	cmd := &cli.Command{
		Name:      "render",
		Usage:     "Triangulates a JSON point set and writes the mesh to an SVG file",
		UsageText: "render --in <points.json> --out <mesh.svg> --width <value> --height <value>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Usage:    "Path to a JSON array of points, as produced by genpoints",
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Path to the SVG file to write",
				OnlyOnce: true,
				Value:    "mesh.svg",
			},
			&cli.IntFlag{
				Name:     "width",
				OnlyOnce: true,
				Value:    800,
			},
			&cli.IntFlag{
				Name:     "height",
				OnlyOnce: true,
				Value:    800,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	points, err := readPoints(cmd.String("in"))
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("need at least 2 points, got %d", len(points))
	}

	tris := make([]delaunay.Triangle, 2*len(points)-2)
	n, err := delaunay.Triangulate(tris, points)
	if err != nil {
		return err
	}
	tris = tris[:n]

	width, height := int(cmd.Int("width")), int(cmd.Int("height"))
	proj := newProjector(points, width, height)

	out, err := os.Create(cmd.String("out"))
	if err != nil {
		return err
	}
	defer out.Close()

	renderMesh(out, tris, points, proj, width, height)
	return nil
}

func readPoints(path string) ([]point.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pts []point.Point
	if err := json.Unmarshal(data, &pts); err != nil {
		return nil, err
	}
	return pts, nil
}

// projector maps point-space coordinates into SVG pixel space, flipping y so that larger data y
// values are drawn higher in the image (SVG's own y axis points down).
type projector struct {
	minX, minY   float64
	scaleX       float64
	scaleY       float64
	width        int
	height       int
}

func newProjector(points []point.Point, width, height int) projector {
	minX, minY := points[0].X(), points[0].Y()
	maxX, maxY := minX, minY
	for _, p := range points {
		minX, maxX = min(minX, p.X()), max(maxX, p.X())
		minY, maxY = min(minY, p.Y()), max(maxY, p.Y())
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	usable := float64(width - 2*margin)
	usableH := float64(height - 2*margin)
	return projector{
		minX: minX, minY: minY,
		scaleX: usable / spanX,
		scaleY: usableH / spanY,
		width:  width, height: height,
	}
}

func (p projector) project(pt point.Point) (int, int) {
	x := margin + int((pt.X()-p.minX)*p.scaleX)
	y := p.height - margin - int((pt.Y()-p.minY)*p.scaleY)
	return x, y
}

func renderMesh(w *os.File, tris []delaunay.Triangle, points []point.Point, proj projector, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	index := make(map[*delaunay.Triangle]int, len(tris))
	for i := range tris {
		index[&tris[i]] = i
	}

	for i := range tris {
		tr := &tris[i]
		for e := 0; e < 3; e++ {
			a, b := tr.Verts[(e+1)%3], tr.Verts[(e+2)%3]
			if a == nil || b == nil {
				continue
			}
			ref := tr.Neighbors[e]
			// Address-ordered dedup: since the caller's triangle array is dense and allocated in
			// creation order, position in that array stands in for pointer address, and an edge
			// is drawn only from its lower-addressed side, so each undirected edge is drawn once.
			if ref.Tri != nil && i >= index[ref.Tri] {
				continue
			}
			x1, y1 := proj.project(*a)
			x2, y2 := proj.project(*b)
			canvas.Line(x1, y1, x2, y2, edgeStyle)
		}
	}

	for i := range points {
		x, y := proj.project(points[i])
		canvas.Circle(x, y, 3, siteStyle)
	}
	canvas.End()
}
