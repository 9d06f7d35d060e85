// Package render — minimal SVG serialization, trimmed to what the
// archive's figures need: filled polygons, vertex markers, tile labels.
package render

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	"github.com/morcb13-bit/Artemis-B13-Archive/pentaring"
)

// svgWriter emits SVG elements to an io.Writer. The first write error
// sticks; later calls become no-ops and Err reports it.
type svgWriter struct {
	w   io.Writer
	err error
}

func newSVGWriter(w io.Writer) *svgWriter { return &svgWriter{w: w} }

func (svg *svgWriter) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

func (svg *svgWriter) Start(viewBox geom.Rect) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%g %g %g %g"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (svg *svgWriter) End() {
	svg.printf("</svg>\n")
}

func (svg *svgWriter) Rect(r geom.Rect, style string) {
	svg.printf("<rect x='%g' y='%g' width='%g' height='%g' style='%s'/>\n",
		r.Min.X, r.Min.Y, r.Width(), r.Height(), style)
}

func (svg *svgWriter) Polygon(pts []geom.Coord, style string) {
	svg.printf("<polygon points='")
	for i, p := range pts {
		if i > 0 {
			svg.printf(" ")
		}
		svg.printf("%g,%g", p.X, p.Y)
	}
	svg.printf("' style='%s'/>\n", style)
}

func (svg *svgWriter) Circle(c geom.Coord, r float64, style string) {
	svg.printf("<circle cx='%g' cy='%g' r='%g' style='%s'/>\n", c.X, c.Y, r, style)
}

func (svg *svgWriter) Text(p geom.Coord, size float64, style, text string) {
	svg.printf("<text x='%g' y='%g' font-size='%g' text-anchor='middle' dominant-baseline='central' style='%s'>%s</text>\n",
		p.X, p.Y, size, style, text)
}

func (svg *svgWriter) Err() error { return svg.err }

// writeSceneSVG is the shared SVG backend; footer, when non-empty, is
// printed along the canvas bottom (the ring's closure annotation).
func writeSceneSVG(w io.Writer, polys []pentaring.Polygon, opts RenderOptions, footer string) error {
	if opts.Size <= 0 {
		return ErrBadCanvas
	}
	bounds, err := boundsOf(polys)
	if err != nil {
		return err
	}
	pr := newProjector(bounds, opts)

	svg := newSVGWriter(w)
	canvas := geom.Rect{Min: geom.Coord{}, Max: geom.Coord{X: pr.size, Y: pr.size}}
	svg.Start(canvas)
	svg.Rect(canvas, "fill: white; stroke: none")

	markerR := pr.size / 160
	labelSize := pr.size / 28

	for i, poly := range polys {
		pts := make([]geom.Coord, len(poly))
		for j, v := range poly {
			pts[j] = pr.project(v)
		}

		fill := TileColor(i, len(polys))
		svg.Polygon(pts, fmt.Sprintf(
			"fill: rgb(%d,%d,%d); fill-opacity: %.2f; stroke: black; stroke-width: %g",
			fill.R, fill.G, fill.B, opts.FillOpacity, opts.StrokeWidth))

		if opts.ShowVertices {
			for _, p := range pts {
				svg.Circle(p, markerR, "fill: darkred; stroke: black; stroke-width: 1")
			}
		}
		if opts.ShowLabels {
			svg.Text(pr.project(poly.Centroid()), labelSize,
				"fill: navy; font-weight: bold", fmt.Sprintf("%d", i+1))
		}
	}

	if footer != "" {
		svg.Text(geom.Coord{X: pr.size / 2, Y: pr.size * 0.985}, labelSize*0.6,
			"fill: black; font-family: monospace", footer)
	}

	svg.End()

	return svg.Err()
}

// WritePolygonsSVG renders a polygon set as a standalone SVG document:
// rainbow fills in tile order, black outlines, optional vertex markers
// and centroid labels.
//
// Errors: ErrEmptyScene for an empty set; ErrBadCanvas for Size ≤ 0;
// the first io error otherwise.
func WritePolygonsSVG(w io.Writer, polys []pentaring.Polygon, opts RenderOptions) error {
	return writeSceneSVG(w, polys, opts, "")
}

// WriteRingSVG renders a built ring, annotated with its closure error the
// way the original plot titles were. ErrEmptyScene for an unbuilt ring.
func WriteRingSVG(w io.Writer, r *pentaring.Ring, opts RenderOptions) error {
	polys := r.Polygons()
	if len(polys) == 0 {
		return ErrEmptyScene
	}
	residual, err := r.ClosureError()
	if err != nil {
		return ErrEmptyScene
	}

	return writeSceneSVG(w, polys, opts, fmt.Sprintf("closure error: %.2e", residual))
}
