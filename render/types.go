// Package render — options, sentinel errors, and the world→canvas
// projection shared by the SVG and raster backends.
package render

import (
	"errors"
	"image/color"

	"github.com/jbeda/geom"
	"golang.org/x/image/colornames"

	"github.com/morcb13-bit/Artemis-B13-Archive/pentaring"
)

// Sentinel errors for render operations.
var (
	// ErrEmptyScene indicates there are no vertices to draw (nil/empty
	// polygon set, or an unbuilt ring).
	ErrEmptyScene = errors.New("render: nothing to draw")
	// ErrBadCanvas indicates a non-positive canvas size.
	ErrBadCanvas = errors.New("render: canvas size must be positive")
)

// RenderOptions contains the tunable presentation knobs. Zero values are
// not meaningful; start from DefaultRenderOptions and override.
type RenderOptions struct {
	// Size is the square canvas side in pixels (SVG user units).
	Size int
	// Margin is the blank border as a fraction of Size.
	Margin float64
	// FillOpacity is the tile fill alpha in [0,1].
	FillOpacity float64
	// StrokeWidth is the tile outline width in pixels.
	StrokeWidth float64
	// ShowVertices draws a marker on every vertex.
	ShowVertices bool
	// ShowLabels numbers each tile at its centroid (SVG only).
	ShowLabels bool
	// Background fills the canvas before any tile is drawn.
	Background color.Color
	// FrameDelay is the GIF inter-frame delay in 10ms units.
	FrameDelay int
}

// DefaultRenderOptions mirrors the archive's matplotlib defaults:
// generous canvas, 60% fill, black outlines, dark-red vertex markers,
// 150ms animation frames.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Size:         800,
		Margin:       0.05,
		FillOpacity:  0.6,
		StrokeWidth:  2.5,
		ShowVertices: true,
		ShowLabels:   true,
		Background:   colornames.White,
		FrameDelay:   15,
	}
}

// boundsOf computes the tight world-space bounding box of a polygon set.
// ErrEmptyScene when no vertex exists.
func boundsOf(polys []pentaring.Polygon) (geom.Rect, error) {
	first := true
	var r geom.Rect
	for _, poly := range polys {
		for _, v := range poly {
			c := geom.Coord{X: v.X, Y: v.Y}
			if first {
				r = geom.Rect{Min: c, Max: c}
				first = false

				continue
			}
			r.ExpandToContainCoord(c)
		}
	}
	if first {
		return geom.Rect{}, ErrEmptyScene
	}

	return r, nil
}

// projector maps world coordinates onto the square canvas, preserving
// aspect ratio, centering the figure, and flipping Y (canvas Y grows
// downward).
type projector struct {
	bounds geom.Rect
	scale  float64
	offX   float64
	offY   float64
	size   float64
}

func newProjector(bounds geom.Rect, opts RenderOptions) projector {
	size := float64(opts.Size)
	margin := opts.Margin * size
	inner := size - 2*margin

	w, h := bounds.Width(), bounds.Height()
	span := w
	if h > span {
		span = h
	}
	scale := 1.0
	if span > 0 {
		scale = inner / span
	}

	// Center the figure inside the canvas.
	offX := margin + (inner-w*scale)/2
	offY := margin + (inner-h*scale)/2

	return projector{bounds: bounds, scale: scale, offX: offX, offY: offY, size: size}
}

// project maps a world point to canvas coordinates.
func (pr projector) project(p pentaring.Point) geom.Coord {
	x := pr.offX + (p.X-pr.bounds.Min.X)*pr.scale
	y := pr.size - (pr.offY + (p.Y-pr.bounds.Min.Y)*pr.scale)

	return geom.Coord{X: x, Y: y}
}
