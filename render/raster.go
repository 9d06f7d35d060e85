// Package render — CPU rasterization of polygon scenes via the
// golang.org/x/image vector rasterizer.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/jbeda/geom"
	"golang.org/x/image/colornames"
	"golang.org/x/image/vector"

	"github.com/morcb13-bit/Artemis-B13-Archive/pentaring"
)

// DrawPolygons rasterizes a polygon set onto a square RGBA canvas:
// background, rainbow fills, black outlines, optional vertex markers.
//
// Errors: ErrBadCanvas for Size ≤ 0; ErrEmptyScene for an empty set.
func DrawPolygons(polys []pentaring.Polygon, opts RenderOptions) (*image.RGBA, error) {
	if opts.Size <= 0 {
		return nil, ErrBadCanvas
	}
	bounds, err := boundsOf(polys)
	if err != nil {
		return nil, err
	}

	return drawScene(polys, bounds, opts), nil
}

// DrawRing rasterizes a built ring. ErrEmptyScene for an unbuilt ring.
func DrawRing(r *pentaring.Ring, opts RenderOptions) (*image.RGBA, error) {
	polys := r.Polygons()
	if len(polys) == 0 {
		return nil, ErrEmptyScene
	}

	return DrawPolygons(polys, opts)
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// drawScene renders onto a fresh canvas using explicit world bounds, so
// animation frames of a growing scene stay registered with one another.
func drawScene(polys []pentaring.Polygon, bounds geom.Rect, opts RenderOptions) *image.RGBA {
	pr := newProjector(bounds, opts)

	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	bg := opts.Background
	if bg == nil {
		bg = colornames.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	markerR := pr.size / 160
	for i, poly := range polys {
		pts := make([]geom.Coord, len(poly))
		for j, v := range poly {
			pts[j] = pr.project(v)
		}

		fillPath(img, pts, withAlpha(TileColor(i, len(polys)), opts.FillOpacity))

		for j := range pts {
			strokeSegment(img, pts[j], pts[(j+1)%len(pts)], opts.StrokeWidth, colornames.Black)
		}

		if opts.ShowVertices {
			for _, p := range pts {
				fillPath(img, circlePath(p, markerR), colornames.Darkred)
			}
		}
	}

	return img
}

// fillPath fills a closed path with a (possibly translucent) color using
// the vector rasterizer as an antialiased mask.
func fillPath(img *image.RGBA, pts []geom.Coord, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := img.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	ras.DrawOp = draw.Over
	ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}
	ras.ClosePath()
	ras.Draw(img, b, image.NewUniform(c), image.Point{})
}

// strokeSegment draws the segment a→b as a filled quad of the given
// width (the rasterizer has no stroking primitive of its own).
func strokeSegment(img *image.RGBA, a, b geom.Coord, width float64, c color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Unit perpendicular, scaled to half width.
	px := -dy / length * width / 2
	py := dx / length * width / 2

	quad := []geom.Coord{
		{X: a.X + px, Y: a.Y + py},
		{X: b.X + px, Y: b.Y + py},
		{X: b.X - px, Y: b.Y - py},
		{X: a.X - px, Y: a.Y - py},
	}
	fillPath(img, quad, c)
}

// circlePath approximates a filled disc with a 16-gon; plenty for the
// few-pixel vertex markers.
func circlePath(center geom.Coord, r float64) []geom.Coord {
	const segments = 16
	pts := make([]geom.Coord, segments)
	for i := 0; i < segments; i++ {
		ang := 2 * math.Pi * float64(i) / segments
		pts[i] = geom.Coord{X: center.X + r*math.Cos(ang), Y: center.Y + r*math.Sin(ang)}
	}

	return pts
}
