// Package render — animated-GIF export: the figure is revealed one tile
// per frame, the way the archive's original animation frames were
// assembled into a looping GIF.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"golang.org/x/image/colornames"

	"github.com/morcb13-bit/Artemis-B13-Archive/pentaring"
)

// WritePolygonsGIF encodes a looping GIF with one frame per tile prefix:
// frame i shows tiles 0..i over fixed world bounds, so the figure grows
// in place. Frame timing comes from opts.FrameDelay (10ms units).
//
// Errors: ErrBadCanvas for Size ≤ 0; ErrEmptyScene for an empty set;
// encode errors otherwise.
func WritePolygonsGIF(w io.Writer, polys []pentaring.Polygon, opts RenderOptions) error {
	if opts.Size <= 0 {
		return ErrBadCanvas
	}
	bounds, err := boundsOf(polys)
	if err != nil {
		return err
	}

	pal := scenePalette(polys, opts)
	delay := opts.FrameDelay
	if delay <= 0 {
		delay = DefaultRenderOptions().FrameDelay
	}

	anim := &gif.GIF{LoopCount: 0}
	for i := 1; i <= len(polys); i++ {
		frame := drawScene(polys[:i], bounds, opts)

		paletted := image.NewPaletted(frame.Bounds(), pal)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, image.Point{})

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}
	// Hold the completed figure a little longer before looping.
	anim.Delay[len(anim.Delay)-1] = 4 * delay

	return gif.EncodeAll(w, anim)
}

// WriteRingGIF animates a built ring tile by tile.
// ErrEmptyScene for an unbuilt ring.
func WriteRingGIF(w io.Writer, r *pentaring.Ring, opts RenderOptions) error {
	polys := r.Polygons()
	if len(polys) == 0 {
		return ErrEmptyScene
	}

	return WritePolygonsGIF(w, polys, opts)
}

// scenePalette builds a fixed palette for the animation: background,
// stroke and marker colors plus every tile fill composited over the
// background. Dithering soaks up the antialiased in-betweens.
func scenePalette(polys []pentaring.Polygon, opts RenderOptions) color.Palette {
	bg := opts.Background
	if bg == nil {
		bg = colornames.White
	}

	pal := color.Palette{bg, colornames.Black, colornames.Darkred}
	for i := range polys {
		fill := withAlpha(TileColor(i, len(polys)), opts.FillOpacity)
		pal = append(pal, blendOver(bg, fill))
		if len(pal) == 256 {
			break
		}
	}

	return pal
}

// blendOver composites a translucent NRGBA color over an opaque
// background.
func blendOver(bg color.Color, fg color.NRGBA) color.RGBA {
	br, bgc, bb, _ := bg.RGBA()
	a := float64(fg.A) / 255

	mix := func(b uint32, f uint8) uint8 {
		return uint8(a*float64(f) + (1-a)*float64(b>>8))
	}

	return color.RGBA{
		R: mix(br, fg.R),
		G: mix(bgc, fg.G),
		B: mix(bb, fg.B),
		A: 0xff,
	}
}
