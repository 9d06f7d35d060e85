// Package render turns the vertex data computed by pentaring into
// pictures: standalone SVG documents, rasterized PNG images, and
// animated GIFs that reveal a figure tile by tile.
//
// It is a pure consumer of the geometry core: it reads only the
// in-memory values the core exposes (polygons, closure error) and holds
// no state of its own. Colors come from a rainbow ramp over the tile
// index, mirroring the archive's original matplotlib plots.
//
// ⚙️ Usage:
//
//	ring, _ := pentaring.BuildRing(10, 1.0)
//	opts := render.DefaultRenderOptions()
//
//	var svg bytes.Buffer
//	_ = render.WriteRingSVG(&svg, ring, opts)   // vector plot
//
//	img, _ := render.DrawRing(ring, opts)       // raster plot
//	_ = render.WritePNG(pngFile, img)
//
//	_ = render.WriteRingGIF(gifFile, ring, opts) // tile-by-tile reveal
//
// All output is deterministic for equal inputs and options.
package render
