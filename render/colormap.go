package render

import (
	"image/color"
	"math"
)

// Rainbow maps t ∈ [0,1] onto a violet→blue→green→yellow→red ramp, the
// same progression the archive's matplotlib plots use for tile colors.
// Input is clamped; output is fully opaque.
func Rainbow(t float64) color.NRGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	// Sweep the hue from 270° (violet) down to 0° (red).
	r, g, b := hsv(270*(1-t), 0.9, 0.95)

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// TileColor returns the fill color for tile i of n, matching the
// original linspace(0, 0.9, n) rainbow sampling.
func TileColor(i, n int) color.NRGBA {
	if n <= 1 {
		return Rainbow(0)
	}

	return Rainbow(0.9 * float64(i) / float64(n-1))
}

// hsv converts hue (degrees), saturation and value in [0,1] to 8-bit RGB.
func hsv(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 60
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c

	return uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255))
}

// withAlpha scales a color's alpha, for translucent tile fills.
func withAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(math.Round(opacity * 255))

	return c
}
