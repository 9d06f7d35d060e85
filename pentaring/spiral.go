// Package pentaring — the MORO demo figures: golden-ratio spirals and
// quinary orbits of centered pentagons. Decoration around the ring core;
// same determinism rules apply.
package pentaring

import (
	"fmt"
	"math"
)

// BuildSpiral builds count centered pentagons spiralling inward: tile i
// has circumradius radius/φ^(decay·i) and rotation i·twist. With the
// default knobs (decay 0.3, twist 22.5°) this reproduces the "reflected
// Fibonacci" scene — the rotation progressively fills the 36° gap that
// keeps flat pentagons from tiling.
//
// Errors: count < 1 → ErrTooFewPolygons; radius ≤ 0 → ErrNonPositiveRadius.
//
// Complexity: O(count) tiles of 5 vertices each.
func BuildSpiral(count int, radius float64, opts ...SpiralOption) ([]Polygon, error) {
	if count < minRingPolygons {
		return nil, fmt.Errorf("%s: count=%d: %w", methodBuildSpiral, count, ErrTooFewPolygons)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("%s: radius=%g: %w", methodBuildSpiral, radius, ErrNonPositiveRadius)
	}

	cfg := newSpiralConfig(opts...)

	polys := make([]Polygon, 0, count)
	for i := 0; i < count; i++ {
		scale := radius / math.Pow(GoldenRatio, cfg.decay*float64(i))
		rot := float64(i) * cfg.twist

		poly, err := BuildCentered(cfg.center, scale, rot, PentagonVertexCount)
		if err != nil {
			// Unreachable: scale > 0 whenever radius > 0.
			return nil, fmt.Errorf("%s: tile %d: %w", methodBuildSpiral, i, err)
		}
		polys = append(polys, poly)
	}

	return polys, nil
}

// BuildOrbit builds count centered pentagons whose centers sit on a circle
// of orbitRadius at equal angular steps, each tile rotated to face outward
// — the "quinary" scene of isolated five-fold units.
//
// Errors: count < 1 → ErrTooFewPolygons; either radius ≤ 0 →
// ErrNonPositiveRadius.
//
// Complexity: O(count).
func BuildOrbit(count int, orbitRadius, polygonRadius float64) ([]Polygon, error) {
	if count < minRingPolygons {
		return nil, fmt.Errorf("%s: count=%d: %w", methodBuildOrbit, count, ErrTooFewPolygons)
	}
	if orbitRadius <= 0 {
		return nil, fmt.Errorf("%s: orbitRadius=%g: %w", methodBuildOrbit, orbitRadius, ErrNonPositiveRadius)
	}
	if polygonRadius <= 0 {
		return nil, fmt.Errorf("%s: polygonRadius=%g: %w", methodBuildOrbit, polygonRadius, ErrNonPositiveRadius)
	}

	step := 2 * math.Pi / float64(count)
	polys := make([]Polygon, 0, count)
	for i := 0; i < count; i++ {
		ang := float64(i) * step
		center := unit(ang).Scale(orbitRadius)

		poly, err := BuildCentered(center, polygonRadius, ang, PentagonVertexCount)
		if err != nil {
			return nil, fmt.Errorf("%s: tile %d: %w", methodBuildOrbit, i, err)
		}
		polys = append(polys, poly)
	}

	return polys, nil
}
