// Package pentaring — the ring assembler.
//
// Contract:
//   - BuildRing drives N polygon builds, updating a running (point,
//     heading) state via a fixed transition rule, then records the final
//     reference point and its distance back to the origin.
//   - The transition is a pure function of (point, heading); it NEVER
//     indexes into the just-built polygon's vertices. That is what keeps
//     the chain's drift bounded by the formula instead of by accumulated
//     vertex lookups.
//   - Validation is eager: no partially built Ring is ever returned.
//
// Determinism: a strict sequential loop over pure float64 math — the same
// inputs always yield bit-identical rings.
package pentaring

import (
	"fmt"
	"math"
)

// BuildRing constructs a closed ring of pentagonCount regular pentagons
// with the given edge length, starting at the origin with heading 0
// (both overridable via options).
//
// Per step i:
//  1. Build polygon i from the running (point, heading) state.
//  2. Jump to the next reference point: point += edge·(u(θ) + u(θ+ext)),
//     where ext is the tile's exterior angle (72° for pentagons) — the
//     diagonal of the rhombus spanned by two consecutive tile edges.
//  3. Advance the heading by the rotation step 2π/pentagonCount. For the
//     canonical ten-tile ring that is 36°, and 10 × 36° = 360° is what
//     forces the chain shut after exactly ten steps.
//
// Errors: pentagonCount < 1 → ErrTooFewPolygons; edgeLength ≤ 0 →
// ErrNonPositiveEdge.
//
// Complexity: O(pentagonCount · vertexCount) time and space.
func BuildRing(pentagonCount int, edgeLength float64, opts ...RingOption) (*Ring, error) {
	if pentagonCount < minRingPolygons {
		return nil, fmt.Errorf("%s: pentagonCount=%d: %w", methodBuildRing, pentagonCount, ErrTooFewPolygons)
	}
	if edgeLength <= 0 {
		return nil, fmt.Errorf("%s: edgeLength=%g: %w", methodBuildRing, edgeLength, ErrNonPositiveEdge)
	}

	cfg := newRingConfig(opts...)

	// Fixed per-step increments: the tile's own exterior angle and the
	// ring's rotation step. The two are independent quantities.
	exterior := 2 * math.Pi / float64(cfg.vertexCount)
	rotation := 2 * math.Pi / float64(pentagonCount)

	r := &Ring{
		polygons:    make([]Polygon, 0, pentagonCount),
		origin:      cfg.origin,
		edgeLength:  edgeLength,
		vertexCount: cfg.vertexCount,
	}

	point, heading := cfg.origin, cfg.heading
	for i := 0; i < pentagonCount; i++ {
		poly, err := BuildPolygon(point, heading, edgeLength, cfg.vertexCount)
		if err != nil {
			// Unreachable after the eager checks above.
			return nil, fmt.Errorf("%s: tile %d: %w", methodBuildRing, i, err)
		}
		r.polygons = append(r.polygons, poly)

		point = nextReference(point, heading, exterior, edgeLength)
		heading += rotation
	}

	r.final = point
	r.closureError = point.DistanceTo(cfg.origin)
	r.built = true

	return r, nil
}

// nextReference computes the successor tile's start point from the running
// state alone: current + edge·(u(heading) + u(heading+exterior)). The sum
// of two unit vectors one exterior angle apart is the rhombus diagonal of
// two consecutive tile edges. Pure function of the running state; see the
// package contract.
func nextReference(p Point, heading, exterior, edgeLength float64) Point {
	jump := unit(heading).Add(unit(heading + exterior))

	return p.Add(jump.Scale(edgeLength))
}

// Polygons returns an independent copy of the ring's tiles in build order.
// Nil for an unbuilt ring. The copy preserves the ownership invariant:
// the ring's own vertex data is never aliased outside it.
func (r *Ring) Polygons() []Polygon {
	if !r.built {
		return nil
	}
	out := make([]Polygon, len(r.polygons))
	for i, poly := range r.polygons {
		out[i] = poly.clone()
	}

	return out
}

// Size returns the number of tiles (0 for an unbuilt ring).
func (r *Ring) Size() int { return len(r.polygons) }

// Origin returns the ring's origin point.
func (r *Ring) Origin() Point { return r.origin }

// EdgeLength returns the construction edge length (0 for an unbuilt ring).
func (r *Ring) EdgeLength() float64 { return r.edgeLength }

// Final returns the reference point reached after all transitions.
// ErrNotBuilt on a zero-value Ring.
func (r *Ring) Final() (Point, error) {
	if !r.built {
		return Point{}, ErrNotBuilt
	}

	return r.final, nil
}

// ClosureError returns the Euclidean distance from the final reference
// point back to the origin — the primary correctness metric.
// ErrNotBuilt on a zero-value Ring.
func (r *Ring) ClosureError() (float64, error) {
	if !r.built {
		return 0, ErrNotBuilt
	}

	return r.closureError, nil
}

// VerifyClosure reports whether the ring closed within tolerance, along
// with the measured closure error.
//
// Errors: ErrNotBuilt before construction; tolerance ≤ 0 →
// ErrNonPositiveTolerance.
func (r *Ring) VerifyClosure(tolerance float64) (bool, float64, error) {
	if !r.built {
		return false, 0, fmt.Errorf("%s: %w", methodVerifyClosure, ErrNotBuilt)
	}
	if tolerance <= 0 || math.IsNaN(tolerance) {
		return false, 0, fmt.Errorf("%s: tolerance=%g: %w", methodVerifyClosure, tolerance, ErrNonPositiveTolerance)
	}

	return r.closureError < tolerance, r.closureError, nil
}
