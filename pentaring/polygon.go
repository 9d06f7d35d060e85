// Package pentaring — polygon builders.
//
// Three constructions, all pure functions of their inputs:
//   - BuildPolygon         — heading walk (the ring's workhorse)
//   - BuildPolygonFromEdge — edge-vector walk with a turn sign
//   - BuildCentered        — circumradius construction (spiral/orbit tiles)
package pentaring

import (
	"fmt"
	"math"
)

// BuildPolygon produces the ordered vertex sequence of one regular polygon
// by repeated "advance along heading, then turn by the exterior angle".
//
// Contract:
//   - edgeLength > 0 (else ErrNonPositiveEdge), vertexCount ≥ 3 (else
//     ErrTooFewVertices); validation happens before any work.
//   - Output has exactly vertexCount vertices; no closing duplicate of
//     vertex 0 is appended.
//   - The vertexCount turns sum to exactly 2π (up to rounding of each
//     increment), so the result is a regular polygon of the requested
//     size for ANY start and heading.
//
// Complexity: O(vertexCount) time, O(vertexCount) space. Pure.
func BuildPolygon(start Point, heading, edgeLength float64, vertexCount int) (Polygon, error) {
	if edgeLength <= 0 {
		return nil, fmt.Errorf("%s: edgeLength=%g: %w", methodBuildPolygon, edgeLength, ErrNonPositiveEdge)
	}
	if vertexCount < minPolygonVertices {
		return nil, fmt.Errorf("%s: vertexCount=%d: %w", methodBuildPolygon, vertexCount, ErrTooFewVertices)
	}

	// Exterior angle of a regular n-gon: one full turn split into n turns.
	exterior := 2 * math.Pi / float64(vertexCount)

	verts := make(Polygon, vertexCount)
	p, theta := start, heading
	for i := 0; i < vertexCount; i++ {
		// Record the running point, then advance and turn.
		verts[i] = p
		p = p.Add(unit(theta).Scale(edgeLength))
		theta += exterior // accumulate; never reduced mod 2π
	}

	return verts, nil
}

// BuildPolygonFromEdge builds a regular pentagon from its first edge
// vector: vertex 0 at p0, vertex 1 at p0+edge, then the edge vector is
// rotated by ±72° per step. clockwise=true turns the walk the other way,
// producing the mirror tile.
//
// The edge vector's length becomes the tile's edge length; a zero vector
// is rejected with ErrZeroEdgeVector.
//
// Complexity: O(1) (fixed five vertices). Pure.
func BuildPolygonFromEdge(p0, edge Point, clockwise bool) (Polygon, error) {
	if edge.Norm() == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuildPolygonFromEdge, ErrZeroEdgeVector)
	}

	turn := PentagonExteriorAngle
	if clockwise {
		turn = -turn
	}

	verts := make(Polygon, 0, PentagonVertexCount)
	verts = append(verts, p0)
	p, v := p0, edge
	for i := 1; i < PentagonVertexCount; i++ {
		p = p.Add(v)
		verts = append(verts, p)
		v = v.Rotate(turn)
	}

	return verts, nil
}

// BuildCentered builds a regular polygon from its center and circumradius,
// with vertex 0 at angle `rotation` (CCW from +x). This is the tile shape
// used by the spiral and orbit figures; its edge length is
// 2·radius·sin(π/vertexCount).
//
// Errors: radius ≤ 0 → ErrNonPositiveRadius; vertexCount < 3 →
// ErrTooFewVertices.
//
// Complexity: O(vertexCount). Pure.
func BuildCentered(center Point, radius, rotation float64, vertexCount int) (Polygon, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%s: radius=%g: %w", methodBuildCentered, radius, ErrNonPositiveRadius)
	}
	if vertexCount < minPolygonVertices {
		return nil, fmt.Errorf("%s: vertexCount=%d: %w", methodBuildCentered, vertexCount, ErrTooFewVertices)
	}

	step := 2 * math.Pi / float64(vertexCount)
	verts := make(Polygon, vertexCount)
	for i := 0; i < vertexCount; i++ {
		verts[i] = center.Add(unit(rotation + float64(i)*step).Scale(radius))
	}

	return verts, nil
}
