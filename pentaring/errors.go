// Package pentaring — sentinel errors.
//
// Error policy (teacher-grade strictness):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never by string comparison.
//   - Builders attach method context via %w wrapping and return
//     immediately; no partial Ring is ever handed out.
//   - Algorithms never panic at runtime; validation panics are confined
//     to option constructors (WithX...).
package pentaring

import "errors"

var (
	// ErrNonPositiveEdge indicates an edge length ≤ 0. The walk is
	// undefined for degenerate edges; rejected before any construction.
	ErrNonPositiveEdge = errors.New("pentaring: edge length must be positive")

	// ErrTooFewVertices indicates a polygon vertex count < 3.
	ErrTooFewVertices = errors.New("pentaring: vertex count must be at least 3")

	// ErrTooFewPolygons indicates a ring/spiral/orbit tile count < 1.
	ErrTooFewPolygons = errors.New("pentaring: polygon count must be at least 1")

	// ErrNonPositiveRadius indicates a circumradius ≤ 0 for the centered
	// constructions (BuildCentered, BuildSpiral, BuildOrbit).
	ErrNonPositiveRadius = errors.New("pentaring: radius must be positive")

	// ErrZeroEdgeVector indicates BuildPolygonFromEdge received a
	// zero-length first edge.
	ErrZeroEdgeVector = errors.New("pentaring: edge vector must be non-zero")

	// ErrNonPositiveTolerance indicates VerifyClosure received a
	// tolerance ≤ 0.
	ErrNonPositiveTolerance = errors.New("pentaring: tolerance must be positive")

	// ErrNotBuilt indicates a diagnostic query (VerifyClosure,
	// EdgeStatistics, Final, ClosureError) on a Ring that BuildRing has
	// not produced — i.e. a zero-value Ring.
	ErrNotBuilt = errors.New("pentaring: ring is not built")
)

// Canonical method names used to prefix wrapped errors with context.
const (
	methodBuildPolygon         = "BuildPolygon"
	methodBuildPolygonFromEdge = "BuildPolygonFromEdge"
	methodBuildCentered        = "BuildCentered"
	methodBuildRing            = "BuildRing"
	methodBuildSpiral          = "BuildSpiral"
	methodBuildOrbit           = "BuildOrbit"
	methodVerifyClosure        = "VerifyClosure"
	methodEdgeStatistics       = "EdgeStatistics"
)
