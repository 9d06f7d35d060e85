package pentaring_test

import (
	"math"
	"testing"

	"github.com/morcb13-bit/Artemis-B13-Archive/pentaring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	edgeTol    = 1e-9  // absolute tolerance on edge lengths
	turnTol    = 1e-12 // absolute tolerance on turning-angle sums
	closureTol = 1e-9  // canonical ring closure bound
)

// turningAngleSum accumulates the exterior turn at every vertex of p
// (including the wraparound), measured between consecutive edge vectors.
func turningAngleSum(p pentaring.Polygon) float64 {
	n := len(p)
	var sum float64
	for i := 0; i < n; i++ {
		e1 := p[(i+1)%n].Sub(p[i])
		e2 := p[(i+2)%n].Sub(p[(i+1)%n])
		cross := e1.X*e2.Y - e1.Y*e2.X
		dot := e1.X*e2.X + e1.Y*e2.Y
		sum += math.Atan2(cross, dot)
	}

	return sum
}

// TestBuildPolygon_EdgeLengths verifies that every edge of the output,
// wraparound included, has the requested length within 1e-9, for several
// vertex counts, starts and headings.
func TestBuildPolygon_EdgeLengths(t *testing.T) {
	cases := []struct {
		name        string
		start       pentaring.Point
		heading     float64
		edgeLength  float64
		vertexCount int
	}{
		{"unit pentagon at origin", pentaring.Point{}, 0, 1.0, 5},
		{"triangle, offset start", pentaring.Point{X: 2, Y: -3}, math.Pi / 7, 2.5, 3},
		{"heptagon, tiny edge", pentaring.Point{X: -1, Y: 1}, 1.234, 1e-3, 7},
		{"dodecagon, large edge", pentaring.Point{X: 10, Y: 10}, -4.2, 1e3, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			poly, err := pentaring.BuildPolygon(tc.start, tc.heading, tc.edgeLength, tc.vertexCount)
			require.NoError(t, err)
			require.Len(t, poly, tc.vertexCount, "no closing duplicate vertex")
			assert.Equal(t, tc.start, poly[0], "vertex 0 is the start point")

			for i, l := range poly.EdgeLengths() {
				assert.InDelta(t, tc.edgeLength, l, edgeTol, "edge %d", i)
			}
		})
	}
}

// TestBuildPolygon_TurningAngleClosure checks that the exterior turns over
// one polygon sum to exactly 2π within 1e-12, for all counts 3..12.
func TestBuildPolygon_TurningAngleClosure(t *testing.T) {
	for n := 3; n <= 12; n++ {
		poly, err := pentaring.BuildPolygon(pentaring.Point{X: 0.5, Y: 0.5}, 0.3, 1.0, n)
		require.NoError(t, err)
		assert.InDelta(t, 2*math.Pi, turningAngleSum(poly), turnTol, "n=%d", n)
	}
}

// TestBuildPolygon_InvalidParameters asserts eager sentinel rejection.
func TestBuildPolygon_InvalidParameters(t *testing.T) {
	_, err := pentaring.BuildPolygon(pentaring.Point{}, 0, 0.0, 5)
	assert.ErrorIs(t, err, pentaring.ErrNonPositiveEdge, "zero edge length")

	_, err = pentaring.BuildPolygon(pentaring.Point{}, 0, -1.0, 5)
	assert.ErrorIs(t, err, pentaring.ErrNonPositiveEdge, "negative edge length")

	_, err = pentaring.BuildPolygon(pentaring.Point{}, 0, 1.0, 2)
	assert.ErrorIs(t, err, pentaring.ErrTooFewVertices, "vertexCount=2")
}

// TestBuildPolygonFromEdge_MatchesHeadingWalk verifies the edge-vector
// variant agrees with BuildPolygon when the first edge points along the
// equivalent heading.
func TestBuildPolygonFromEdge_MatchesHeadingWalk(t *testing.T) {
	p0 := pentaring.Point{X: 1, Y: 2}
	want, err := pentaring.BuildPolygon(p0, 0, 3.0, 5)
	require.NoError(t, err)

	got, err := pentaring.BuildPolygonFromEdge(p0, pentaring.Point{X: 3}, false)
	require.NoError(t, err)
	require.Len(t, got, 5)

	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-12, "vertex %d X", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-12, "vertex %d Y", i)
	}

	_, err = pentaring.BuildPolygonFromEdge(p0, pentaring.Point{}, false)
	assert.ErrorIs(t, err, pentaring.ErrZeroEdgeVector)
}

// TestBuildPolygonFromEdge_Clockwise checks that the mirror tile has the
// opposite winding (turning angles sum to -2π).
func TestBuildPolygonFromEdge_Clockwise(t *testing.T) {
	poly, err := pentaring.BuildPolygonFromEdge(pentaring.Point{}, pentaring.Point{X: 1}, true)
	require.NoError(t, err)
	assert.InDelta(t, -2*math.Pi, turningAngleSum(poly), turnTol)
}

// TestBuildCentered_Circumradius verifies vertex distance from the center
// and the edge length 2R·sin(π/n).
func TestBuildCentered_Circumradius(t *testing.T) {
	center := pentaring.Point{X: -2, Y: 5}
	const radius = 1.7
	poly, err := pentaring.BuildCentered(center, radius, 0.4, 5)
	require.NoError(t, err)

	for i, v := range poly {
		assert.InDelta(t, radius, v.DistanceTo(center), edgeTol, "vertex %d radius", i)
	}
	wantEdge := 2 * radius * math.Sin(math.Pi/5)
	for i, l := range poly.EdgeLengths() {
		assert.InDelta(t, wantEdge, l, edgeTol, "edge %d", i)
	}

	_, err = pentaring.BuildCentered(center, 0, 0, 5)
	assert.ErrorIs(t, err, pentaring.ErrNonPositiveRadius)
	_, err = pentaring.BuildCentered(center, 1, 0, 2)
	assert.ErrorIs(t, err, pentaring.ErrTooFewVertices)
}

// TestBuildRing_CanonicalClosure is the headline property: ten unit
// pentagons close with a residual under 1e-9 (in practice ~1e-16).
func TestBuildRing_CanonicalClosure(t *testing.T) {
	ring, err := pentaring.BuildRing(pentaring.CanonicalRingSize, 1.0)
	require.NoError(t, err)

	closed, residual, err := ring.VerifyClosure(closureTol)
	require.NoError(t, err)
	assert.True(t, closed, "canonical ring must close, residual=%g", residual)
	assert.Less(t, residual, closureTol)

	final, err := ring.Final()
	require.NoError(t, err)
	assert.InDelta(t, 0, final.X, closureTol)
	assert.InDelta(t, 0, final.Y, closureTol)
}

// TestBuildRing_VertexCountAndStats checks the 10×5 vertex layout and the
// independent edge-length statistics.
func TestBuildRing_VertexCountAndStats(t *testing.T) {
	ring, err := pentaring.BuildRing(10, 1.0)
	require.NoError(t, err)

	polys := ring.Polygons()
	require.Len(t, polys, 10)
	total := 0
	for _, p := range polys {
		total += len(p)
	}
	assert.Equal(t, 50, total, "10 pentagons × 5 vertices")

	stats, err := ring.EdgeStatistics()
	require.NoError(t, err)
	assert.Equal(t, 50, stats.Count, "wraparound edges included")
	assert.InDelta(t, 1.0, stats.Mean, edgeTol)
	assert.InDelta(t, 0.0, stats.StdDev, edgeTol)
	assert.InDelta(t, 1.0, stats.Min, edgeTol)
	assert.InDelta(t, 1.0, stats.Max, edgeTol)
}

// TestBuildRing_TransitionRule verifies that tile i+1 starts at the
// rhombus diagonal jump from tile i's reference state, not at any vertex
// of tile i.
func TestBuildRing_TransitionRule(t *testing.T) {
	const edge = 2.0
	ring, err := pentaring.BuildRing(10, edge)
	require.NoError(t, err)

	polys := ring.Polygons()
	// First step: point=(0,0), heading=0, so the jump is
	// edge·((cos0+cos72°), (sin0+sin72°)).
	want := pentaring.Point{
		X: edge * (1 + math.Cos(pentaring.PentagonExteriorAngle)),
		Y: edge * math.Sin(pentaring.PentagonExteriorAngle),
	}
	assert.InDelta(t, want.X, polys[1][0].X, 1e-12)
	assert.InDelta(t, want.Y, polys[1][0].Y, 1e-12)
}

// TestBuildRing_Deterministic asserts bit-identical output for identical
// inputs — no hidden global or random state.
func TestBuildRing_Deterministic(t *testing.T) {
	a, err := pentaring.BuildRing(10, 1.0)
	require.NoError(t, err)
	b, err := pentaring.BuildRing(10, 1.0)
	require.NoError(t, err)

	require.Equal(t, a.Polygons(), b.Polygons())

	fa, _ := a.Final()
	fb, _ := b.Final()
	assert.Equal(t, fa, fb)

	ea, _ := a.ClosureError()
	eb, _ := b.ClosureError()
	assert.Equal(t, ea, eb)
}

// TestBuildRing_ClosureScalesLinearly: doubling the edge length doubles
// whatever floating-point residual remains.
func TestBuildRing_ClosureScalesLinearly(t *testing.T) {
	r1, err := pentaring.BuildRing(10, 1.0)
	require.NoError(t, err)
	r2, err := pentaring.BuildRing(10, 2.0)
	require.NoError(t, err)

	e1, _ := r1.ClosureError()
	e2, _ := r2.ClosureError()
	assert.InDelta(t, 2*e1, e2, 1e-12)
}

// TestBuildRing_InvalidParameters asserts eager sentinel rejection.
func TestBuildRing_InvalidParameters(t *testing.T) {
	_, err := pentaring.BuildRing(0, 1.0)
	assert.ErrorIs(t, err, pentaring.ErrTooFewPolygons, "pentagonCount=0")

	_, err = pentaring.BuildRing(-1, 1.0)
	assert.ErrorIs(t, err, pentaring.ErrTooFewPolygons, "pentagonCount=-1")

	_, err = pentaring.BuildRing(10, 0)
	assert.ErrorIs(t, err, pentaring.ErrNonPositiveEdge, "edgeLength=0")
}

// TestBuildRing_Options checks translation/rotation invariance of the
// closure metric under WithOrigin/WithStartHeading, and that
// WithVertexCount builds (without any closure promise).
func TestBuildRing_Options(t *testing.T) {
	origin := pentaring.Point{X: 7, Y: -4}
	ring, err := pentaring.BuildRing(10, 1.0,
		pentaring.WithOrigin(origin),
		pentaring.WithStartHeading(math.Pi/3),
	)
	require.NoError(t, err)
	assert.Equal(t, origin, ring.Origin())

	// Closure is measured back to the configured origin, so the shifted,
	// rotated ring still closes.
	closed, _, err := ring.VerifyClosure(closureTol)
	require.NoError(t, err)
	assert.True(t, closed)

	hex, err := pentaring.BuildRing(6, 1.0, pentaring.WithVertexCount(6))
	require.NoError(t, err)
	assert.Len(t, hex.Polygons(), 6)
}

// TestRing_ZeroValueQueries: every diagnostic on an unbuilt Ring reports
// ErrNotBuilt; Polygons returns nil.
func TestRing_ZeroValueQueries(t *testing.T) {
	var r pentaring.Ring

	_, _, err := r.VerifyClosure(1e-9)
	assert.ErrorIs(t, err, pentaring.ErrNotBuilt)

	_, err = r.EdgeStatistics()
	assert.ErrorIs(t, err, pentaring.ErrNotBuilt)

	_, err = r.Final()
	assert.ErrorIs(t, err, pentaring.ErrNotBuilt)

	_, err = r.ClosureError()
	assert.ErrorIs(t, err, pentaring.ErrNotBuilt)

	assert.Nil(t, r.Polygons())
	assert.Equal(t, 0, r.Size())
}

// TestVerifyClosure_BadTolerance rejects tolerance ≤ 0 on a built ring.
func TestVerifyClosure_BadTolerance(t *testing.T) {
	ring, err := pentaring.BuildRing(10, 1.0)
	require.NoError(t, err)

	_, _, err = ring.VerifyClosure(0)
	assert.ErrorIs(t, err, pentaring.ErrNonPositiveTolerance)
	_, _, err = ring.VerifyClosure(-1e-9)
	assert.ErrorIs(t, err, pentaring.ErrNonPositiveTolerance)
}

// TestRing_PolygonsAreCopies ensures mutating a returned polygon does not
// leak back into the ring.
func TestRing_PolygonsAreCopies(t *testing.T) {
	ring, err := pentaring.BuildRing(10, 1.0)
	require.NoError(t, err)

	polys := ring.Polygons()
	polys[0][0] = pentaring.Point{X: 999, Y: 999}

	again := ring.Polygons()
	assert.NotEqual(t, pentaring.Point{X: 999, Y: 999}, again[0][0])
}

// TestOptionPanics confirms option constructors fail fast on meaningless
// values while builders themselves never panic.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { pentaring.WithVertexCount(2) })
	assert.Panics(t, func() { pentaring.WithStartHeading(math.NaN()) })
	assert.Panics(t, func() { pentaring.WithDecay(0) })
	assert.Panics(t, func() { pentaring.WithTwist(math.Inf(1)) })
}
