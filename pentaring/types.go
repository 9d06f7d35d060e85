// Package pentaring defines core types, options, and sentinel errors
// for the pentaring subpackage of github.com/morcb13-bit/Artemis-B13-Archive.
package pentaring

import "math"

// Geometric constants of the construction.
const (
	// PentagonVertexCount is the vertex count of the canonical tile.
	PentagonVertexCount = 5

	// CanonicalRingSize is the tile count the construction is designed
	// around: ten pentagons, rotated 36° per step, close a full turn.
	CanonicalRingSize = 10

	// PentagonExteriorAngle is the fixed turning angle after each pentagon
	// edge: 2π/5, i.e. 72°.
	PentagonExteriorAngle = 2 * math.Pi / PentagonVertexCount

	// GoldenRatio is φ = (1+√5)/2, the pentagon diagonal-to-edge ratio.
	GoldenRatio = math.Phi
)

// Minimum parameter domains shared by the builders.
const (
	minPolygonVertices = 3
	minRingPolygons    = 1
)

// Point is an immutable position in the shared 2D Euclidean plane.
// Every construction step derives a new Point; none is mutated in place.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Norm returns the Euclidean norm |p|.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// DistanceTo returns the Euclidean distance |p - q|.
func (p Point) DistanceTo(q Point) float64 { return p.Sub(q).Norm() }

// Rotate returns p rotated counter-clockwise by ang radians about the origin.
func (p Point) Rotate(ang float64) Point {
	c, s := math.Cos(ang), math.Sin(ang)

	return Point{c*p.X - s*p.Y, s*p.X + c*p.Y}
}

// unit returns the unit vector for a heading angle (CCW from +x axis).
func unit(heading float64) Point {
	return Point{math.Cos(heading), math.Sin(heading)}
}

// Polygon is the ordered vertex sequence of one regular polygon, in
// construction order; vertex 0 is the polygon's starting point. The
// closing edge (last vertex back to vertex 0) is implied, never stored.
type Polygon []Point

// EdgeLengths returns the length of every edge, including the wraparound
// edge from the last vertex back to the first. Nil for degenerate input.
// Complexity: O(len(p)).
func (p Polygon) EdgeLengths() []float64 {
	n := len(p)
	if n < 2 {
		return nil
	}
	lengths := make([]float64, n)
	for i := 0; i < n; i++ {
		lengths[i] = p[i].DistanceTo(p[(i+1)%n])
	}

	return lengths
}

// Centroid returns the arithmetic mean of the vertices (used by renderers
// to place tile labels). Zero Point for an empty polygon.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var sum Point
	for _, v := range p {
		sum = sum.Add(v)
	}

	return sum.Scale(1 / float64(len(p)))
}

// clone returns an independent copy; Ring accessors hand out clones so the
// ring's own vertex data is never aliased outside it.
func (p Polygon) clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)

	return out
}

// EdgeStats summarizes every edge length of every polygon in a ring,
// recomputed from the vertices as an independent consistency check.
type EdgeStats struct {
	Mean   float64 // arithmetic mean of all edge lengths
	StdDev float64 // population standard deviation
	Min    float64 // shortest edge observed
	Max    float64 // longest edge observed
	Count  int     // number of edges measured (tiles × vertices)
}

// Ring is a fully built sequence of polygons plus its closure diagnostics.
// A Ring is produced in one pass by BuildRing and never mutated afterwards.
// The zero value is an unbuilt ring: every query reports ErrNotBuilt.
type Ring struct {
	polygons     []Polygon
	origin       Point
	final        Point
	closureError float64
	edgeLength   float64
	vertexCount  int
	built        bool
}
