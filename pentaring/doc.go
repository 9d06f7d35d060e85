// Package pentaring constructs closed rings of regular pentagons and
// certifies, numerically, that the chain returns to its starting point.
//
// 🚀 What does it do?
//
//	The core is one deterministic construction: walk a regular polygon by
//	repeated "advance along the heading, then turn by the exterior angle",
//	then chain N such polygons by a fixed transition rule and measure how
//	far the final reference point lands from the origin.
//	  • BuildPolygon — one regular polygon from (start, heading, edge, n)
//	  • BuildRing    — N pentagons chained edge-to-edge; closure metric
//	  • VerifyClosure / EdgeStatistics — the certification surface
//	  • BuildSpiral / BuildOrbit / BuildCentered — the MORO demo figures
//
// ✨ The load-bearing idea:
//
//   - The successor's start point is NOT a vertex of the polygon just
//     built. It is re-derived from the running (point, heading) state as
//     edge·(u(θ) + u(θ+72°)) — the diagonal of the rhombus spanned by two
//     consecutive pentagon edges. Drift therefore stays bounded by the
//     formula, not by accumulated vertex lookups.
//   - The ring rotation step is 2π/N; for the canonical N=10 that is 36°,
//     and 10 × 36° = 360° closes the chain after exactly ten tiles.
//
// ⚙️ Usage:
//
//	ring, err := pentaring.BuildRing(10, 1.0)
//	if err != nil { ... }
//	ok, residual, _ := ring.VerifyClosure(1e-9)  // ok=true, residual≈1e-16
//	stats, _ := ring.EdgeStatistics()            // Mean≈1, StdDev≈0
//
// Determinism:
//
//	Pure IEEE-754 float64 math, no randomness, no order dependence; the
//	same inputs always produce bit-identical rings. The heading
//	accumulator is never reduced modulo 2π — the trigonometric functions'
//	periodicity is relied on instead.
//
// The near-zero closure guarantee holds for the canonical pairing
// (5 vertices, 10 tiles). Other (vertex count, ring size) combinations
// build fine but carry no closure promise.
package pentaring
