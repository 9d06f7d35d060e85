// Package pentaring — edge-length statistics over a built ring.
package pentaring

import (
	"fmt"
	"math"
)

// EdgeStatistics recomputes every edge length of every tile (including
// each tile's wraparound edge) from the stored vertices and summarizes
// them. The figures are derived from the OUTPUT, not from the
// construction inputs, so they double as an independent consistency
// check: every edge should match the requested edge length to near
// machine precision, with StdDev ≈ 0.
//
// StdDev is the population standard deviation (divisor n), computed in a
// second pass over (x-mean)² for numerical stability.
//
// Errors: ErrNotBuilt on a zero-value Ring.
//
// Complexity: O(tiles · vertices) time, O(tiles · vertices) space.
func (r *Ring) EdgeStatistics() (EdgeStats, error) {
	if !r.built {
		return EdgeStats{}, fmt.Errorf("%s: %w", methodEdgeStatistics, ErrNotBuilt)
	}

	// Gather all lengths first; the two-pass variance needs them anyway.
	lengths := make([]float64, 0, len(r.polygons)*r.vertexCount)
	for _, poly := range r.polygons {
		lengths = append(lengths, poly.EdgeLengths()...)
	}

	stats := EdgeStats{
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
		Count: len(lengths),
	}

	var sum float64
	for _, l := range lengths {
		sum += l
		stats.Min = math.Min(stats.Min, l)
		stats.Max = math.Max(stats.Max, l)
	}
	stats.Mean = sum / float64(stats.Count)

	var sq float64
	for _, l := range lengths {
		d := l - stats.Mean
		sq += d * d
	}
	stats.StdDev = math.Sqrt(sq / float64(stats.Count))

	return stats, nil
}
