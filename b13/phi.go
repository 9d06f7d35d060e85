package b13

import "math"

// Phi is the golden ratio φ = (1+√5)/2 ≈ 1.618, the pentagon
// diagonal-to-edge ratio and the limit of consecutive Fibonacci ratios.
const Phi = math.Phi

// DefaultStabilityTolerance is the φ-distance below which a ratio is
// considered a stable configuration.
const DefaultStabilityTolerance = 0.1

// PhiDivergence returns |v - φ|, the distance of a measured ratio from
// the golden ratio.
func PhiDivergence(v float64) float64 { return math.Abs(v - Phi) }

// EnergyFromDivergence maps a φ divergence to an energy E = k·d
// (arbitrary units, k is the proportionality constant).
func EnergyFromDivergence(d, k float64) float64 { return k * d }

// IsStableRatio reports whether v lies within tol of φ. A tolerance ≤ 0
// (or NaN) selects DefaultStabilityTolerance.
func IsStableRatio(v, tol float64) bool {
	if tol <= 0 || math.IsNaN(tol) {
		tol = DefaultStabilityTolerance
	}

	return PhiDivergence(v) < tol
}
