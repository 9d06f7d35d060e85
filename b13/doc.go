// Package b13 implements the MORC balanced base-13 numeral toy: integers
// written with digits -6..+6, arithmetic restricted to addition and
// subtraction, and the golden-ratio helpers that accompany it.
//
// 🚀 What is a balanced base-13 number?
//
//	A little-endian digit vector c₀,c₁,... with each cᵢ ∈ {-6,...,+6},
//	denoting c₀ + c₁·13 + c₂·13² + ... Negation is just digit-wise sign
//	flip, and carries move at most one step — which is the whole premise:
//	every computation reduces to add/subtract with ±1 carry control.
//
// Alongside the Number type the package carries the rest of the toy:
//   - Fibonacci / Lucas sequences and their φ-convergent ratios
//   - φ divergence, the "energy" of a ratio, and stability checks
//   - node rounding and inverse-Fibonacci error distribution
//   - small-integer prime utilities (twin pairs, factorization)
//
// The package is wholly independent of the geometry core — no shared
// state, no coupling — and everything in it is deterministic pure math.
//
// ⚙️ Usage:
//
//	n := b13.New(3, -2, 1)          // 3 - 2·13 + 1·13² = 146
//	m := b13.FromInt(-40)
//	sum := n.Add(m)
//	fmt.Println(sum.Int64())        // 106
package b13
