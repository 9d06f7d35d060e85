package b13

import "math"

// DefaultNodes returns the balanced digit set -6..+6, the node ladder
// used when no custom one is supplied.
func DefaultNodes() []int {
	nodes := make([]int, 2*MaxDigit+1)
	for i := range nodes {
		nodes[i] = i - MaxDigit
	}

	return nodes
}

// RoundToNode snaps v to the nearest node value; when nodes is empty the
// balanced digit set -6..+6 is used. Ties resolve to the first node in
// the slice.
func RoundToNode(v float64, nodes []int) int {
	if len(nodes) == 0 {
		nodes = DefaultNodes()
	}
	closest := nodes[0]
	best := math.Abs(float64(nodes[0]) - v)
	for _, n := range nodes[1:] {
		if d := math.Abs(float64(n) - v); d < best {
			best = d
			closest = n
		}
	}

	return closest
}

// DistributeErrorFibonacci spreads a total error across n nodes using
// inverse-Fibonacci weights, clamping each per-node correction to ±1 —
// the toy's "±1 rounding" error-control rule. Earlier nodes carry larger
// weights, so most of the error is absorbed up front and the residue
// tapers off. Returns nil for n ≤ 0.
//
// Complexity: O(n²) from the per-step remaining-weight sums; n is tens.
func DistributeErrorFibonacci(totalError float64, n int) []int {
	if n <= 0 {
		return nil
	}
	weights := InverseFibonacci(n)

	corrections := make([]int, n)
	remaining := totalError
	for i := 0; i < n; i++ {
		var remainingWeight int64
		for _, w := range weights[i:] {
			remainingWeight += w
		}

		var target float64
		if remainingWeight > 0 {
			target = remaining * float64(weights[i]) / float64(remainingWeight)
		}

		// Clamp to ±1 after conventional rounding.
		c := int(math.Round(target))
		if c > 1 {
			c = 1
		} else if c < -1 {
			c = -1
		}

		corrections[i] = c
		remaining -= float64(c)
	}

	return corrections
}
