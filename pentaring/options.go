// Package pentaring — functional options for the ring and spiral builders.
//
// Contract (strict):
//   - Options are functional (func(*config)); applying N options is O(N).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves never panic, they return sentinel errors.
//   - No hidden globals: everything flows through the resolved config,
//     and defaults are deterministic.
package pentaring

import "math"

// RingOption customizes BuildRing before construction begins.
type RingOption func(*ringConfig)

// ringConfig aggregates the ring knobs; passed by value to the builder.
type ringConfig struct {
	origin      Point   // ring origin, default (0,0)
	heading     float64 // initial heading in radians, default 0
	vertexCount int     // tile vertex count, default PentagonVertexCount
}

// newRingConfig resolves options in order (later overrides earlier).
func newRingConfig(opts ...RingOption) ringConfig {
	cfg := ringConfig{vertexCount: PentagonVertexCount}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrigin places the ring's first reference point at p instead of (0,0).
// The closure error is always measured back to this origin.
func WithOrigin(p Point) RingOption {
	return func(c *ringConfig) {
		c.origin = p
	}
}

// WithStartHeading sets the initial heading in radians (CCW from +x).
// Panics on NaN or ±Inf: a non-finite heading poisons every vertex.
func WithStartHeading(theta float64) RingOption {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		panic("pentaring: WithStartHeading(non-finite)")
	}

	return func(c *ringConfig) {
		c.heading = theta
	}
}

// WithVertexCount overrides the tile vertex count (default 5).
// Panics if n < 3. Note: the near-zero closure guarantee is established
// only for the canonical pairing (5 vertices, 10 tiles); other counts
// build deterministically but may leave a visible gap.
func WithVertexCount(n int) RingOption {
	if n < minPolygonVertices {
		panic("pentaring: WithVertexCount(n<3)")
	}

	return func(c *ringConfig) {
		c.vertexCount = n
	}
}

// SpiralOption customizes BuildSpiral.
type SpiralOption func(*spiralConfig)

// spiralConfig aggregates the spiral knobs.
type spiralConfig struct {
	center Point   // spiral center, default (0,0)
	decay  float64 // per-tile φ-decay exponent, default 0.3
	twist  float64 // per-tile rotation in radians, default 22.5°
}

// Deterministic spiral defaults, matching the MORO demo scene.
const (
	defaultSpiralDecay = 0.3
	defaultSpiralTwist = math.Pi / 8 // 22.5°
)

func newSpiralConfig(opts ...SpiralOption) spiralConfig {
	cfg := spiralConfig{decay: defaultSpiralDecay, twist: defaultSpiralTwist}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSpiralCenter places the spiral's shared center at p.
func WithSpiralCenter(p Point) SpiralOption {
	return func(c *spiralConfig) {
		c.center = p
	}
}

// WithDecay sets the golden-ratio decay exponent d: tile i has
// circumradius radius/φ^(d·i). Panics if d ≤ 0 (the spiral must shrink).
func WithDecay(d float64) SpiralOption {
	if d <= 0 || math.IsNaN(d) {
		panic("pentaring: WithDecay(d<=0)")
	}

	return func(c *spiralConfig) {
		c.decay = d
	}
}

// WithTwist sets the per-tile rotation in radians. Any finite value is
// meaningful (0 stacks the tiles, negative twists clockwise); panics on
// NaN or ±Inf.
func WithTwist(t float64) SpiralOption {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic("pentaring: WithTwist(non-finite)")
	}

	return func(c *spiralConfig) {
		c.twist = t
	}
}
