// Package artemis is the MORO geometry archive: a closed ring of regular
// pentagons that returns to its origin within machine precision, plus the
// companion balanced base-13 numeral toy and plotting helpers.
//
// 🚀 What is Artemis-B13-Archive?
//
//	A small, deterministic library built around one reproducible fact:
//	ten regular pentagons, chained edge-to-edge and rotated 36° per step,
//	close a full turn with a residual of the order of 1e-16.
//		• Pentagon/ring construction with a certified closure metric
//		• Golden-ratio pentagon spirals and orbits (the MORO scenes)
//		• Balanced base-13 integers: add/subtract-only arithmetic
//		• SVG / PNG / animated-GIF export of the computed figures
//
// ✨ Why this shape?
//
//   - The pentagon exterior angle is 72°, the ring rotation step 36°;
//     10 × 36° = 360° forces the chain shut after exactly ten tiles
//   - The jump between tiles is a rhombus diagonal recomputed from the
//     running heading, never read back from vertices, so drift stays
//     bounded by construction
//   - Everything is pure IEEE-754 math: same inputs, same bits
//
// Under the hood, everything is organized under three subpackages:
//
//	pentaring/ — polygon builder, ring assembler, closure verification
//	b13/       — balanced base-13 numerals, Fibonacci/Lucas, φ helpers
//	render/    — SVG, PNG and animated-GIF consumers of the vertex data
//
// Runnable demos live under examples/; start with examples/ringreport.
//
//	go get github.com/morcb13-bit/Artemis-B13-Archive/pentaring
package artemis
