// Package rng provides the seeded random stream that drives every
// stochastic choice in the generator.
//
// All components draw from a single Stream so that a run is fully
// reproducible from its seed: the same seed and parameters always produce
// the same painting. Gaussian values come from the Box-Muller transform
// (with the second value cached), so two implementations sharing a seed
// also share every normal draw.
//
// Independent work (per-block watercolor layers, renderer-side texture)
// uses Fork to derive a child stream from the master seed plus a label and
// index. Child streams are deterministic but do not consume draws from the
// parent, which keeps scene generation and layer generation independent of
// each other.
//
// A Stream is not safe for concurrent use; fork one per goroutine instead.
package rng
