// Package watercolor simulates paint bleed over a region.
//
// # Overview
//
// A block's rectangle seeds a Polygon whose edges are repeatedly
// subdivided and displaced outward, producing the organic, feathered
// silhouette of wet paint on paper. Stacking a few dozen such polygons at
// low opacity gives the watercolor look; a final erosion pass removes
// small random circles of alpha to fake paper grain.
//
// # Model
//
// Polygon is an immutable value: Grow returns a successor rather than
// mutating, so the layer schedule is trivially replayable. Each vertex
// carries a bleed modifier and each edge an outward-direction flag; the
// three parallel arrays always have equal length.
//
// BuildLayers runs the full schedule: four polygon lineages evolve from
// the seed quadrilateral at different growth rates, and every iteration
// emits one translucent layer per lineage plus an erosion spec for the
// renderer. All randomness comes from the rng.Stream passed in, so a
// block's layers are a pure function of (stream seed, parameters).
//
// The numeric constants here are visual-tuning values carried over from
// the source algorithm. Several look asymmetric on purpose (the stroke
// weight ramp divides by 24 even when fewer layers are emitted); changing
// them changes the look.
package watercolor
