// Package scene generates the vector description of a painting.
//
// # Pipeline
//
// Build runs the full generation pass: recursive quadrant subdivision of
// the canvas into blocks, position-weighted color sampling for each block,
// and stochastic selection and trimming of the grid lines. The result is a
// Scene, the sole artifact the renderers consume.
//
// Every stochastic choice draws from one rng.Stream seeded by the caller,
// in a fixed order, so a Scene is a pure function of (seed, width,
// height). Per-block watercolor layers are generated lazily from streams
// forked off the scene seed and block index; see Scene.Layers.
//
// # Coordinates
//
// Subdivision works in integer canvas units (splits use floor division,
// so sibling blocks of an odd extent differ by one unit). Line endpoints
// become fractional after trimming. Painterliness is high near the canvas
// center and zero at the border; it drives color weighting, line density,
// and all watercolor parameters.
package scene
