// Package render turns a generated scene into pixels or SVG.
//
// # Raster path
//
// Raster follows the original compositing recipe: border blocks are solid
// fills; each interior block is built on an offscreen layer from its
// watercolor polygon stack, blurred for soft bleed, speckled with HSV
// noise, eroded for paper grain, and composited onto the canvas at a
// painterliness-dependent opacity. Grid lines go on top.
//
// Rendering consumes no draws from the generation stream: per-block
// texture randomness forks off the scene seed, so the same scene always
// rasterizes to the same pixels.
//
// # SVG path
//
// The SVG sink is a flat preview (rounded rectangles, translucent layer
// polygons, stroked lines) for quick iteration without rasterizing.
package render
