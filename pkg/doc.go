// Package pkg provides the core libraries for Aquarelle painting generation.
//
// # Overview
//
// Aquarelle produces abstract grid paintings in the spirit of Piet Mondrian,
// then repaints each block with a simulated watercolor bleed so the result
// looks hand-painted rather than vector-clean. The pkg directory is organized
// into three main areas:
//
//  1. [scene] - Composition (grid subdivision, color assignment, line work)
//  2. [watercolor] - Paint simulation (polygon deformation, layer stacks)
//  3. [render] - Rasterization and SVG output
//
// # Architecture
//
// The typical data flow through Aquarelle:
//
//	Seed + canvas size
//	         ↓
//	    [scene] package (subdivide, color, select lines)
//	         ↓
//	    [watercolor] package (deform each block into layered bleeds)
//	         ↓
//	    [render] package (composite, texture, erode)
//	         ↓
//	    PNG/SVG/JSON output
//
// # Quick Start
//
// Generate a scene and render it:
//
//	import (
//	    "github.com/hselder/aquarelle/pkg/render"
//	    "github.com/hselder/aquarelle/pkg/scene"
//	)
//
//	// 1. Build a deterministic composition
//	s, _ := scene.Build(42, 2400, 1200)
//
//	// 2. Rasterize it
//	img, _ := render.Raster(s, render.Options{LineThickness: 8})
//
// # Main Packages
//
// ## Core Domain Logic
//
// [scene] - Composition logic. Recursive grid subdivision, edge-weighted
// color family sampling, and probabilistic line selection. A Scene is a
// pure value: the same seed always yields the same composition.
//
// [watercolor] - The paint simulation. Polygons grow by repeated edge
// subdivision with randomized midpoint displacement, producing stacks of
// translucent layers that read as pigment bleeding into wet paper.
//
// [render] - Turns a Scene into pixels or markup. The raster path
// composites blurred, textured, eroded layers per block; the SVG path
// emits a lighter stylized approximation.
//
// ## Infrastructure
//
// [rng] - Deterministic random streams with labeled forks, so block
// texturing and layer growth stay reproducible independent of evaluation
// order.
//
// [sceneio] - JSON export and import of scenes with validation.
//
// [cache] - Content-addressed file cache used by the HTTP server to
// avoid re-rendering identical requests.
//
// [config] - TOML configuration loading with validation.
//
// [buildinfo] - Version information injected at build time.
package pkg
