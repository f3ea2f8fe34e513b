package watercolor

import "github.com/hselder/aquarelle/pkg/rng"

// Layer is one translucent polygon the renderer composites. Alpha values
// are on the renderer's 0-255 scale. The main lineage carries a stroke;
// the three secondary lineages are fill-only.
type Layer struct {
	Polygon      Polygon `json:"polygon"`
	Alpha        float64 `json:"alpha"`
	HasStroke    bool    `json:"has_stroke"`
	StrokeAlpha  float64 `json:"stroke_alpha,omitempty"`
	StrokeWeight float64 `json:"stroke_weight,omitempty"`
}

// Erosion tells the renderer to knock small random circles of alpha out
// of the painted area around the polygon's centroid, faking paper grain.
// Count circles with radii in [MinRadius, MaxRadius] are removed at
// Strength. Rasterization is the renderer's job.
type Erosion struct {
	Polygon   Polygon `json:"polygon"`
	Count     int     `json:"count"`
	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
	Strength  float64 `json:"strength"`
}

// Params are the per-block inputs to the layer schedule, all derived from
// the block's painterliness by the scene builder.
type Params struct {
	// BleedStrength in [0, ~0.15] controls how far paint spreads.
	BleedStrength float64 `json:"bleed_strength"`
	// TextureStrength in [0, 1] drives the granulation intensities.
	TextureStrength float64 `json:"texture_strength"`
	// BorderStrength in [0, 1] scales the main lineage's stroke alpha.
	BorderStrength float64 `json:"border_strength"`
	// OpacityBase in [0, 155] is the block's overall paint density.
	OpacityBase float64 `json:"opacity_base"`
}

// BuildLayers runs the layer schedule for one painted region and returns
// the ordered layer sequence plus the erosion passes. All layers precede
// all erosions in composite order.
//
// Four lineages evolve from the seed polygon at different rates: the main
// lineage (stroked), two slower secondaries, and a degrowing fourth that
// retracts to a finer inner shape. At the quarter points of the schedule
// the lineages take a real growth step; every iteration additionally emits
// a throwaway regrowth of each lineage so no two layers share an outline.
func BuildLayers(rs *rng.Stream, initial Polygon, p Params) ([]Layer, []Erosion) {
	bleed := rmap(p.BleedStrength, 0, 0.15, 0.6, 1, true)
	numLayers := int(24 * bleed)
	intensity := rmap(p.OpacityBase, 0, 155, 0, 20, true)
	texture := p.TextureStrength * 3

	// Fill alphas for the four lineages. The names describe the base
	// fraction of intensity each one gets before the texture boost.
	half := intensity / 5
	fifth := intensity/7 + texture*intensity/3
	quarter := intensity/4 + texture*intensity/3
	third := intensity/5 + texture*intensity/6

	pol := initial.Grow(rs, 1.0, false)
	pol2 := pol.Grow(rs, 1.0, false).Grow(rs, 0.9, false)
	pol3 := pol2.Grow(rs, 0.75, false)
	pol4 := initial.Grow(rs, 0.6, false)

	eraseStrength := 3.5*texture - rmap(intensity, 80, 120, 0.3, 1, true)

	layers := make([]Layer, 0, numLayers*4)
	erosions := make([]Erosion, 0, numLayers)

	for i := 0; i < numLayers; i++ {
		if i == numLayers/4 || i == numLayers/2 || i == 3*numLayers/4 {
			pol = pol.Grow(rs, 1.0, false)
			if bleed >= 0.99 || i == numLayers/2 {
				pol2 = pol2.Grow(rs, 0.75, false)
				pol3 = pol3.Grow(rs, 0.75, false)
				pol4 = pol4.Grow(rs, 0.1, true)
			}
		}

		// The ramp denominator stays 24 regardless of numLayers, so low
		// bleed values never reach the thinnest strokes.
		strokeWeight := rmap(float64(i), 0, 24, 6, 0.5, false)

		layers = append(layers,
			Layer{
				Polygon:      pol.Grow(rs, 1.0, false),
				Alpha:        half,
				HasStroke:    true,
				StrokeAlpha:  intensity * p.BorderStrength,
				StrokeWeight: strokeWeight,
			},
			Layer{Polygon: pol2.Grow(rs, 1.0, false), Alpha: fifth},
			Layer{Polygon: pol3.Grow(rs, 1.0, false), Alpha: quarter},
			Layer{Polygon: pol4.Grow(rs, 1.0, false), Alpha: third},
		)

		if eraseStrength > 0 {
			erosions = append(erosions, Erosion{
				Polygon:   pol,
				Count:     int(rs.Float64In(130, 200)),
				MinRadius: 0.025 * pol.Size,
				MaxRadius: 0.19 * pol.Size,
				Strength:  eraseStrength,
			})
		}
	}

	return layers, erosions
}
