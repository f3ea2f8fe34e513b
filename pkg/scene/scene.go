package scene

import (
	"errors"
	"math"

	"github.com/hselder/aquarelle/pkg/rng"
	"github.com/hselder/aquarelle/pkg/watercolor"
)

// ErrInvalidDimension is returned for non-positive canvas dimensions,
// before any subdivision work happens.
var ErrInvalidDimension = errors.New("canvas dimensions must be positive")

// RGB is a literal color, components 0-255.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Rect is an axis-aligned region in canvas units.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// PotentialLine is a full-length candidate divider recorded at a split
// point. Candidates are never shortened; trimming happens at selection.
type PotentialLine struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Line is a selected, possibly endpoint-trimmed divider. Thickness is a
// multiplier applied to the renderer's base stroke width.
type Line struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Thickness float64 `json:"thickness"`
}

// Jitter is a per-block positional perturbation. The amplitude is
// currently zero (see builder.go) but the fields are part of the scene
// shape so exports stay stable if it is tuned back up.
type Jitter struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Block is one painted terminal region of the subdivision. Blocks are
// immutable once built. White-family regions never become Blocks; they
// read as unpainted canvas.
type Block struct {
	Rect
	ColorFamily   string  `json:"color_family"`
	Color         RGB     `json:"color"`
	Painterliness float64 `json:"painterliness"`
	TouchesBorder bool    `json:"touches_border"`
	Jitter        Jitter  `json:"jitter"`
}

// Scene is the full painting description: canvas size, painted blocks in
// subdivision order, and the selected grid lines. It is the only artifact
// the core hands to a renderer.
type Scene struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Seed   int64   `json:"seed"`
	Blocks []Block `json:"blocks"`
	Lines  []Line  `json:"lines"`
}

// WatercolorParams derives the bleed parameters for a block from its
// painterliness. The mapping follows the original plugin's opacity and
// noise schedule: opacity 75% at the border falling to 55% at the center,
// texture rising toward the center.
func (b Block) WatercolorParams() watercolor.Params {
	p := b.Painterliness
	return watercolor.Params{
		BleedStrength:   0.15 * p,
		TextureStrength: 0.4 + 0.4*p,
		BorderStrength:  1 - 0.5*p,
		OpacityBase:     155 * (0.75 - 0.20*p),
	}
}

// SeedPolygon builds the initial quadrilateral for a block's watercolor
// simulation, clockwise from the top-left corner.
func (b Block) SeedPolygon(rs *rng.Stream) watercolor.Polygon {
	x, y := float64(b.X), float64(b.Y)
	w, h := float64(b.W), float64(b.H)
	return watercolor.New(rs, []watercolor.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}, 0.15*b.Painterliness, watercolor.Out)
}

// Layers generates the watercolor layer sequence for block i on demand.
// Border blocks are rendered as solid fills and return nil.
//
// Each block draws from a stream forked from (scene seed, block index),
// never from the generation stream, so layers regenerate identically from
// an imported Scene and blocks can be computed in parallel and merged in
// index order.
func (s *Scene) Layers(i int) ([]watercolor.Layer, []watercolor.Erosion) {
	b := s.Blocks[i]
	if b.TouchesBorder {
		return nil, nil
	}
	rs := rng.New(s.Seed).Fork("watercolor", i)
	return watercolor.BuildLayers(rs, b.SeedPolygon(rs), b.WatercolorParams())
}

// Edgeness is the normalized Chebyshev distance from the canvas center:
// 0 at the center, 1 on the outer boundary.
func Edgeness(x, y, w, h float64) float64 {
	cx, cy := w/2, h/2
	return math.Max(math.Abs(x-cx)/cx, math.Abs(y-cy)/cy)
}
