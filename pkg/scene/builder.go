package scene

import (
	"math"

	"github.com/hselder/aquarelle/pkg/rng"
)

// Default canvas geometry: 1200x600 at multiplier 1, always 2:1.
const (
	BaseWidth  = 1200
	BaseHeight = 600
)

// jitterAmp is the amplitude of per-block positional jitter. It is tuned
// to zero; the random draws still happen so the stream layout does not
// shift when the amplitude changes.
const jitterAmp = 0

// Build generates a Scene for the given seed and canvas size. It returns
// ErrInvalidDimension for non-positive dimensions before doing any work.
//
// Generation order is fixed: subdivision first, then per-block color
// assignment in subdivision order, then line selection. Every choice
// consumes the same seeded stream, so equal inputs yield byte-identical
// scenes.
func Build(seed int64, width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	rs := rng.New(seed)
	rects, potential := tile(rs, width, height)

	s := &Scene{Width: width, Height: height, Seed: seed}
	for _, r := range rects {
		cx := float64(r.X) + float64(r.W)/2
		cy := float64(r.Y) + float64(r.H)/2
		painterliness := math.Max(0, 1-Edgeness(cx, cy, float64(width), float64(height)))

		family := SampleFamily(rs, math.Sqrt(painterliness))
		if family == FamilyWhite {
			continue
		}
		color := PickColor(rs, family)

		touchesBorder := r.X <= 0 || r.Y <= 0 ||
			r.X+r.W >= width || r.Y+r.H >= height

		jitter := Jitter{
			X: (rs.Float64()*2 - 1) * painterliness * jitterAmp,
			Y: (rs.Float64()*2 - 1) * painterliness * jitterAmp,
			W: (rs.Float64()*4 - 2) * painterliness * jitterAmp,
			H: (rs.Float64()*4 - 2) * painterliness * jitterAmp,
		}

		s.Blocks = append(s.Blocks, Block{
			Rect:          r,
			ColorFamily:   family,
			Color:         color,
			Painterliness: painterliness,
			TouchesBorder: touchesBorder,
			Jitter:        jitter,
		})
	}

	s.Lines = SelectLines(rs, potential, width, height)
	return s, nil
}
