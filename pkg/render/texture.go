package render

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/hselder/aquarelle/pkg/rng"
	"github.com/hselder/aquarelle/pkg/watercolor"
)

// applyNoise perturbs saturation and value of every painted pixel in HSV
// space, the same channels the original's noise filter touched. amount is
// a percentage; saturation moves by up to 0.3x and value by up to 0.5x of
// it.
func applyNoise(img *image.NRGBA, rs *rng.Stream, amount float64) {
	satDist := amount * 0.3 / 100
	valDist := amount * 0.5 / 100

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[(y-bounds.Min.Y)*img.Stride:]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			o := (x - bounds.Min.X) * 4
			if row[o+3] == 0 {
				continue
			}
			c := colorful.Color{
				R: float64(row[o]) / 255,
				G: float64(row[o+1]) / 255,
				B: float64(row[o+2]) / 255,
			}
			h, s, v := c.Hsv()
			s = clamp01(s + (rs.Float64()*2-1)*satDist)
			v = clamp01(v + (rs.Float64()*2-1)*valDist)
			n := colorful.Hsv(h, s, v)
			row[o] = uint8(clamp01(n.R)*255 + 0.5)
			row[o+1] = uint8(clamp01(n.G)*255 + 0.5)
			row[o+2] = uint8(clamp01(n.B)*255 + 0.5)
		}
	}
}

// erode removes paper-grain circles of alpha around the erosion polygon's
// centroid. Circle centers fall within the polygon's original size radius
// so the grain stays anchored to the block even as its outline wanders.
func erode(img *image.NRGBA, rs *rng.Stream, e watercolor.Erosion) {
	strength := clamp01(e.Strength)
	// Each circle thins rather than deletes; repeated passes build up the
	// granulated look.
	factor := 1 - 0.2*strength

	for c := 0; c < e.Count; c++ {
		angle := rs.Float64() * 2 * math.Pi
		dist := rs.Float64() * e.Polygon.Size
		cx := e.Polygon.Center.X + math.Cos(angle)*dist
		cy := e.Polygon.Center.Y + math.Sin(angle)*dist
		r := rs.Float64In(e.MinRadius, e.MaxRadius)
		eraseCircle(img, cx, cy, r, factor)
	}
}

func eraseCircle(img *image.NRGBA, cx, cy, r, factor float64) {
	bounds := img.Bounds()
	x0 := int(math.Max(cx-r, float64(bounds.Min.X)))
	x1 := int(math.Min(cx+r, float64(bounds.Max.X-1)))
	y0 := int(math.Max(cy-r, float64(bounds.Min.Y)))
	y1 := int(math.Min(cy+r, float64(bounds.Max.Y-1)))
	r2 := r * r

	for y := y0; y <= y1; y++ {
		row := img.Pix[(y-bounds.Min.Y)*img.Stride:]
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy > r2 {
				continue
			}
			o := (x-bounds.Min.X)*4 + 3
			row[o] = uint8(float64(row[o]) * factor)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
