package scene

import "github.com/hselder/aquarelle/pkg/rng"

// Split probability is 1 above maxSplitSide, 0 below minSplitSide, and
// linear in between. These are absolute canvas units, not fractions of
// the canvas, so larger canvases subdivide more deeply.
const (
	minSplitSide = 20
	maxSplitSide = 200
)

// Subdivide recursively partitions r into terminal block rectangles,
// recording every internal split as two full-span potential lines. The
// results are appended to rects and lines in recursion order: top-left,
// top-right, bottom-left, bottom-right.
//
// The split test draws 2*uniform(0,1) against the probability, which
// halves the effective split chance below the full-probability threshold.
// That skew is part of the observed look and is kept as-is.
func Subdivide(rs *rng.Stream, r Rect, rects *[]Rect, lines *[]PotentialLine) {
	minSide := r.W
	if r.H < minSide {
		minSide = r.H
	}

	var prob float64
	switch {
	case minSide >= maxSplitSide:
		prob = 1.0
	case minSide <= minSplitSide:
		prob = 0.0
	default:
		prob = float64(minSide-minSplitSide) / float64(maxSplitSide-minSplitSide)
	}

	if 2*rs.Float64() < prob {
		halfW := r.W / 2
		halfH := r.H / 2
		midX := r.X + halfW
		midY := r.Y + halfH
		remW := r.W - halfW
		remH := r.H - halfH

		*lines = append(*lines,
			PotentialLine{X1: midX, Y1: r.Y, X2: midX, Y2: r.Y + r.H},
			PotentialLine{X1: r.X, Y1: midY, X2: r.X + r.W, Y2: midY},
		)

		Subdivide(rs, Rect{X: r.X, Y: r.Y, W: halfW, H: halfH}, rects, lines)
		Subdivide(rs, Rect{X: midX, Y: r.Y, W: remW, H: halfH}, rects, lines)
		Subdivide(rs, Rect{X: r.X, Y: midY, W: halfW, H: remH}, rects, lines)
		Subdivide(rs, Rect{X: midX, Y: midY, W: remW, H: remH}, rects, lines)
	} else {
		*rects = append(*rects, r)
	}
}

// tile runs the base subdivision pattern for a width x height canvas: a
// square region of side height packed left, then, for wide canvases, a
// second height-matched region immediately to its right. This is a fixed
// tiling rule for the canonical 2:1 canvas, not a general layout for
// arbitrary aspect ratios.
func tile(rs *rng.Stream, width, height int) ([]Rect, []PotentialLine) {
	var rects []Rect
	var lines []PotentialLine

	Subdivide(rs, Rect{X: 0, Y: 0, W: height, H: height}, &rects, &lines)
	if width > height {
		w := width - height
		if height < w {
			w = height
		}
		Subdivide(rs, Rect{X: height, Y: 0, W: w, H: height}, &rects, &lines)
	}
	return rects, lines
}
