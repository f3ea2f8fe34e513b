package scene

import "github.com/hselder/aquarelle/pkg/rng"

// SelectLines filters the potential dividers into the drawn set. A line's
// fate depends on its midpoint's edgeness: selection probability is
// 0.05 + edgeness^2 * 0.9, so border lines almost always survive and
// central lines rarely do. Selected lines near the center tend to get
// their endpoints pulled inward and their stroke slightly thickened,
// which is what makes the middle of the canvas read as painterly rather
// than gridded.
//
// Each endpoint's shrink decision and magnitude are independent draws,
// and the magnitude is only drawn when the decision passes. That draw
// order is observable through the shared stream and must not change.
func SelectLines(rs *rng.Stream, potential []PotentialLine, width, height int) []Line {
	var lines []Line
	for _, pl := range potential {
		midX := float64(pl.X1+pl.X2) / 2
		midY := float64(pl.Y1+pl.Y2) / 2
		edgeness := Edgeness(midX, midY, float64(width), float64(height))

		if rs.Float64() >= 0.05+edgeness*edgeness*0.9 {
			continue
		}

		lp := 1 - edgeness
		shrinkProb := lp * 0.5
		shrinkAmt := lp * 0.4

		var shrinkStart, shrinkEnd float64
		if rs.Float64() < shrinkProb {
			shrinkStart = rs.Float64() * shrinkAmt
		}
		if rs.Float64() < shrinkProb {
			shrinkEnd = rs.Float64() * shrinkAmt
		}

		dx := float64(pl.X2 - pl.X1)
		dy := float64(pl.Y2 - pl.Y1)

		lines = append(lines, Line{
			X1:        float64(pl.X1) + dx*shrinkStart,
			Y1:        float64(pl.Y1) + dy*shrinkStart,
			X2:        float64(pl.X2) - dx*shrinkEnd,
			Y2:        float64(pl.Y2) - dy*shrinkEnd,
			Thickness: 0.6 + rs.Float64()*0.4 + lp*rs.Float64()*0.4,
		})
	}
	return lines
}
