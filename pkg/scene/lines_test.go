package scene

import (
	"testing"

	"github.com/hselder/aquarelle/pkg/rng"
)

// repeatLine builds n copies of the same potential line so selection
// frequency can be measured on one stream.
func repeatLine(pl PotentialLine, n int) []PotentialLine {
	out := make([]PotentialLine, n)
	for i := range out {
		out[i] = pl
	}
	return out
}

func TestSelectLinesCenterProbability(t *testing.T) {
	// A vertical line through the canvas center has edgeness 0 at its
	// midpoint: selection probability exactly 0.05.
	const n = 100000
	rs := rng.New(42)
	center := PotentialLine{X1: 600, Y1: 0, X2: 600, Y2: 600}
	got := len(SelectLines(rs, repeatLine(center, n), 1200, 600))

	freq := float64(got) / n
	if freq < 0.04 || freq > 0.06 {
		t.Errorf("center line selection frequency = %.4f, want ~0.05", freq)
	}
}

func TestSelectLinesEdgeProbability(t *testing.T) {
	// A line hugging the left border has edgeness ~1: probability >= 0.95.
	const n = 100000
	rs := rng.New(42)
	edge := PotentialLine{X1: 0, Y1: 0, X2: 0, Y2: 600}
	got := len(SelectLines(rs, repeatLine(edge, n), 1200, 600))

	freq := float64(got) / n
	if freq < 0.94 {
		t.Errorf("edge line selection frequency = %.4f, want >= 0.95", freq)
	}
}

func TestSelectLinesEdgeLinesNeverShortened(t *testing.T) {
	// Edgeness 1 means line painterliness 0: no shrink, ever.
	rs := rng.New(42)
	edge := PotentialLine{X1: 0, Y1: 0, X2: 0, Y2: 600}
	for _, l := range SelectLines(rs, repeatLine(edge, 1000), 1200, 600) {
		if l.Y1 != 0 || l.Y2 != 600 {
			t.Fatalf("edge line was shortened: %+v", l)
		}
	}
}

func TestSelectLinesThicknessRange(t *testing.T) {
	rs := rng.New(42)
	potential := []PotentialLine{
		{X1: 600, Y1: 0, X2: 600, Y2: 600},
		{X1: 0, Y1: 0, X2: 0, Y2: 600},
		{X1: 300, Y1: 0, X2: 300, Y2: 600},
		{X1: 0, Y1: 300, X2: 1200, Y2: 300},
	}
	var all []Line
	for i := 0; i < 500; i++ {
		all = append(all, SelectLines(rs, potential, 1200, 600)...)
	}
	if len(all) == 0 {
		t.Fatal("no lines selected")
	}
	for _, l := range all {
		if l.Thickness < 0.6 || l.Thickness > 1.4 {
			t.Fatalf("thickness %v outside [0.6, 1.4]", l.Thickness)
		}
	}
}

func TestSelectLinesShrinkStaysInside(t *testing.T) {
	// Shrinking only ever pulls endpoints inward along the line.
	rs := rng.New(7)
	pl := PotentialLine{X1: 500, Y1: 100, X2: 500, Y2: 500}
	for _, l := range SelectLines(rs, repeatLine(pl, 5000), 1200, 600) {
		if l.Y1 < 100 || l.Y2 > 500 || l.Y1 >= l.Y2 {
			t.Fatalf("shrunk line escaped its span: %+v", l)
		}
	}
}
