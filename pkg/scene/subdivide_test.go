package scene

import (
	"testing"

	"github.com/hselder/aquarelle/pkg/rng"
)

func TestSubdivideTilesExactly(t *testing.T) {
	for _, seed := range []int64{1, 42, 7777} {
		rs := rng.New(seed)
		var rects []Rect
		var lines []PotentialLine
		region := Rect{X: 0, Y: 0, W: 240, H: 240}
		Subdivide(rs, region, &rects, &lines)

		if len(rects) == 0 {
			t.Fatalf("seed %d: no terminal rects", seed)
		}

		// Every cell of the region must be covered exactly once.
		grid := make([]int, region.W*region.H)
		for _, r := range rects {
			if r.W <= 0 || r.H <= 0 {
				t.Fatalf("seed %d: degenerate rect %+v", seed, r)
			}
			for y := r.Y; y < r.Y+r.H; y++ {
				for x := r.X; x < r.X+r.W; x++ {
					grid[y*region.W+x]++
				}
			}
		}
		for i, c := range grid {
			if c != 1 {
				t.Fatalf("seed %d: cell %d covered %d times", seed, i, c)
			}
		}
	}
}

func TestSubdivideTerminates(t *testing.T) {
	// Termination is structural: each split strictly shrinks minSide until
	// the probability hits zero. A huge canvas must still come back.
	rs := rng.New(42)
	var rects []Rect
	var lines []PotentialLine
	Subdivide(rs, Rect{W: 100000, H: 100000}, &rects, &lines)

	for _, r := range rects {
		minSide := r.W
		if r.H < minSide {
			minSide = r.H
		}
		if minSide < minSplitSide/2 {
			t.Fatalf("rect %+v shrunk past the split floor", r)
		}
	}
	// Lines are recorded in vertical+horizontal pairs, one pair per split.
	if len(lines)%2 != 0 {
		t.Fatalf("split lines = %d, want an even count", len(lines))
	}
}

func TestSubdivideSmallRegionNeverSplits(t *testing.T) {
	rs := rng.New(42)
	var rects []Rect
	var lines []PotentialLine
	Subdivide(rs, Rect{W: 20, H: 300}, &rects, &lines)

	if len(rects) != 1 || len(lines) != 0 {
		t.Fatalf("minSide at the floor must be terminal, got %d rects %d lines", len(rects), len(lines))
	}
}

func TestSubdivideLinesSpanFullRegion(t *testing.T) {
	rs := rng.New(3)
	var rects []Rect
	var lines []PotentialLine
	region := Rect{X: 10, Y: 20, W: 400, H: 400}
	Subdivide(rs, region, &rects, &lines)

	// Lines come in vertical/horizontal pairs spanning their split region.
	for _, l := range lines {
		vertical := l.X1 == l.X2
		horizontal := l.Y1 == l.Y2
		if vertical == horizontal {
			t.Fatalf("line %+v is neither axis-aligned span", l)
		}
	}
}

func TestTileWideCanvas(t *testing.T) {
	rs := rng.New(42)
	rects, _ := tile(rs, 1200, 600)

	var area int
	for _, r := range rects {
		area += r.W * r.H
		if r.X < 0 || r.Y < 0 || r.X+r.W > 1200 || r.Y+r.H > 600 {
			t.Fatalf("rect %+v escapes the canvas", r)
		}
	}
	// Two 600x600 regions tile the 1200x600 canvas completely.
	if area != 1200*600 {
		t.Errorf("tiled area = %d, want %d", area, 1200*600)
	}
}

func TestTileSquareCanvas(t *testing.T) {
	rs := rng.New(42)
	rects, _ := tile(rs, 600, 600)
	var area int
	for _, r := range rects {
		area += r.W * r.H
	}
	if area != 600*600 {
		t.Errorf("tiled area = %d, want %d", area, 600*600)
	}
}
