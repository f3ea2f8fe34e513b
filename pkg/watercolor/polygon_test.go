package watercolor

import (
	"reflect"
	"testing"

	"github.com/hselder/aquarelle/pkg/rng"
)

func quad() []Point {
	return []Point{{100, 100}, {200, 100}, {200, 180}, {100, 180}}
}

func TestNewPolygon(t *testing.T) {
	p := New(rng.New(42), quad(), 0.1, Out)

	if got := len(p.Verts); got != 4 {
		t.Fatalf("vertex count = %d, want 4", got)
	}
	if len(p.Mods) != len(p.Verts) || len(p.Dirs) != len(p.Verts) {
		t.Fatalf("parallel arrays out of sync: verts=%d mods=%d dirs=%d",
			len(p.Verts), len(p.Mods), len(p.Dirs))
	}
	if p.Center.X != 150 || p.Center.Y != 140 {
		t.Errorf("center = %v, want {150 140}", p.Center)
	}
	// Max centroid-to-vertex distance for a 100x80 rect is hypot(50,40).
	if p.Size < 64 || p.Size > 64.1 {
		t.Errorf("size = %v, want ~64.03", p.Size)
	}
	for i, m := range p.Mods {
		if m < 0 || m > 0.9 {
			t.Errorf("mod[%d] = %v outside [0, 0.9]", i, m)
		}
	}
}

func TestGrowDoublesVertices(t *testing.T) {
	rs := rng.New(42)
	p := New(rs, quad(), 0.1, Out)

	g := p.Grow(rs, 1.0, false)
	if got, want := len(g.Verts), 8; got != want {
		t.Fatalf("vertex count after grow = %d, want %d", got, want)
	}
	if len(g.Mods) != len(g.Verts) || len(g.Dirs) != len(g.Verts) {
		t.Fatalf("parallel arrays out of sync after grow")
	}

	g2 := g.Grow(rs, 1.0, false)
	if got, want := len(g2.Verts), 16; got != want {
		t.Fatalf("vertex count after second grow = %d, want %d", got, want)
	}
}

func TestGrowDoesNotMutate(t *testing.T) {
	rs := rng.New(42)
	p := New(rs, quad(), 0.1, Out)

	verts := append([]Point{}, p.Verts...)
	mods := append([]float64{}, p.Mods...)
	_ = p.Grow(rs, 1.0, false)

	if !reflect.DeepEqual(verts, p.Verts) {
		t.Error("Grow mutated the receiver's vertices")
	}
	if !reflect.DeepEqual(mods, p.Mods) {
		t.Error("Grow mutated the receiver's modifiers")
	}
}

func TestGrowPreservesCenterAndSize(t *testing.T) {
	rs := rng.New(1)
	p := New(rs, quad(), 0.15, Out)
	g := p.Grow(rs, 1.0, false).Grow(rs, 1.0, false).Grow(rs, 0.75, false)
	if g.Center != p.Center {
		t.Errorf("center drifted: %v -> %v", p.Center, g.Center)
	}
	if g.Size != p.Size {
		t.Errorf("size drifted: %v -> %v", p.Size, g.Size)
	}
}

func TestGrowTrimsLargePolygons(t *testing.T) {
	rs := rng.New(42)
	p := New(rs, quad(), 0.1, Out)
	// 4 -> 8 -> 16 vertices; the next partial grow trims first.
	p = p.Grow(rs, 1.0, false).Grow(rs, 1.0, false)

	g := p.Grow(rs, 0.75, false)
	// round((1-0.75)*16) = 4 removed, then the remaining 12 double.
	if got, want := len(g.Verts), 24; got != want {
		t.Fatalf("vertex count after trimmed grow = %d, want %d", got, want)
	}
	if len(g.Mods) != len(g.Verts) || len(g.Dirs) != len(g.Verts) {
		t.Fatal("parallel arrays out of sync after trim")
	}
}

func TestGrowSkipsTrimBelowThreshold(t *testing.T) {
	rs := rng.New(42)
	p := New(rs, quad(), 0.1, Out)
	p = p.Grow(rs, 1.0, false) // 8 vertices, under the trim minimum

	g := p.Grow(rs, 0.5, false)
	if got, want := len(g.Verts), 16; got != want {
		t.Fatalf("vertex count = %d, want %d (no trim at n<=10)", got, want)
	}
}

func TestGrowDegenerateUnchanged(t *testing.T) {
	rs := rng.New(42)
	p := Polygon{Verts: []Point{{0, 0}, {1, 1}}, Mods: []float64{0.1, 0.1}, Dirs: []bool{true, true}}
	g := p.Grow(rs, 1.0, false)
	if !reflect.DeepEqual(g, p) {
		t.Error("degenerate polygon should pass through unchanged")
	}
}

func TestEdgeDirectionsConvexOutward(t *testing.T) {
	// Clockwise square in screen coordinates (y down): centroid is to the
	// left of every edge, so all cross products share a sign.
	p := New(rng.New(3), quad(), 0.1, Out)
	first := p.Dirs[0]
	for i, d := range p.Dirs {
		if d != first {
			t.Errorf("dir[%d] = %v, want uniform %v for a convex quad", i, d, first)
		}
	}
}

func TestDeterministicGrowth(t *testing.T) {
	build := func() Polygon {
		rs := rng.New(99)
		p := New(rs, quad(), 0.12, Out)
		return p.Grow(rs, 1.0, false).Grow(rs, 0.9, false)
	}
	if !reflect.DeepEqual(build(), build()) {
		t.Error("same seed produced different growth")
	}
}
