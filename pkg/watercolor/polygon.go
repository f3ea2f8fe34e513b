package watercolor

import (
	"math"

	"github.com/hselder/aquarelle/pkg/rng"
)

// Direction selects which side of each edge the bleed displaces toward.
type Direction string

const (
	// Out bleeds away from the centroid, the normal watercolor spread.
	Out Direction = "out"
	// In bleeds toward the centroid, used for retraction effects.
	In Direction = "in"
)

// Point is a position in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is one deformation state of a painted shape. Vertices are
// cyclic: edge i connects Verts[i] to Verts[(i+1)%n]. Mods holds the
// per-vertex bleed modifier and Dirs the per-edge outward flag; both stay
// parallel to Verts through every transformation.
//
// Center and Size are fixed at construction from the seed vertices and
// never recomputed, so erosion stays anchored to the original shape even
// as the outline wanders.
//
// A Polygon is immutable; Grow returns a new value.
type Polygon struct {
	Verts []Point   `json:"verts"`
	Mods  []float64 `json:"mods"`
	Dirs  []bool    `json:"dirs"`

	Center Point     `json:"center"`
	Size   float64   `json:"size"`
	Bleed  float64   `json:"bleed"`
	Dir    Direction `json:"dir"`
}

// New builds the initial polygon for a painted region.
//
// Each vertex gets a bleed modifier of uniform(0.8,1.2)*bleed; a random
// leading run of up to 40% of the vertices ("fluid" vertices, where the
// paper is wetter) has the modifier doubled and clamped to [0, 0.9]. The
// vertex and modifier arrays are then rotated by a random offset so the
// seam vertex is not always the same corner, and every edge records which
// perpendicular side faces away from the centroid.
func New(rs *rng.Stream, verts []Point, bleed float64, dir Direction) Polygon {
	n := len(verts)
	center := centroid(verts)

	size := 0.0
	for _, v := range verts {
		if d := dist(center, v); d > size {
			size = d
		}
	}

	mods := make([]float64, n)
	fluid := int(float64(n) * rs.Float64In(0, 0.4))
	for i := range mods {
		mods[i] = rs.Float64In(0.8, 1.2) * bleed
		if i < fluid {
			mods[i] = clamp(mods[i]*2, 0, 0.9)
		}
	}

	offset := rs.IntN(n)
	rv := make([]Point, n)
	rm := make([]float64, n)
	for i := 0; i < n; i++ {
		rv[i] = verts[(i+offset)%n]
		rm[i] = mods[(i+offset)%n]
	}

	p := Polygon{
		Verts:  rv,
		Mods:   rm,
		Center: center,
		Size:   size,
		Bleed:  bleed,
		Dir:    dir,
	}
	p.Dirs = p.edgeDirections()
	return p
}

// edgeDirections computes, per edge, whether the outward perpendicular is
// the +90 rotation of the edge vector. The sign of the cross product
// between the edge vector and the vector from the edge start to the
// centroid tells which side the centroid is on.
func (p Polygon) edgeDirections() []bool {
	n := len(p.Verts)
	dirs := make([]bool, n)
	for i := 0; i < n; i++ {
		a := p.Verts[i]
		b := p.Verts[(i+1)%n]
		ex, ey := b.X-a.X, b.Y-a.Y
		cx, cy := p.Center.X-a.X, p.Center.Y-a.Y
		dirs[i] = ex*cy-ey*cx > 0
	}
	return dirs
}

// Grow returns the next deformation state. Every edge gains a midpoint
// vertex displaced perpendicular to the edge, so the vertex count exactly
// doubles (after any trimming). growthFactor below 1 trims vertices first
// and damps the displacement schedule; degrow inverts and halves the
// displacement, pulling the shape back in.
//
// Polygons with fewer than 3 vertices are returned unchanged: aggressive
// trimming can degenerate a shape, and a degenerate shape simply stops
// evolving rather than erroring.
func (p Polygon) Grow(rs *rng.Stream, growthFactor float64, degrow bool) Polygon {
	if len(p.Verts) < 3 {
		return p
	}

	verts := p.Verts
	mods := p.Mods
	dirs := p.Dirs

	// Trim a centered run of vertices when shrinking a large polygon, so
	// partial growth does not explode the vertex count.
	if n := len(verts); n > 10 && growthFactor >= 0.2 {
		remove := int(math.Round((1 - growthFactor) * float64(n)))
		if remove > 0 {
			start := n/2 - remove/2
			if start < 0 {
				start = 0
			}
			end := start + remove
			if end > n {
				end = n
			}
			verts = append(append([]Point{}, verts[:start]...), verts[end:]...)
			mods = append(append([]float64{}, mods[:start]...), mods[end:]...)
			dirs = append(append([]bool{}, dirs[:start]...), dirs[end:]...)
		}
	}

	n := len(verts)
	if n < 3 {
		return Polygon{Verts: verts, Mods: mods, Dirs: dirs,
			Center: p.Center, Size: p.Size, Bleed: p.Bleed, Dir: p.Dir}
	}

	nv := make([]Point, 0, 2*n)
	nm := make([]float64, 0, 2*n)
	nd := make([]bool, 0, 2*n)

	for i := 0; i < n; i++ {
		cur := verts[i]
		next := verts[(i+1)%n]

		mod := mods[i]
		// The 0.1 factor is the texture pass: it overrides the stored
		// modifier with a fixed small displacement.
		if growthFactor == 0.1 {
			if p.Bleed <= 0.1 {
				mod = 0.25
			} else {
				mod = 0.75
			}
		}
		if degrow {
			mod *= -0.5
		}

		nv = append(nv, cur)
		nm = append(nm, jitterMod(rs, mod))
		nd = append(nd, dirs[i])

		ex, ey := next.X-cur.X, next.Y-cur.Y

		t := clamp(rs.Gaussian(0.5, 0.2), 0.1, 0.9)
		mid := Point{X: cur.X + ex*t, Y: cur.Y + ey*t}

		angle := math.Pi/2 + rs.Gaussian(0, 0.4)*(math.Pi/4)
		outward := dirs[i]
		if p.Dir == In {
			outward = !outward
		}
		if !outward {
			angle = -angle
		}

		mag := rs.Gaussian(0.5, 0.2) * rs.Float64In(0.6, 1.4) * mod
		sin, cos := math.Sin(angle), math.Cos(angle)
		nv = append(nv, Point{
			X: mid.X + (ex*cos-ey*sin)*mag,
			Y: mid.Y + (ex*sin+ey*cos)*mag,
		})
		nm = append(nm, jitterMod(rs, mod))
		nd = append(nd, dirs[i])
	}

	return Polygon{
		Verts:  nv,
		Mods:   nm,
		Dirs:   nd,
		Center: p.Center,
		Size:   p.Size,
		Bleed:  p.Bleed,
		Dir:    p.Dir,
	}
}

// jitterMod perturbs a bleed modifier slightly so successive layers never
// share exact displacement scales.
func jitterMod(rs *rng.Stream, mod float64) float64 {
	return mod + (rs.Gaussian(0.5, 0.1)-0.5)*0.1
}

func centroid(verts []Point) Point {
	var c Point
	for _, v := range verts {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(verts))
	return Point{X: c.X / n, Y: c.Y / n}
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
