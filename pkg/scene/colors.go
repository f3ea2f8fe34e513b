package scene

import "github.com/hselder/aquarelle/pkg/rng"

// Color family names. FamilyWhite is the reserved "no paint" value: a
// region sampled white never becomes a Block.
const (
	FamilyWhite     = "white"
	FamilyRed       = "red"
	FamilyYellow    = "yellow"
	FamilyBlue      = "blue"
	FamilyBlack     = "black"
	FamilyLightBlue = "lightBlue"
	FamilyGreen     = "green"
	FamilyOrange    = "orange"
)

// Families is the fixed enumeration order used by weighted sampling.
// Reordering changes which family a given draw lands on.
var Families = []string{
	FamilyWhite, FamilyRed, FamilyYellow, FamilyBlue,
	FamilyBlack, FamilyLightBlue, FamilyGreen, FamilyOrange,
}

// Palettes holds the literal colors of each family.
var Palettes = map[string][]RGB{
	FamilyRed:       {{227, 28, 37}, {255, 23, 68}, {255, 0, 51}},
	FamilyYellow:    {{255, 235, 0}, {255, 214, 0}, {255, 255, 0}},
	FamilyBlue:      {{0, 85, 255}, {41, 121, 255}, {0, 102, 255}},
	FamilyBlack:     {{26, 26, 26}, {33, 33, 33}},
	FamilyLightBlue: {{64, 196, 255}, {0, 176, 255}, {0, 229, 255}},
	FamilyWhite:     {{255, 255, 255}, {250, 250, 250}, {245, 245, 245}},
	FamilyGreen:     {{0, 200, 83}, {0, 230, 118}, {0, 255, 85}},
	FamilyOrange:    {{255, 109, 0}, {255, 145, 0}, {255, 85, 0}},
}

// Background is the unpainted canvas color (#f8f5ef).
var Background = RGB{248, 245, 239}

// Family weights at painterliness 0 (canvas edge) and 1 (canvas center),
// indexed like Families. Edges are mostly white with primaries; the
// center drops white and black entirely and admits green and orange.
var (
	weightsAtEdge   = []float64{10, 3, 3, 3, 2, 2, 0, 0}
	weightsAtCenter = []float64{0, 3, 3, 3, 0, 2, 3, 3}
)

// SampleFamily draws a color family with weights linearly interpolated
// between the edge and center tables by painterliness. The walk subtracts
// each family's weight from a scaled uniform draw until it crosses zero;
// the white fallback covers floating-point residue and is unreachable in
// exact arithmetic.
func SampleFamily(rs *rng.Stream, painterliness float64) string {
	weights := make([]float64, len(Families))
	total := 0.0
	for i := range Families {
		weights[i] = weightsAtEdge[i]*(1-painterliness) + weightsAtCenter[i]*painterliness
		total += weights[i]
	}
	r := rs.Float64() * total
	for i, name := range Families {
		r -= weights[i]
		if r <= 0 {
			return name
		}
	}
	return FamilyWhite
}

// PickColor draws a uniformly random literal color from the family's
// palette.
func PickColor(rs *rng.Stream, family string) RGB {
	palette := Palettes[family]
	return palette[int(rs.Float64()*float64(len(palette)))]
}
