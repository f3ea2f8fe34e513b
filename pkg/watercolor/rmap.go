package watercolor

// rmap linearly remaps value from the range [a, b] to [c, d]. With
// clampRange the result is bounded to [min(c,d), max(c,d)], which keeps
// every derived intensity finite no matter what value comes in.
func rmap(value, a, b, c, d float64, clampRange bool) float64 {
	out := c + (value-a)*(d-c)/(b-a)
	if !clampRange {
		return out
	}
	lo, hi := c, d
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(out, lo, hi)
}
