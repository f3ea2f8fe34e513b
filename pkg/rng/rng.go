package rng

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
)

// Stream is a seeded pseudo-random source providing uniform floats,
// uniform integers, and Gaussian-distributed floats.
//
// The zero value is not usable; construct with New.
type Stream struct {
	seed int64
	src  *rand.Rand

	// Box-Muller produces values in pairs; the unused one is cached.
	hasSpare bool
	spare    float64
}

// New creates a stream seeded with seed.
func New(seed int64) *Stream {
	return &Stream{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the stream was created with. Forked children
// report their own derived seed, not the master's.
func (s *Stream) Seed() int64 { return s.seed }

// Float64 returns a uniform value in [0, 1).
func (s *Stream) Float64() float64 { return s.src.Float64() }

// Float64In returns a uniform value in [lo, hi).
func (s *Stream) Float64In(lo, hi float64) float64 {
	return lo + s.src.Float64()*(hi-lo)
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0, matching
// math/rand semantics.
func (s *Stream) IntN(n int) int { return s.src.Intn(n) }

// Gaussian returns a normally distributed value with the given mean and
// standard deviation, generated via the Box-Muller transform. The
// transform consumes two uniform draws and yields two normals; the second
// is cached and returned by the next call without consuming draws.
func (s *Stream) Gaussian(mean, stddev float64) float64 {
	if s.hasSpare {
		s.hasSpare = false
		return mean + stddev*s.spare
	}
	var u1 float64
	for u1 == 0 {
		u1 = s.src.Float64()
	}
	u2 := s.src.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	s.spare = r * math.Sin(2*math.Pi*u2)
	s.hasSpare = true
	return mean + stddev*r*math.Cos(2*math.Pi*u2)
}

// Fork derives an independent stream from this stream's seed, a label,
// and an index. Forking does not consume draws from the parent, and the
// same (seed, label, index) triple always yields the same child, which is
// what makes per-block layer generation reproducible from an imported
// scene (the generation stream's position is long gone by then).
func (s *Stream) Fork(label string, index int) *Stream {
	h := fnv.New64a()
	h.Write([]byte(label))
	h.Write([]byte(strconv.Itoa(index)))
	h.Write([]byte(strconv.FormatInt(s.seed, 10)))
	return New(int64(h.Sum64()))
}
