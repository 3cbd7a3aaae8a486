package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	randv2 "math/rand/v2"
	"sync"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// Clamp bounds v to [lo, hi]. NaN is mapped to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IntBetween maps a uniform draw u in [0,1) to an integer in [min, max]
func IntBetween(u float64, min, max int) int {
	if min >= max {
		return min
	}
	n := min + int(math.Floor(u*float64(max-min+1)))
	if n > max {
		return max
	}
	return n
}

// RandomSource produces uniform floats in [0,1)
type RandomSource interface {
	Float64() float64
}

// SourceFunc adapts a plain function to RandomSource
type SourceFunc func() float64

// Float64 implements RandomSource
func (f SourceFunc) Float64() float64 {
	return f()
}

// MathSource returns the default game source backed by math/rand
func MathSource() RandomSource {
	return SourceFunc(RandomFloat)
}

type cryptoSource struct{}

// CryptoSource returns a source backed by crypto/rand
func CryptoSource() RandomSource {
	return cryptoSource{}
}

func (cryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return RandomFloat()
	}
	// 53 bits of mantissa
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

type seededSource struct {
	mu  sync.Mutex
	rng *randv2.Rand
}

// SeededSource returns a deterministic PCG source for simulations and tests
func SeededSource(seed uint64) RandomSource {
	return &seededSource{rng: randv2.New(randv2.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// FixedSource replays the given draws in order and then repeats the last one
func FixedSource(draws ...float64) RandomSource {
	var (
		mu  sync.Mutex
		idx int
	)
	return SourceFunc(func() float64 {
		mu.Lock()
		defer mu.Unlock()
		if len(draws) == 0 {
			return 0
		}
		v := draws[idx]
		if idx < len(draws)-1 {
			idx++
		}
		return v
	})
}
