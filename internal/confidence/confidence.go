// Package confidence produces the simulated confidence scores attached to
// AI-assisted verifications of vehicles and land stands.
package confidence

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Floor and Spread bound every score to [Floor, Floor+Spread).
const (
	Floor  = 0.7
	Spread = 0.3
)

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// Score draws a confidence value from src.
func Score(src Source) float64 {
	return Floor + src.Float64()*Spread
}

// Percent renders a confidence value as a percentage with two decimals.
func Percent(c float64) string {
	return fmt.Sprintf("%.2f", c*100)
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source safe for concurrent use. A zero seed draws
// a random one so each process sees a different sequence.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Fixed always returns its own value. Useful for deterministic responses.
type Fixed float64

func (f Fixed) Float64() float64 { return float64(f) }
