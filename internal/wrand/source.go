package wrand

import (
	"math/rand"
	"sync"
	"time"
)

// LockedSource is a seeded math/rand source safe for concurrent use.
type LockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSource returns a source seeded with seed. Zero seed means time-seeded.
func NewSource(seed int64) *LockedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedSource{
		r: rand.New(rand.NewSource(seed)),
	}
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Fixed is a source that always returns the same draw.
type Fixed float64

func (f Fixed) Float64() float64 {
	return float64(f)
}

// SequenceSource replays draws cyclically. Not safe for concurrent use.
type SequenceSource struct {
	vals []float64
	pos  int
}

func Sequence(vals ...float64) *SequenceSource {
	return &SequenceSource{vals: vals}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}
