// Package clock supplies the current time and randomness to the engine so
// that every computation can be replayed in tests.
package clock

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// RNG is a source of pseudo-random integers.
type RNG interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// System is the real clock in the local time zone.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock frozen at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now implements Clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seeded returns a deterministic RNG for the given seed.
func Seeded(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// NewRNG returns an RNG seeded from crypto/rand, falling back to the
// current time when the system entropy source is unavailable.
func NewRNG() RNG {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return Seeded(seed)
}

// Sequence replays a fixed list of values, cycling when exhausted. Each
// value is reduced modulo n so it can be reused across different ranges.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence returns a Sequence over values. An empty sequence always yields 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn implements RNG.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("clock: Intn called with non-positive n")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
