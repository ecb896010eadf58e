// Package shuffle holds lines in insertion order and permutes them uniformly
// at random. The generator behind a run is a single RandomState instance,
// lazily seeded on first draw and guarded by a mutex so that concurrent
// callers cannot corrupt its state.
package shuffle

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// RandomState is a lazily initialized pseudo-random generator. The zero
// value is not usable; construct with NewRandomState or NewSeededRandomState.
type RandomState struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed func() int64
}

// NewRandomState returns a RandomState that seeds itself from a
// nondeterministic source on first use.
func NewRandomState() *RandomState {
	return &RandomState{seed: entropySeed}
}

// NewSeededRandomState returns a RandomState producing a reproducible draw
// sequence for the given seed.
func NewSeededRandomState(seed int64) *RandomState {
	return &RandomState{seed: func() int64 { return seed }}
}

// Intn returns a uniform value in [0, bound). bound must be positive.
func (r *RandomState) Intn(bound int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(r.seed()))
	}
	return r.rng.Intn(bound)
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Sequence is an insertion-ordered list of lines with no uniqueness
// constraint. Shuffling permutes the order in place; the multiset of
// elements never changes.
type Sequence struct {
	lines []string
	rand  *RandomState
}

// NewSequence builds an empty Sequence drawing from rs.
func NewSequence(rs *RandomState) *Sequence {
	return &Sequence{rand: rs}
}

// Append adds line at the end. Duplicates are always retained.
func (s *Sequence) Append(line string) {
	s.lines = append(s.lines, line)
}

// Len returns the number of held lines.
func (s *Sequence) Len() int { return len(s.lines) }

// Shuffle permutes the sequence in place with a Fisher-Yates walk, making
// every permutation of the current contents equally likely. Call after all
// appends, at most once per run.
func (s *Sequence) Shuffle() {
	for i := len(s.lines) - 1; i > 0; i-- {
		j := s.rand.Intn(i + 1)
		s.lines[i], s.lines[j] = s.lines[j], s.lines[i]
	}
}

// Each walks the sequence in its current order, calling f for every line
// until f returns false.
func (s *Sequence) Each(f func(line string) bool) {
	for _, line := range s.lines {
		if !f(line) {
			return
		}
	}
}
