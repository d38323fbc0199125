package utils

import (
	"math/rand/v2"
	"sync"
	"time"
)

// NoteIDDigits is the number of decimal digits of a generated note id.
const NoteIDDigits = 8

const (
	minNoteID = 10_000_000
	maxNoteID = 100_000_000
)

// maxIDAttempts bounds the collision retries before the generator gives up
// on randomness and scans for the next free id.
const maxIDAttempts = 64

// NoteIDGenerator hands out pseudo-random 8-digit note ids.
type NoteIDGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNoteIDGenerator returns a generator seeded from the current time.
func NewNoteIDGenerator() *NoteIDGenerator {
	now := uint64(time.Now().UnixNano())
	return NewSeededNoteIDGenerator(now, now>>32)
}

// NewSeededNoteIDGenerator returns a deterministic generator, used by tests.
func NewSeededNoteIDGenerator(seed1, seed2 uint64) *NoteIDGenerator {
	return &NoteIDGenerator{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

// Generate returns an id in [10000000, 99999999] for which taken reports
// false. A nil taken accepts the first draw.
func (g *NoteIDGenerator) Generate(taken func(id int64) bool) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	var id int64
	for range maxIDAttempts {
		id = minNoteID + g.rnd.Int64N(maxNoteID-minNoteID)
		if taken == nil || !taken(id) {
			return id
		}
	}

	// the id space is nearly exhausted; walk from the last draw
	for i := int64(0); i < maxNoteID-minNoteID; i++ {
		candidate := minNoteID + (id-minNoteID+i)%(maxNoteID-minNoteID)
		if !taken(candidate) {
			return candidate
		}
	}

	return id
}
