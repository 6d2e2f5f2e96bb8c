// Package dice is the single source of randomness for attack and damage rolls.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"

	"github.com/osse101/StormSheet_Go/internal/logger"
	"github.com/osse101/StormSheet_Go/internal/utils"
)

// Roller produces uniformly distributed results for an N-sided die.
// Implementations must be safe for concurrent use.
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// secureRoller draws from crypto/rand
type secureRoller struct{}

// NewSecureRoller returns a Roller backed by crypto/rand
func NewSecureRoller() Roller {
	return secureRoller{}
}

func (secureRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	n, err := utils.SecureRandomInt(1, sides)
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		logger.Error(LogMsgSecureRollFailed, "sides", sides, "error", err)
		return utils.RandomInt(1, sides)
	}
	return n
}

// seededRoller is a deterministic math/rand roller. The mutex makes a single
// instance shareable between concurrent attack resolutions.
type seededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller returns a deterministic Roller for the given seed
func NewSeededRoller(seed int64) Roller {
	return &seededRoller{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // reproducible game rolls
}

func (r *seededRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(sides) + 1
}

// SequenceRoller replays a fixed list of values, cycling when exhausted.
// Values outside [1, sides] are clamped. Intended for tests and replays.
type SequenceRoller struct {
	mu     sync.Mutex
	values []int
	next   int
	calls  []int
}

// NewSequenceRoller returns a SequenceRoller that yields values in order
func NewSequenceRoller(values ...int) *SequenceRoller {
	return &SequenceRoller{values: values}
}

// Roll returns the next value in the sequence
func (s *SequenceRoller) Roll(sides int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, sides)
	if len(s.values) == 0 {
		return 1
	}
	v := s.values[s.next%len(s.values)]
	s.next++

	if v < 1 {
		return 1
	}
	if sides >= 1 && v > sides {
		return sides
	}
	return v
}

// Calls returns the die sizes requested so far, in order
func (s *SequenceRoller) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.calls...)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
