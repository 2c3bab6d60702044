package shuffle

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/mafia/internal/shuffle Shuffler

// Shuffler randomizes the order of n elements via the swap function.
// Role assignment depends on it so tests can pin the permutation.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Config for the default shuffler
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// DefaultShuffler implements Shuffler with a seeded random source
type DefaultShuffler struct {
	random *rand.Rand
}

// New creates a new shuffler
func New(cfg *Config) *DefaultShuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &DefaultShuffler{
		random: rand.New(source),
	}
}

// Shuffle randomizes the order of n elements
func (s *DefaultShuffler) Shuffle(n int, swap func(i, j int)) {
	s.random.Shuffle(n, swap)
}
