package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/crease/internal/dice Roller

import (
	"math/rand"
	"time"
)

// Roller is the random source every simulation draws from
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int

	// Intn returns a value in [0, n)
	Intn(n int) int

	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// Config for dice roller
type Config struct {
	// Optional seed for testing and replays
	Seed int64
}

// roller provides dice rolling functionality
type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &roller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Intn returns a uniform index below n, 0 when n is not positive
func (r *roller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.random.Intn(n)
}

// Float64 returns a uniform probability draw
func (r *roller) Float64() float64 {
	return r.random.Float64()
}

// Between returns a value in [lo, hi] using the given roller
func Between(r Roller, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
