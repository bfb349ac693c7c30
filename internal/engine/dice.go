package engine

import (
	"math/rand"
	"time"
)

// Roller draws uniform integers for combat resolution. Sessions get a
// real one; tests inject a scripted or seeded implementation.
type Roller interface {
	// Between returns a uniform integer in the closed range [lo, hi].
	Between(lo, hi int) int
}

type randRoller struct {
	r *rand.Rand
}

// NewRoller returns a time-seeded Roller.
func NewRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller returns a deterministic Roller for reproducible draws.
func NewSeededRoller(seed int64) Roller {
	return &randRoller{r: rand.New(rand.NewSource(seed))}
}

func (rr *randRoller) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rr.r.Intn(hi-lo+1)
}
