package engine

import (
	"errors"
	"sync"
)

// DefaultApproachRatio is the approach ratio a new engine starts with.
const DefaultApproachRatio = 0.99

// ErrNonPositiveThreshold is returned when a caller tries to set an approach
// ratio of zero or below. A zero ratio would divide by zero in the LONG
// approach boundary, a negative one would invert the comparison.
var ErrNonPositiveThreshold = errors.New("approach ratio must be positive")

// Threshold holds the approach ratio used by potential-trigger detection.
// It is a single scalar, independent of any symbol.
type Threshold struct {
	mu    sync.RWMutex
	ratio float64
}

func NewThreshold() *Threshold {
	return &Threshold{ratio: DefaultApproachRatio}
}

// Set overwrites the approach ratio. Non-positive values are rejected.
func (t *Threshold) Set(ratio float64) error {
	if ratio <= 0 {
		return ErrNonPositiveThreshold
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.ratio = ratio
	return nil
}

// Get returns the current approach ratio.
func (t *Threshold) Get() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.ratio
}
