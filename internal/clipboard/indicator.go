package clipboard

import (
	"sync"
	"time"
)

// DefaultResetAfter is how long the copied indicator stays on.
const DefaultResetAfter = 2 * time.Second

// Indicator is a flag that turns itself off after a fixed interval.
// Setting it again cancels the pending revert and starts a new one.
type Indicator struct {
	mu         sync.Mutex
	resetAfter time.Duration
	timer      *time.Timer
	seq        uint64
	on         bool
}

// NewIndicator creates an Indicator that reverts after resetAfter.
func NewIndicator(resetAfter time.Duration) *Indicator {
	if resetAfter <= 0 {
		resetAfter = DefaultResetAfter
	}
	return &Indicator{resetAfter: resetAfter}
}

// Set turns the indicator on and reschedules the revert.
func (i *Indicator) Set() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.timer != nil {
		i.timer.Stop()
	}
	i.seq++
	seq := i.seq
	i.on = true
	i.timer = time.AfterFunc(i.resetAfter, func() { i.revert(seq) })
}

// revert clears the flag unless a later Set or Stop superseded this timer.
func (i *Indicator) revert(seq uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.seq != seq {
		return
	}
	i.on = false
	i.timer = nil
}

// On reports whether the indicator is currently set.
func (i *Indicator) On() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.on
}

// Stop cancels any pending revert and clears the flag.
func (i *Indicator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
	i.seq++
	i.on = false
}
