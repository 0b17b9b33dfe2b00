package engine

import (
	"sync"
	"time"
)

// PausableClock converts wall time into game time that stands still while paused
// The frame driver reads it as milliseconds since the clock's creation
type PausableClock struct {
	mu sync.Mutex

	source    TimeSource
	start     time.Time
	paused    bool
	pauseAt   time.Time
	pausedFor time.Duration // Cumulative completed pauses
}

// NewPausableClock creates a running clock; a nil source uses the system clock
func NewPausableClock(source TimeSource) *PausableClock {
	if source == nil {
		source = NewTimeProvider()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Elapsed returns game time since creation, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	if pc.paused {
		now = pc.pauseAt
	}
	return now.Sub(pc.start) - pc.pausedFor
}

// NowMs returns Elapsed as fractional milliseconds, the frame driver's clock input
func (pc *PausableClock) NowMs() float64 {
	return float64(pc.Elapsed()) / float64(time.Millisecond)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseAt = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.pausedFor += pc.source.Now().Sub(pc.pauseAt)
	pc.paused = false
	pc.pauseAt = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.pausedFor
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseAt)
	}
	return total
}
