// Package timer provides tick-driven timers measured in time.Duration so
// accumulated ticks add up exactly.
package timer

import "time"

// Mode selects what happens when a timer reaches its duration.
type Mode uint8

const (
	Once Mode = iota
	Repeating
)

// Timer accumulates elapsed time fed by Tick. A repeating timer wraps its
// elapsed time and counts how many whole periods completed during the last
// Tick; a one-shot timer stops at its duration.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	mode         Mode
	finished     bool
	justFinished bool
	times        int
}

func New(d time.Duration, mode Mode) *Timer {
	return &Timer{duration: d, mode: mode}
}

// FromSeconds builds a timer from a float period, rounding to the nanosecond.
func FromSeconds(s float64, mode Mode) *Timer {
	return New(time.Duration(s*float64(time.Second)+0.5), mode)
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	t.times = 0
	if t.duration <= 0 {
		t.finished = true
		t.justFinished = true
		t.times = 1
		return
	}
	if t.mode == Once && t.finished {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return
	}
	t.justFinished = true
	t.finished = true
	if t.mode == Once {
		t.elapsed = t.duration
		t.times = 1
		return
	}
	t.times = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
}

// JustFinished reports whether the last Tick completed at least one period.
func (t *Timer) JustFinished() bool { return t.justFinished }

// TimesFinishedThisTick returns how many periods the last Tick completed.
func (t *Timer) TimesFinishedThisTick() int { return t.times }

// Finished reports whether the timer has completed at least once.
func (t *Timer) Finished() bool { return t.finished }

func (t *Timer) Elapsed() time.Duration  { return t.elapsed }
func (t *Timer) Duration() time.Duration { return t.duration }

// Remaining returns the time left in the current period.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Reset rewinds to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
	t.times = 0
}
