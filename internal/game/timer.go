package game

import "time"

// Timer is the round countdown. It owns a start instant and a duration and
// derives everything from the caller's clock, so missed or delayed ticks
// never distort the remaining time. A paused timer freezes the countdown;
// resuming re-baselines the start instant so the paused span is not charged.
type Timer struct {
	startedAt time.Time
	duration  time.Duration
	pausedAt  time.Time
	paused    bool
}

// StartTimer begins a countdown of d from now.
func StartTimer(now time.Time, d time.Duration) *Timer {
	return &Timer{startedAt: now, duration: d}
}

// Remaining returns the time left on the countdown, never negative.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if t.paused {
		now = t.pausedAt
	}
	left := t.duration - now.Sub(t.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// PercentLeft returns the remaining time as a 0-100 percentage.
func (t *Timer) PercentLeft(now time.Time) float64 {
	if t.duration <= 0 {
		return 0
	}
	return 100 * float64(t.Remaining(now)) / float64(t.duration)
}

// Expired reports whether the countdown has reached zero.
func (t *Timer) Expired(now time.Time) bool {
	return t.Remaining(now) == 0
}

// Pause freezes the countdown. Pausing an already paused timer is a no-op.
func (t *Timer) Pause(now time.Time) {
	if t.paused {
		return
	}
	t.paused = true
	t.pausedAt = now
}

// Resume unfreezes the countdown, shifting the start instant forward by the
// paused span. Resuming a running timer is a no-op.
func (t *Timer) Resume(now time.Time) {
	if !t.paused {
		return
	}
	t.startedAt = t.startedAt.Add(now.Sub(t.pausedAt))
	t.paused = false
}

// Paused reports whether the countdown is frozen.
func (t *Timer) Paused() bool {
	return t.paused
}
