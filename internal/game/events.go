package game

import "time"

// eventKind identifies a deferred engine action.
type eventKind int

const (
	eventClearFeedback eventKind = iota
	eventNextRound
	eventEndGame
)

// scheduledEvent is one pending deferred action. Events live in a plain
// slice flushed wholesale by Start/Reset, so a stale timer from a previous
// game can never fire into a new one.
type scheduledEvent struct {
	kind eventKind
	due  time.Time
}

// schedule queues an action to fire once the engine clock reaches due.
func (e *Engine) schedule(kind eventKind, due time.Time) {
	e.pending = append(e.pending, scheduledEvent{kind: kind, due: due})
}

// flushEvents cancels every pending deferred action.
func (e *Engine) flushEvents() {
	e.pending = nil
}

// fireDueEvents runs all events whose deadline has passed, in scheduling
// order. Firing an event may schedule new ones; those wait for a later tick.
func (e *Engine) fireDueEvents(now time.Time) {
	if len(e.pending) == 0 {
		return
	}

	var remaining []scheduledEvent
	due := make([]scheduledEvent, 0, len(e.pending))
	for _, ev := range e.pending {
		if ev.due.After(now) {
			remaining = append(remaining, ev)
		} else {
			due = append(due, ev)
		}
	}
	e.pending = remaining

	for _, ev := range due {
		switch ev.kind {
		case eventClearFeedback:
			e.feedback = FeedbackNone
		case eventNextRound:
			e.nextRound(now)
		case eventEndGame:
			e.endGame()
		}
	}
}
