// Package game implements the Chromatch state machine: one active round, a
// deadline-based countdown, scoring, streaks, lives and the round-to-round
// transition sequencing. The engine is tick-driven and goroutine-free: the
// platform layer calls Tick with its clock and the engine fires whatever
// came due, which keeps every test deterministic.
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/askoryk/chromatch/internal/colorspace"
	"github.com/askoryk/chromatch/internal/config"
	"github.com/askoryk/chromatch/internal/harmony"
	"github.com/askoryk/chromatch/internal/round"
)

// Mode is the play mode.
type Mode string

const (
	// ModeZen is untimed and lives-less; wrong answers never end the session.
	ModeZen Mode = "zen"
	// ModeUnified is the standard timed mode with limited wrong answers.
	ModeUnified Mode = "unified"
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseFeedback
	PhaseEnded
)

// Feedback tags the outcome of the last answered round for the UI.
type Feedback string

const (
	FeedbackNone      Feedback = ""
	FeedbackCorrect   Feedback = "correct"
	FeedbackIncorrect Feedback = "incorrect"
	FeedbackTimeout   Feedback = "timeout"
)

// State is the mutable session state, exposed read-only to the UI.
type State struct {
	Mode              Mode
	Level             int
	Score             int
	Streak            int
	MaxStreak         int
	CorrectAnswers    int
	TotalAnswers      int
	WrongAnswers      int
	RoundsSinceSwitch int
	IsPlaying         bool
	ProcessingChoice  bool
	AnswerColors      []string // last N correct-answer colors, newest last
}

// Engine owns the session. All mutation goes through StartGame, Tick,
// HandleChoice and ResetGame; every handler is safe to call at any time.
type Engine struct {
	cfg     config.Config
	rng     *rand.Rand
	gen     *round.Generator
	persist Persistence

	phase     Phase
	state     State
	current   round.Round
	challenge harmony.Type
	timer     *Timer
	pending   []scheduledEvent
	feedback  Feedback
	milestone int // one-shot streak milestone signal, 0 when clear

	tutorialActive bool
	lifetime       int // cached lifetime score for unlock decisions
}

// New creates an engine. persist may be nil. The RNG is the session's single
// random source; fix its seed for deterministic play.
func New(cfg config.Config, persist Persistence, rng *rand.Rand) *Engine {
	e := &Engine{
		cfg:     cfg,
		rng:     rng,
		gen:     round.NewGenerator(cfg.Generation, cfg.Difficulty, rng),
		persist: persist,
		phase:   PhaseIdle,
	}
	if persist != nil {
		if lifetime, err := persist.LifetimeScore(); err == nil {
			e.lifetime = lifetime
		}
	}
	return e
}

// StartGame begins a fresh session in the given mode. Any pending deferred
// actions from a previous session are flushed first.
func (e *Engine) StartGame(mode Mode, now time.Time) {
	e.flushEvents()
	e.state = State{Mode: mode, Level: 1, IsPlaying: true}
	e.current = nil
	e.timer = nil
	e.feedback = FeedbackNone
	e.milestone = 0
	e.challenge = harmony.ColorMatch
	e.phase = PhasePlaying
	e.nextRound(now)
}

// ResetGame returns to the initial idle state, cancelling all pending
// deferred actions.
func (e *Engine) ResetGame() {
	e.flushEvents()
	e.state = State{}
	e.current = nil
	e.timer = nil
	e.feedback = FeedbackNone
	e.milestone = 0
	e.phase = PhaseIdle
}

// Tick advances the engine to now: it freezes or resumes the countdown for
// the tutorial pause condition, fires a timeout when the countdown hits
// zero, and runs any deferred actions that came due.
func (e *Engine) Tick(now time.Time) {
	if e.timer != nil && e.phase == PhasePlaying {
		if e.tutorialActive {
			e.timer.Pause(now)
		} else {
			e.timer.Resume(now)
			if e.timer.Expired(now) {
				e.handleTimeout(now)
			}
		}
	}
	e.fireDueEvents(now)
}

// SetTutorialActive freezes or resumes the countdown while a tutorial
// overlay is showing. The paused span is never charged against the player.
func (e *Engine) SetTutorialActive(active bool) {
	e.tutorialActive = active
}

// HandleChoice submits the choice at the given index. A no-op unless a round
// is active and no earlier submission is still being processed, which makes
// double-taps during the feedback window harmless.
func (e *Engine) HandleChoice(idx int, now time.Time) {
	if e.phase != PhasePlaying || e.state.ProcessingChoice || e.current == nil {
		return
	}
	if idx < 0 || idx >= len(e.current.Choices()) {
		return
	}
	e.resolveChoice(idx == e.current.CorrectIndex(), now)
}

// HandleChoiceHex submits a hex color for a color-match round, compared
// case-insensitively against the target. Ignored for other round types.
func (e *Engine) HandleChoiceHex(hex string, now time.Time) {
	if e.phase != PhasePlaying || e.state.ProcessingChoice || e.current == nil {
		return
	}
	cm, ok := e.current.(round.ColorMatch)
	if !ok {
		return
	}
	e.resolveChoice(colorspace.Equal(hex, cm.Target), now)
}

// resolveChoice locks further input, stops the countdown and applies the
// outcome.
func (e *Engine) resolveChoice(correct bool, now time.Time) {
	e.state.ProcessingChoice = true
	timeLeft := e.TimeLeftPercent(now)
	e.timer = nil

	if correct {
		e.applyCorrect(timeLeft, now)
	} else {
		e.applyWrong(FeedbackIncorrect, now)
	}
}

// handleTimeout fires when the countdown reaches zero with the round still
// unanswered. Identical to a wrong answer except for the feedback tag.
func (e *Engine) handleTimeout(now time.Time) {
	if e.phase != PhasePlaying || e.state.ProcessingChoice || e.current == nil {
		return
	}
	e.state.ProcessingChoice = true
	e.timer = nil
	e.applyWrong(FeedbackTimeout, now)
}

func (e *Engine) applyCorrect(timeLeftPct float64, now time.Time) {
	newStreak := e.state.Streak + 1

	points := e.cfg.Scoring.BasePoints
	points += newStreak * e.cfg.Scoring.StreakBonus
	if e.current.ChallengeType() == harmony.ColorMatch {
		points += int(math.Floor(timeLeftPct * e.cfg.Scoring.TimeBonus))
	}
	points += e.state.Level * e.cfg.Scoring.LevelBonus

	e.state.Score += points
	e.state.Streak = newStreak
	if newStreak > e.state.MaxStreak {
		e.state.MaxStreak = newStreak
	}
	e.state.CorrectAnswers++
	e.state.TotalAnswers++
	e.state.Level++

	answer := e.current.Choices()[e.current.CorrectIndex()]
	e.recordAnswerColor(answer)
	if e.persist != nil {
		e.persist.RecordDiscoveredColor(answer) //nolint:errcheck // cosmetic, best effort
	}

	for _, m := range e.cfg.Rules.StreakMilestones {
		if newStreak == m {
			e.milestone = m
			break
		}
	}

	e.feedback = FeedbackCorrect
	e.phase = PhaseFeedback
	e.schedule(eventClearFeedback, now.Add(e.feedbackDelay()))
	e.schedule(eventNextRound, now.Add(e.transitionDelay()))
}

func (e *Engine) applyWrong(kind Feedback, now time.Time) {
	e.state.Streak = 0
	e.state.WrongAnswers++
	e.state.TotalAnswers++

	e.feedback = kind
	e.phase = PhaseFeedback
	e.schedule(eventClearFeedback, now.Add(e.feedbackDelay()))

	if e.state.Mode != ModeZen && e.state.WrongAnswers >= e.cfg.Rules.MaxWrongAnswers {
		e.schedule(eventEndGame, now.Add(e.gameEndDelay()))
		return
	}
	e.schedule(eventNextRound, now.Add(e.transitionDelay()))
}

// nextRound rotates the challenge type per the unlock policy cadence and
// generates a fresh round. The countdown is sized by the level curve, except
// in zen mode which runs untimed.
func (e *Engine) nextRound(now time.Time) {
	if e.current != nil {
		next := harmony.NextChallengeType(e.challenge, e.state.RoundsSinceSwitch, e.lifetime, e.rng)
		if next != e.challenge {
			e.challenge = next
			e.state.RoundsSinceSwitch = 0
		} else {
			e.state.RoundsSinceSwitch++
		}
	}

	e.current = e.gen.Generate(e.challenge, e.state.Level, e.state.AnswerColors)
	e.state.ProcessingChoice = false
	e.feedback = FeedbackNone
	e.milestone = 0
	e.phase = PhasePlaying

	if e.state.Mode != ModeZen {
		e.timer = StartTimer(now, round.TimeForLevel(e.cfg.Timing, e.state.Level))
	}
}

// endGame closes the session: lives are exhausted in a timed mode. The
// session score feeds the lifetime total and the per-mode high score table.
func (e *Engine) endGame() {
	e.state.IsPlaying = false
	e.state.ProcessingChoice = false
	e.current = nil
	e.timer = nil
	e.phase = PhaseEnded

	if e.persist == nil {
		return
	}
	if e.state.Mode != ModeZen {
		if err := e.persist.AddToLifetimeScore(e.state.Score); err == nil {
			e.lifetime += e.state.Score
		}
	}
	e.persist.SaveHighScore(string(e.state.Mode), e.state.Score) //nolint:errcheck // best effort
}

// recordAnswerColor appends to the bounded answer ring.
func (e *Engine) recordAnswerColor(hex string) {
	limit := e.cfg.Generation.AnswerHistory
	if limit <= 0 {
		return
	}
	e.state.AnswerColors = append(e.state.AnswerColors, hex)
	if len(e.state.AnswerColors) > limit {
		e.state.AnswerColors = e.state.AnswerColors[len(e.state.AnswerColors)-limit:]
	}
}

func (e *Engine) feedbackDelay() time.Duration {
	return time.Duration(e.cfg.Timing.FeedbackMs) * time.Millisecond
}

func (e *Engine) transitionDelay() time.Duration {
	return time.Duration(e.cfg.Timing.TransitionMs) * time.Millisecond
}

func (e *Engine) gameEndDelay() time.Duration {
	return time.Duration(e.cfg.Timing.GameEndDelayMs) * time.Millisecond
}

// --- Read-only accessors ---

// State returns a snapshot of the session state.
func (e *Engine) State() State {
	snap := e.state
	snap.AnswerColors = append([]string(nil), e.state.AnswerColors...)
	return snap
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Round returns the active round, or nil between rounds.
func (e *Engine) Round() round.Round { return e.current }

// ChallengeType returns the harmony type of the current block of rounds.
func (e *Engine) ChallengeType() harmony.Type { return e.challenge }

// Feedback returns the outcome tag of the last answer, if still showing.
func (e *Engine) Feedback() Feedback { return e.feedback }

// StreakMilestone returns the one-shot milestone signal (0 when clear). It
// clears when the next round begins.
func (e *Engine) StreakMilestone() int { return e.milestone }

// TimeLeftPercent returns the remaining round time as 0-100. Zen mode and
// idle phases report a full bar.
func (e *Engine) TimeLeftPercent(now time.Time) float64 {
	if e.timer == nil {
		return 100
	}
	return e.timer.PercentLeft(now)
}

// CastleProgress returns the cosmetic reward stage for the session score.
func (e *Engine) CastleProgress() CastleProgress {
	return CastleProgressFor(e.state.Score, e.cfg.Rules.CastleMilestones)
}

// LifetimeScore returns the cached cumulative non-zen score.
func (e *Engine) LifetimeScore() int { return e.lifetime }

// UnlockedHarmonies returns the challenge types available at the current
// lifetime score.
func (e *Engine) UnlockedHarmonies() []harmony.Harmony {
	return harmony.Unlocked(e.lifetime)
}
