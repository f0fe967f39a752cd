package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askoryk/chromatch/internal/config"
	"github.com/askoryk/chromatch/internal/game"
)

// defaultTickRate is the engine clock rate in ticks per second. The engine
// derives remaining time from wall-clock timestamps, so a dropped tick only
// delays the display, never the countdown.
const defaultTickRate = 30

// Options configures a play session.
type Options struct {
	Mode     game.Mode
	Config   config.Config
	Seed     int64
	TickRate int
	Width    int
	Height   int
}

// Model is the Bubble Tea model for a Chromatch session.
type Model struct {
	engine  *game.Engine
	persist game.Persistence
	opts    Options
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	quitting bool

	// Set once per game over so the overlay and save happen exactly once.
	finished  bool
	isNewHigh bool
}

// NewModel creates a play model. persist may be nil.
func NewModel(persist game.Persistence, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = defaultTickRate
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	engine := game.New(opts.Config, persist, rng)
	engine.StartGame(opts.Mode, time.Now())

	return Model{
		engine:  engine,
		persist: persist,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   opts.Width,
		height:  opts.Height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and advances the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.engine.Tick(time.Time(msg))
		if m.engine.Phase() == game.PhaseEnded && !m.finished {
			m.finished = true
			m.isNewHigh = m.checkNewHigh()
		}
		return m, tickCmd(m.opts.TickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case "r":
		if m.engine.Phase() == game.PhaseEnded {
			m.finished = false
			m.isNewHigh = false
			m.engine.StartGame(m.opts.Mode, time.Now())
		}
		return m, nil
	}

	if idx := m.keys.choiceIndex(key); idx >= 0 {
		m.engine.HandleChoice(idx, time.Now())
	}
	return m, nil
}

// checkNewHigh asks storage whether the finished score is a record. The
// engine has already saved the score, so the stored best includes it: the
// session is a record when it matches that best.
func (m Model) checkNewHigh() bool {
	if m.persist == nil {
		return false
	}
	st := m.engine.State()
	best, err := m.persist.HighScore(string(st.Mode))
	if err != nil {
		return false
	}
	return st.Score >= best && st.Score > 0
}

// View renders the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.engine.State()
	now := time.Now()

	if m.engine.Phase() == game.PhaseEnded {
		overlay := renderGameOver(st, m.isNewHigh)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}

	sections := []string{
		renderHUD(st, m.engine.ChallengeType(), m.opts.Config.Rules.MaxWrongAnswers),
		"",
	}

	if st.Mode != game.ModeZen {
		sections = append(sections, renderTimeBar(m.engine.TimeLeftPercent(now)), "")
	}

	if r := m.engine.Round(); r != nil {
		sections = append(sections, renderPrompt(r), "", renderChoices(r))
	}

	if fb := renderFeedback(m.engine.Feedback(), m.engine.StreakMilestone()); fb != "" {
		sections = append(sections, "", fb)
	}

	sections = append(sections,
		"",
		renderCastle(m.engine.CastleProgress()),
		"",
		m.help.View(m.keys),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts a Bubble Tea program for a play session and blocks until it
// exits.
func Run(persist game.Persistence, opts Options) error {
	p := tea.NewProgram(
		NewModel(persist, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
