package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/askoryk/chromatch/internal/game"
	"github.com/askoryk/chromatch/internal/harmony"
	"github.com/askoryk/chromatch/internal/round"
)

const (
	swatchWidth  = 8
	swatchHeight = 3
	timeBarWidth = 40
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Align(lipgloss.Center)

	correctStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	incorrectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	timeoutStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	milestoneStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Border(lipgloss.RoundedBorder()).
			Width(swatchWidth - 2).
			Height(swatchHeight - 2).
			Align(lipgloss.Center, lipgloss.Center)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Align(lipgloss.Center)
)

// swatch renders a solid color block.
func swatch(hex string) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(swatchWidth).
		Height(swatchHeight)
	return style.Render("")
}

// missingSlot renders the placeholder for the hidden relationship color.
func missingSlot() string {
	return missingStyle.Render("?")
}

// renderPrompt draws the visible relationship colors with the missing slot
// in its true wheel position.
func renderPrompt(r round.Round) string {
	switch v := r.(type) {
	case round.ColorMatch:
		block := lipgloss.JoinVertical(lipgloss.Center,
			swatch(v.Target),
			labelStyle.Render(v.Target),
		)
		return lipgloss.JoinVertical(lipgloss.Center,
			dimStyle.Render("Find this exact color"),
			block,
		)
	case round.Complementary:
		return promptRow("Complete the complementary pair", v.Pair[:], v.Missing)
	case round.Triadic:
		return promptRow("Complete the triadic wheel", v.Wheel[:], v.Missing)
	case round.SplitComplementary:
		return promptRow("Complete the split-complementary scheme", v.Scheme[:], v.Missing)
	case round.Analogous:
		return promptRow("Complete the analogous run", v.Scheme[:], v.Missing)
	case round.Tetradic:
		return promptRow("Complete the tetradic square", v.Wheel[:], v.Missing)
	case round.DoubleComplementary:
		return promptRow("Complete the double-complementary scheme", v.Scheme[:], v.Missing)
	case round.Monochromatic:
		return promptRow("Complete the shade ladder", v.Shades[:], v.Missing)
	default:
		return ""
	}
}

func promptRow(caption string, scheme []string, missing int) string {
	cells := make([]string, len(scheme))
	for i, hex := range scheme {
		if i == missing {
			cells[i] = missingSlot()
		} else {
			cells[i] = swatch(hex)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, "  ")...)
	return lipgloss.JoinVertical(lipgloss.Center, dimStyle.Render(caption), row)
}

// renderChoices draws the numbered answer swatches.
func renderChoices(r round.Round) string {
	cells := make([]string, 0, len(r.Choices()))
	for i, hex := range r.Choices() {
		cell := lipgloss.JoinVertical(lipgloss.Center,
			swatch(hex),
			labelStyle.Width(swatchWidth).Render(fmt.Sprintf("[%d]", i+1)),
		)
		cells = append(cells, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, "  ")...)
}

// renderHUD draws the status line: mode, challenge, score, streak, level,
// lives.
func renderHUD(st game.State, challenge harmony.Type, maxWrong int) string {
	parts := []string{
		titleStyle.Render("Chromatch"),
		hudStyle.Render(harmony.Title(challenge)),
		hudStyle.Render(fmt.Sprintf("Score %d", st.Score)),
		hudStyle.Render(fmt.Sprintf("Streak %d", st.Streak)),
		hudStyle.Render(fmt.Sprintf("Level %d", st.Level)),
	}
	if st.Mode != game.ModeZen {
		lives := maxWrong - st.WrongAnswers
		if lives < 0 {
			lives = 0
		}
		hearts := strings.Repeat("♥", lives) + strings.Repeat("♡", maxWrong-lives)
		parts = append(parts, hudStyle.Render(hearts))
	} else {
		parts = append(parts, dimStyle.Render("zen"))
	}
	return strings.Join(parts, dimStyle.Render("  │  "))
}

// renderTimeBar draws the countdown as a shrinking bar.
func renderTimeBar(pct float64) string {
	filled := int(pct / 100 * timeBarWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > timeBarWidth {
		filled = timeBarWidth
	}

	color := "10"
	switch {
	case pct < 25:
		color = "9"
	case pct < 50:
		color = "11"
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).
		Render(strings.Repeat("█", filled))
	rest := dimStyle.Render(strings.Repeat("░", timeBarWidth-filled))
	return bar + rest
}

// renderCastle draws the 5-stage reward progress.
func renderCastle(p game.CastleProgress) string {
	stages := []string{"⛺", "🛖", "🏠", "🏰", "👑"}
	var sb strings.Builder
	for i, s := range stages {
		if i <= p.Stage {
			sb.WriteString(s)
		} else {
			sb.WriteString(dimStyle.Render("·"))
		}
		sb.WriteString(" ")
	}
	return dimStyle.Render("Castle ") + sb.String() + dimStyle.Render(fmt.Sprintf(" %d%%", int(p.Percentage)))
}

// renderFeedback draws the outcome flash for the last answer.
func renderFeedback(fb game.Feedback, milestone int) string {
	var line string
	switch fb {
	case game.FeedbackCorrect:
		line = correctStyle.Render("✓ Correct!")
	case game.FeedbackIncorrect:
		line = incorrectStyle.Render("✗ Wrong color")
	case game.FeedbackTimeout:
		line = timeoutStyle.Render("⏱ Out of time")
	default:
		return ""
	}
	if milestone > 0 {
		line += "  " + milestoneStyle.Render(fmt.Sprintf("%d in a row!", milestone))
	}
	return line
}

// renderGameOver draws the end-of-session overlay.
func renderGameOver(st game.State, isHigh bool) string {
	lines := []string{
		titleStyle.Render("Game Over"),
		"",
		fmt.Sprintf("Final score  %d", st.Score),
		fmt.Sprintf("Best streak  %d", st.MaxStreak),
		fmt.Sprintf("Answered     %d/%d", st.CorrectAnswers, st.TotalAnswers),
	}
	if isHigh {
		lines = append(lines, "", milestoneStyle.Render("★ New high score! ★"))
	}
	lines = append(lines, "", dimStyle.Render("r restart · q quit"))
	return overlayStyle.Render(strings.Join(lines, "\n"))
}

// interleave inserts sep between items for JoinHorizontal.
func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
