package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatus builds the status line: counts on the left, key hints on
// the right, overridden by a sticky error.
func (a *App) renderStatus(hints string) string {
	if a.err != nil {
		return errStyle.Render(" " + a.err.Error() + " — press the key again to retry")
	}

	left := fmt.Sprintf(" %d dealt", len(a.articles))
	if n := a.saved.Len(); n > 0 {
		left += fmt.Sprintf(" · %d saved", n)
	}
	if a.note != "" {
		left += " · " + noteStyle.Render(a.note)
	}
	if a.loading {
		left += " " + a.spinner.View()
	}

	right := " " + hints + " "

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

// withStatusBar pins a status line to the bottom of the screen.
func (a *App) withStatusBar(content, status string) string {
	bar := statusBarStyle.Width(a.width).Render(status)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) renderBottomBar(hints string) string {
	left := ""
	if a.updateVersion != "" {
		left = " " + noteStyle.Render("update available: v"+a.updateVersion)
	}
	right := " " + hints + " "

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return statusBarStyle.Width(a.width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}
