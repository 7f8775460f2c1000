package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`██████╗ ███████╗ █████╗ ██████╗ ██████╗  █████╗ ██████╗ ██████╗ ██╗████████╗`,
	`██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔══██╗██║╚══██╔══╝`,
	`██████╔╝█████╗  ███████║██║  ██║██████╔╝███████║██████╔╝██████╔╝██║   ██║   `,
	`██╔══██╗██╔══╝  ██╔══██║██║  ██║██╔══██╗██╔══██║██╔══██╗██╔══██╗██║   ██║   `,
	`██║  ██║███████╗██║  ██║██████╔╝██║  ██║██║  ██║██████╔╝██████╔╝██║   ██║   `,
	`╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═════╝ ╚═╝   ╚═╝   `,
}

func renderHomeScreen(width, height int, updateVersion string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorSecondary)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, "")

	menu := []struct {
		key   string
		label string
	}{
		{"d", "Deal me something to read"},
		{"l", "Browse as a list"},
		{"b", "Saved articles"},
		{"g", "Discover similar articles"},
		{"a", "Curate the catalog"},
	}
	for _, m := range menu {
		lines = append(lines, "          "+keyStyle.Render("["+m.key+"]")+"  "+labelStyle.Render(m.label))
	}
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	if updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, "          "+logoStyle.Render("Update available: v"+updateVersion))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
