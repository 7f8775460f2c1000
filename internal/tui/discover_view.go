package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDiscover is the agent screen: an input for the seed content, then
// themes and ranked recommendations once a run finishes.
func (a *App) renderDiscover() string {
	header := a.renderHeader()

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "  "+cardTitleStyle.Render("Discover similar articles"))
	lines = append(lines, "")

	if a.inputFocused || a.discovery == nil {
		lines = append(lines, "  "+cardMetaStyle.Render("Give the agent an article URL, a tweet, or a description:"))
		lines = append(lines, "")
		lines = append(lines, "  "+a.input.View())
	}

	if a.discovering {
		lines = append(lines, "")
		lines = append(lines, "  "+a.spinner.View()+" "+cardMetaStyle.Render("searching and evaluating (this takes a minute)..."))
	}

	if a.discovery != nil && !a.discovering {
		d := a.discovery

		if len(d.Themes.MainTopics) > 0 {
			lines = append(lines, "  "+cardMetaStyle.Render("Themes: ")+cardTopicStyle.Render(strings.Join(d.Themes.MainTopics, " · ")))
		}
		lines = append(lines, "  "+cardMetaStyle.Render(fmt.Sprintf("%d searches · %d results evaluated", d.SearchesPerformed, d.ResultsEvaluated)))
		lines = append(lines, "")

		if len(d.Recommendations) == 0 {
			msg := d.Message
			if msg == "" {
				msg = "No new articles found"
			}
			lines = append(lines, "  "+cardBodyStyle.Render(msg))
		}

		width := a.width - 6
		for i, rec := range d.Recommendations {
			selected := i == a.discoverCursor && !a.inputFocused

			title := truncateStr(rec.Title, width-14)
			quality := qualityStyle.Render(fmt.Sprintf("%d/10", rec.QualityScore))
			var row string
			if selected {
				row = itemSelectedStyle.Render("> "+title) + "  " + quality
			} else {
				row = itemTitleStyle.Render("  "+title) + "  " + quality
			}
			if a.savedRecs[rec.URL] {
				row += "  " + cardSavedStyle.Render("added ✓")
			}
			lines = append(lines, "  "+row)

			meta := itemSourceStyle.Render(rec.Source)
			if rec.ReadTime > 0 {
				meta += itemMetaStyle.Render(fmt.Sprintf(" · %d min", rec.ReadTime))
			}
			lines = append(lines, "    "+meta)

			if selected && rec.Reason != "" {
				for _, l := range strings.Split(wrapText(rec.Reason, width-4), "\n") {
					lines = append(lines, "    "+cardBodyStyle.Render(l))
				}
			}
			lines = append(lines, "")
		}
	}

	hints := "enter run  esc back"
	if a.discovery != nil && !a.inputFocused {
		hints = "j/k move  s add to catalog  o open  i new search  esc back"
	}
	status := a.renderStatus(hints)

	content := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
	return a.withStatusBar(content, status)
}
