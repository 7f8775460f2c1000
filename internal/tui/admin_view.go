package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAdmin is the curation screen: catalog stats, the article list, and
// an input for smart-adding a URL.
func (a *App) renderAdmin() string {
	header := a.renderHeader()

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "  "+cardTitleStyle.Render("Catalog"))

	if a.stats != nil {
		parts := []string{fmt.Sprintf("%d articles", a.stats.Total)}
		for _, status := range []string{"Unread", "Read", "Dismissed"} {
			if n := a.stats.ByStatus[status]; n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(status)))
			}
		}
		lines = append(lines, "  "+cardMetaStyle.Render(strings.Join(parts, " · ")))
	}
	lines = append(lines, "")

	if a.adminAdding {
		lines = append(lines, "  "+cardMetaStyle.Render("The backend extracts title, summary, and topics from the URL:"))
		lines = append(lines, "  "+a.input.View())
		lines = append(lines, "")
	}

	if a.loading && len(a.catalog) == 0 {
		lines = append(lines, "  "+a.spinner.View()+" "+cardMetaStyle.Render("loading catalog..."))
	} else if len(a.catalog) == 0 {
		lines = append(lines, "  "+cardBodyStyle.Render("Catalog is empty. Press n to add an article."))
	}

	// Room for rows below the header block
	visible := a.height - len(lines) - 3
	if visible < 1 {
		visible = 1
	}

	start := 0
	if a.adminCursor >= visible {
		start = a.adminCursor - visible + 1
	}
	end := start + visible
	if end > len(a.catalog) {
		end = len(a.catalog)
	}

	width := a.width - 6
	for i := start; i < end; i++ {
		art := a.catalog[i]
		title := truncateStr(art.Title, width*2/3)
		var row string
		if i == a.adminCursor && !a.adminAdding {
			row = itemSelectedStyle.Render("> " + title)
		} else {
			row = itemTitleStyle.Render("  " + title)
		}
		meta := itemSourceStyle.Render(art.Source)
		if art.SourceType != "" {
			meta += itemMetaStyle.Render(" · " + art.SourceType)
		}
		if art.Status != "" {
			meta += itemMetaStyle.Render(" · " + art.Status)
		}
		lines = append(lines, "  "+row+"  "+meta)
	}

	hints := "j/k move  n add  x delete  o open  r refresh  esc back"
	if a.adminAdding {
		hints = "enter add  esc cancel"
	}
	status := a.renderStatus(hints)

	content := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
	return a.withStatusBar(content, status)
}
