package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jayeshbali/readrabbit/internal/article"
)

// renderDeck shows one article per screen, card style.
func (a *App) renderDeck() string {
	header := a.renderHeader()

	var body string
	switch {
	case a.loading && len(a.articles) == 0:
		body = lipglossCenter(a.spinner.View()+" dealing articles...", a.width, a.height-3)
	case len(a.articles) == 0:
		body = lipglossCenter("No articles. Press r to deal.", a.width, a.height-3)
	default:
		body = a.renderCard(a.articles[a.cursor], a.cursor+1, len(a.articles))
	}

	status := a.renderStatus("n/p next/prev  o open  s save  x dismiss  r redeal  v list  ? help")

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return a.withStatusBar(content, status)
}

func (a *App) renderCard(art article.Article, index, total int) string {
	cardWidth := a.width - 8
	if cardWidth > 80 {
		cardWidth = 80
	}
	if cardWidth < 30 {
		cardWidth = 30
	}
	innerWidth := cardWidth - 2

	var body []string

	byline := cardMetaStyle.Render(art.Byline())
	if a.saved.Contains(art.ID) {
		byline += "  " + cardSavedStyle.Render("● saved")
	}
	body = append(body, byline)

	for _, line := range strings.Split(wrapText(art.Title, innerWidth), "\n") {
		body = append(body, cardTitleStyle.Render(line))
	}
	body = append(body, "")

	meta := cardMetaStyle.Render(art.ReadTimeLabel())
	if art.SourceType != "" {
		meta += cardMetaStyle.Render("  ·  " + art.SourceType)
	}
	body = append(body, meta)

	if len(art.Topics) > 0 {
		body = append(body, cardTopicStyle.Render(art.TopicLine()))
	}

	summary := art.Summary
	if summary == "" {
		summary = "(No summary available)"
	}
	body = append(body, "")
	for _, line := range strings.Split(wrapText(summary, innerWidth), "\n") {
		body = append(body, cardBodyStyle.Render(line))
	}

	body = append(body, "")
	body = append(body, previewLinkStyle.Render(truncateStr(art.URL, innerWidth)))

	cardBox := cardBoxStyle.Width(cardWidth).Render(strings.Join(body, "\n"))

	counter := cardMetaStyle.Render(fmt.Sprintf("%d/%d", index, total))

	var lines []string
	lines = append(lines, "", "  "+counter)
	for _, l := range strings.Split(cardBox, "\n") {
		lines = append(lines, "  "+l)
	}

	content := strings.Join(lines, "\n")
	contentLines := strings.Count(content, "\n") + 1
	topPad := (a.height - 3 - contentLines) / 3
	if topPad < 0 {
		topPad = 0
	}
	return strings.Repeat("\n", topPad) + content
}

func (a *App) renderHeader() string {
	headerLeft := headerStyle.Render("readrabbit")
	headerRight := headerDateStyle.Render(a.currentDate)
	gap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if gap < 0 {
		gap = 0
	}
	return headerLeft + fmt.Sprintf("%*s", gap, "") + headerRight
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", max(0, height/3)) + strings.Repeat(" ", pad) + s
}
