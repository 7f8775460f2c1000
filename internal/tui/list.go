package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jayeshbali/readrabbit/internal/article"
)

// renderListMode is the compact density: article rows on the left, a
// preview pane on the right.
func (a *App) renderListMode() string {
	header := a.renderHeader()

	headerHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - statusHeight - 4 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1

	innerListW := listWidth - 4
	listContent := a.renderRows(a.articles, a.cursor, contentHeight, innerListW)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	var selected *article.Article
	if len(a.articles) > 0 && a.cursor < len(a.articles) {
		selected = &a.articles[a.cursor]
	}
	innerPreviewW := previewWidth - 4
	previewContent := a.renderPreview(selected, innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	status := a.renderStatus("j/k move  tab focus  o open  s save  x dismiss  r redeal  v deck  ? help")

	return a.withStatusBar(lipgloss.JoinVertical(lipgloss.Left, header, content), status)
}

// renderRows draws compact two-line article entries with cursor scrolling.
func (a *App) renderRows(articles []article.Article, cursor, height, width int) string {
	if a.loading && len(articles) == 0 {
		return lipglossCenter(a.spinner.View()+" dealing...", width, height)
	}
	if len(articles) == 0 {
		return lipglossCenter("No articles", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(a.renderRow(articles[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (a *App) renderRow(art article.Article, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(art.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(art.Title, width-4))
	}

	marker := ""
	if a.saved.Contains(art.ID) {
		marker = " " + cardSavedStyle.Render("●")
	}
	meta := "  " + itemSourceStyle.Render(truncateStr(art.Source, width/2)) +
		" " + itemMetaStyle.Render("· "+art.ReadTimeLabel()) + marker

	return title + "\n" + meta
}

func (a *App) renderPreview(art *article.Article, width, height, scroll int) string {
	if art == nil {
		return lipglossCenter("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(art.Title)
	source := previewSourceStyle.Render(art.Byline() + " · " + art.ReadTimeLabel())

	var topics string
	if len(art.Topics) > 0 {
		topics = cardTopicStyle.Render(art.TopicLine())
	}

	summary := art.Summary
	if summary == "" {
		summary = "(No summary available)"
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(summary, contentWidth))
	link := previewLinkStyle.Width(contentWidth).Render("Read more: " + art.URL)

	parts := []string{title, source}
	if topics != "" {
		parts = append(parts, topics)
	}
	parts = append(parts, "", body, "", link)
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// renderSaved reuses the compact rows for the bookmark collection.
func (a *App) renderSaved() string {
	header := a.renderHeader()

	savedArticles := a.saved.All()

	contentHeight := a.height - 2 - 4
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1

	var listContent string
	if len(savedArticles) == 0 {
		listContent = lipglossCenter("Nothing saved yet", listWidth-4, contentHeight)
	} else {
		listContent = a.renderRows(savedArticles, a.savedCursor, contentHeight, listWidth-4)
	}
	listPane := listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	var selected *article.Article
	if len(savedArticles) > 0 && a.savedCursor < len(savedArticles) {
		selected = &savedArticles[a.savedCursor]
	}
	previewContent := a.renderPreview(selected, previewWidth-4, contentHeight, 0)
	previewPane := previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	status := a.renderStatus("j/k move  o open  x remove  esc back  q quit")

	return a.withStatusBar(lipgloss.JoinVertical(lipgloss.Left, header, content), status)
}
