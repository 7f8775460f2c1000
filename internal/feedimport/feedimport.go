// Package feedimport turns an RSS or Atom feed into catalog articles so a
// whole blog can be imported in one command.
package feedimport

import (
	"context"
	"fmt"
	"strings"

	"github.com/jayeshbali/readrabbit/internal/article"
	"github.com/mmcdole/gofeed"
)

// Fetch parses the feed at feedURL and maps its entries to articles with
// source_type Imported. The backend assigns ids on insert.
func Fetch(ctx context.Context, feedURL string) ([]article.Article, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", feedURL, err)
	}

	source := feed.Title
	articles := make([]article.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" || item.Title == "" {
			continue
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		desc = truncate(stripHTML(desc), 300)

		author := ""
		if item.Author != nil {
			author = item.Author.Name
		}

		articles = append(articles, article.Article{
			Title:      item.Title,
			URL:        item.Link,
			Source:     source,
			Author:     author,
			Summary:    desc,
			Topics:     topics(item.Categories),
			ReadTime:   estimateReadTime(item.Content, item.Description),
			SourceType: article.SourceImported,
		})
	}
	return articles, nil
}

// topics keeps at most four feed categories as topic tags.
func topics(categories []string) []string {
	var out []string
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		out = append(out, c)
		if len(out) == 4 {
			break
		}
	}
	return out
}

// estimateReadTime guesses minutes from the longest text the feed gives us,
// at 200 words per minute, floored at 1.
func estimateReadTime(content, description string) int {
	text := content
	if len(description) > len(text) {
		text = description
	}
	words := len(strings.Fields(stripHTML(text)))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
