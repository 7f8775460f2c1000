package article

import (
	"fmt"
	"net/url"
	"strings"
)

// Source type values assigned by the backend.
const (
	SourceManual      = "Manual"
	SourceAISuggested = "AI Suggested"
	SourceImported    = "Imported"
)

// Status values assigned by the backend.
const (
	StatusUnread    = "Unread"
	StatusRead      = "Read"
	StatusDismissed = "Dismissed"
)

// Article is a single recommended piece of content. It is owned by the
// backend: the client never mutates one except by full replacement.
type Article struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Source     string   `json:"source"`
	Author     string   `json:"author"`
	Summary    string   `json:"summary"`
	Topics     []string `json:"topics"`
	ReadTime   int      `json:"read_time"`
	SourceType string   `json:"source_type,omitempty"`
	Status     string   `json:"status,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
}

// ReadTimeLabel formats the estimated reading time for display.
func (a Article) ReadTimeLabel() string {
	if a.ReadTime <= 0 {
		return "? min"
	}
	return fmt.Sprintf("%d min", a.ReadTime)
}

// TopicLine joins the article's topics for a single display row.
func (a Article) TopicLine() string {
	return strings.Join(a.Topics, " · ")
}

// Host returns the hostname of the article URL, without a www. prefix.
// Falls back to the raw URL when it doesn't parse.
func (a Article) Host() string {
	u, err := url.Parse(a.URL)
	if err != nil || u.Host == "" {
		return a.URL
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// Byline combines source and author for display, skipping empty or
// redundant parts.
func (a Article) Byline() string {
	switch {
	case a.Source == "" && a.Author == "":
		return a.Host()
	case a.Author == "" || a.Author == a.Source:
		return a.Source
	case a.Source == "":
		return a.Author
	default:
		return a.Source + " · " + a.Author
	}
}

// ContainsID reports whether any article in the list has the given id.
func ContainsID(articles []Article, id string) bool {
	for _, a := range articles {
		if a.ID == id {
			return true
		}
	}
	return false
}
