package feedimport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jayeshbali/readrabbit/internal/article"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example Blog</title>
  <link>https://example.com</link>
  <item>
    <title>First Post</title>
    <link>https://example.com/first</link>
    <description>&lt;p&gt;A post about &lt;b&gt;testing&lt;/b&gt;.&lt;/p&gt;</description>
    <category>Testing</category>
    <category>Go</category>
  </item>
  <item>
    <title>Second Post</title>
    <link>https://example.com/second</link>
    <description>Another post.</description>
  </item>
  <item>
    <title></title>
    <link>https://example.com/untitled</link>
  </item>
</channel>
</rss>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	articles, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// Untitled item is skipped
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	first := articles[0]
	if first.Title != "First Post" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.Source != "Example Blog" {
		t.Errorf("unexpected source %q", first.Source)
	}
	if first.SourceType != article.SourceImported {
		t.Errorf("expected source_type Imported, got %q", first.SourceType)
	}
	if strings.Contains(first.Summary, "<") {
		t.Errorf("expected HTML stripped from summary, got %q", first.Summary)
	}
	if len(first.Topics) != 2 || first.Topics[0] != "Testing" {
		t.Errorf("unexpected topics %v", first.Topics)
	}
	if first.ReadTime < 1 {
		t.Errorf("expected read time of at least 1 minute, got %d", first.ReadTime)
	}
}

func TestFetchBadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 404 feed")
	}
}

func TestTopicsCappedAtFour(t *testing.T) {
	got := topics([]string{"a", "b", "", "c", "d", "e"})
	if len(got) != 4 {
		t.Errorf("expected 4 topics, got %d: %v", len(got), got)
	}
}

func TestEstimateReadTime(t *testing.T) {
	short := estimateReadTime("a few words only", "")
	if short != 1 {
		t.Errorf("expected floor of 1 minute, got %d", short)
	}

	long := estimateReadTime(strings.Repeat("word ", 1000), "")
	if long != 5 {
		t.Errorf("expected 5 minutes for 1000 words, got %d", long)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
	}
	for _, tt := range tests {
		got := stripHTML(tt.input)
		if got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
