package article

import "testing"

func TestReadTimeLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{12, "12 min"},
		{1, "1 min"},
		{0, "? min"},
		{-3, "? min"},
	}
	for _, tt := range tests {
		a := Article{ReadTime: tt.minutes}
		if got := a.ReadTimeLabel(); got != tt.want {
			t.Errorf("ReadTimeLabel(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTopicLine(t *testing.T) {
	a := Article{Topics: []string{"AI", "Technology", "Future"}}
	if got := a.TopicLine(); got != "AI · Technology · Future" {
		t.Errorf("unexpected topic line: %q", got)
	}

	empty := Article{}
	if got := empty.TopicLine(); got != "" {
		t.Errorf("expected empty topic line, got %q", got)
	}
}

func TestHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.newyorker.com/magazine/some-piece", "newyorker.com"},
		{"http://paulgraham.com/greatwork.html", "paulgraham.com"},
		{"not a url", "not a url"},
	}
	for _, tt := range tests {
		a := Article{URL: tt.url}
		if got := a.Host(); got != tt.want {
			t.Errorf("Host(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestByline(t *testing.T) {
	tests := []struct {
		source, author string
		want           string
	}{
		{"The New Yorker", "James Somers", "The New Yorker · James Somers"},
		{"Paul Graham", "Paul Graham", "Paul Graham"},
		{"Wired", "", "Wired"},
		{"", "Kevin Kelly", "Kevin Kelly"},
	}
	for _, tt := range tests {
		a := Article{Source: tt.source, Author: tt.author}
		if got := a.Byline(); got != tt.want {
			t.Errorf("Byline(%q, %q) = %q, want %q", tt.source, tt.author, got, tt.want)
		}
	}
}

func TestBylineFallsBackToHost(t *testing.T) {
	a := Article{URL: "https://kk.org/thetechnium/1000-true-fans/"}
	if got := a.Byline(); got != "kk.org" {
		t.Errorf("expected host fallback, got %q", got)
	}
}

func TestContainsID(t *testing.T) {
	articles := []Article{{ID: "1"}, {ID: "2"}}
	if !ContainsID(articles, "2") {
		t.Error("expected to find id 2")
	}
	if ContainsID(articles, "3") {
		t.Error("did not expect to find id 3")
	}
	if ContainsID(nil, "1") {
		t.Error("empty list should contain nothing")
	}
}
