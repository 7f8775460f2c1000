package tui

import (
	"github.com/jayeshbali/readrabbit/internal/api"
	"github.com/jayeshbali/readrabbit/internal/article"
)

// dealtMsg carries a fresh random sample from the backend.
type dealtMsg struct {
	articles []article.Article
}

// dismissedMsg reports a completed dismiss. replacement is nil when the
// backend had nothing new to offer.
type dismissedMsg struct {
	id          string
	replacement *article.Article
}

type apiErrMsg struct {
	err error
}

type discoverDoneMsg struct {
	result *api.DiscoverResult
}

type recSavedMsg struct {
	url     string
	article article.Article
}

type catalogMsg struct {
	articles []article.Article
}

type statsMsg struct {
	stats api.Stats
}

type articleDeletedMsg struct {
	id string
}

type articleAddedMsg struct {
	article article.Article
}
