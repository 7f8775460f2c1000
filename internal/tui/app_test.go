package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jayeshbali/readrabbit/internal/article"
	"github.com/jayeshbali/readrabbit/internal/config"
	"github.com/jayeshbali/readrabbit/internal/saved"
)

func testApp(t *testing.T) *App {
	t.Helper()
	store, err := saved.Open(filepath.Join(t.TempDir(), "saved.json"))
	if err != nil {
		t.Fatalf("open saved store: %v", err)
	}
	a := NewApp(RunOpts{
		Cfg:   &config.Config{ServerURL: "http://localhost:8000"},
		Saved: store,
	})
	a.width = 100
	a.height = 30
	return a
}

func dealt(ids ...string) []article.Article {
	out := make([]article.Article, 0, len(ids))
	for _, id := range ids {
		out = append(out, article.Article{ID: id, Title: "Article " + id, URL: "https://example.com/" + id})
	}
	return out
}

func TestReconcileDismissSplicesReplacementInPlace(t *testing.T) {
	a := testApp(t)
	a.articles = dealt("1", "2", "3")
	a.cursor = 1

	repl := article.Article{ID: "9", Title: "Article 9"}
	a.reconcileDismiss("2", &repl)

	if len(a.articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(a.articles))
	}
	if a.articles[1].ID != "9" {
		t.Errorf("slot 1 holds %q, want replacement 9", a.articles[1].ID)
	}
	if a.cursor != 1 {
		t.Errorf("cursor moved to %d, want 1", a.cursor)
	}
}

func TestReconcileDismissShrinksWithoutReplacement(t *testing.T) {
	a := testApp(t)
	a.articles = dealt("1", "2", "3")
	a.cursor = 2

	a.reconcileDismiss("3", nil)

	if len(a.articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(a.articles))
	}
	if a.cursor != 1 {
		t.Errorf("cursor = %d, want clamped to 1", a.cursor)
	}
}

func TestReconcileDismissRejectsDuplicateReplacement(t *testing.T) {
	a := testApp(t)
	a.articles = dealt("1", "2", "3")

	// Replacement already on screen: drop the slot instead of doubling 1
	repl := a.articles[0]
	a.reconcileDismiss("2", &repl)

	if len(a.articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(a.articles))
	}
	if article.ContainsID(a.articles[1:], a.articles[0].ID) {
		t.Error("dealt set contains a duplicate id")
	}
}

func TestReconcileDismissIgnoresUnknownID(t *testing.T) {
	a := testApp(t)
	a.articles = dealt("1", "2")

	a.reconcileDismiss("nope", nil)

	if len(a.articles) != 2 {
		t.Errorf("got %d articles, want 2 untouched", len(a.articles))
	}
}

func TestSaveCurrentDeduplicates(t *testing.T) {
	a := testApp(t)
	a.articles = dealt("1", "2")
	a.cursor = 0

	a.saveCurrent()
	if a.saved.Len() != 1 {
		t.Fatalf("saved %d articles, want 1", a.saved.Len())
	}
	if a.note != "saved" {
		t.Errorf("note = %q, want %q", a.note, "saved")
	}

	a.saveCurrent()
	if a.saved.Len() != 1 {
		t.Errorf("saved %d articles after duplicate save, want 1", a.saved.Len())
	}
	if a.note != "already saved" {
		t.Errorf("note = %q, want %q", a.note, "already saved")
	}
}

func TestModeSwitchKeepsDealtSet(t *testing.T) {
	a := testApp(t)
	a.mode = modeDeck
	a.viewMode = modeDeck
	a.articles = dealt("1", "2", "3")
	a.cursor = 2

	// Toggle to list and back; the set and position must survive
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	if a.mode != modeList {
		t.Fatalf("mode = %d, want list", a.mode)
	}
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	if a.mode != modeDeck {
		t.Fatalf("mode = %d, want deck", a.mode)
	}
	if len(a.articles) != 3 || a.cursor != 2 {
		t.Errorf("dealt set changed across view toggle: %d articles, cursor %d", len(a.articles), a.cursor)
	}
}

func TestMaybeDealOnlyFetchesWhenEmpty(t *testing.T) {
	a := testApp(t)

	if cmd := a.maybeDeal(); cmd == nil {
		t.Error("empty set: expected a deal command")
	}
	a.loading = false

	a.articles = dealt("1")
	if cmd := a.maybeDeal(); cmd != nil {
		t.Error("non-empty set: expected no deal command")
	}
}

func TestDealtMsgResetsCursor(t *testing.T) {
	a := testApp(t)
	a.loading = true
	a.cursor = 3
	a.previewScroll = 5

	a.Update(dealtMsg{articles: dealt("1", "2")})

	if a.loading {
		t.Error("still loading after dealtMsg")
	}
	if a.cursor != 0 || a.previewScroll != 0 {
		t.Errorf("cursor=%d scroll=%d, want both reset to 0", a.cursor, a.previewScroll)
	}
	if len(a.articles) != 2 {
		t.Errorf("got %d articles, want 2", len(a.articles))
	}
}

func TestErrorStaysUntilKeypress(t *testing.T) {
	a := testApp(t)
	a.mode = modeDeck
	a.loading = true

	a.Update(apiErrMsg{err: errors.New("connection refused")})
	if a.err == nil {
		t.Fatal("error not recorded")
	}
	if a.loading {
		t.Error("loading not cleared by error")
	}

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if a.err != nil {
		t.Error("error not cleared on keypress")
	}
}

func TestArticleDeletedClampsCatalogCursor(t *testing.T) {
	a := testApp(t)
	a.mode = modeAdmin
	a.catalog = dealt("1", "2", "3")
	a.adminCursor = 2

	a.Update(articleDeletedMsg{id: "3"})

	if len(a.catalog) != 2 {
		t.Fatalf("got %d catalog articles, want 2", len(a.catalog))
	}
	if a.adminCursor != 1 {
		t.Errorf("adminCursor = %d, want 1", a.adminCursor)
	}
}

func TestRecommendationSavedOnce(t *testing.T) {
	a := testApp(t)

	a.Update(recSavedMsg{url: "https://example.com/rec", article: article.Article{Title: "Rec"}})

	if !a.savedRecs["https://example.com/rec"] {
		t.Error("recommendation not marked as saved")
	}
}
