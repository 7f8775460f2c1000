package history

import (
	"path/filepath"
	"testing"
	"time"
)

func testLog(t *testing.T) *Log {
	t.Helper()
	dir := t.TempDir()
	l, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("opening test log: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := testLog(t)
	now := time.Now()

	events := []Event{
		{ArticleID: "1", Title: "A", Source: "Wired", Action: ActionViewed, CreatedAt: now.Add(-2 * time.Hour)},
		{ArticleID: "2", Title: "B", Source: "Farnam Street", Action: ActionSaved, CreatedAt: now.Add(-1 * time.Hour)},
		{ArticleID: "3", Title: "C", Source: "Paul Graham", Action: ActionOpened, CreatedAt: now},
	}
	for _, e := range events {
		if err := l.Record(e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := l.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Newest first
	if got[0].ArticleID != "3" {
		t.Errorf("expected newest first, got article %s", got[0].ArticleID)
	}
	if got[0].Action != ActionOpened {
		t.Errorf("unexpected action %s", got[0].Action)
	}
}

func TestRecentLimit(t *testing.T) {
	l := testLog(t)
	for i := 0; i < 5; i++ {
		l.Record(Event{ArticleID: "x", Action: ActionViewed})
	}

	got, err := l.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 events, got %d", len(got))
	}
}

func TestRecordDefaultsCreatedAt(t *testing.T) {
	l := testLog(t)
	if err := l.Record(Event{ArticleID: "1", Action: ActionDismissed}); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := l.Recent(1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be filled in")
	}
}

func TestCounts(t *testing.T) {
	l := testLog(t)
	l.Record(Event{ArticleID: "1", Action: ActionViewed})
	l.Record(Event{ArticleID: "2", Action: ActionViewed})
	l.Record(Event{ArticleID: "1", Action: ActionSaved})

	counts, err := l.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[ActionViewed] != 2 {
		t.Errorf("expected 2 viewed, got %d", counts[ActionViewed])
	}
	if counts[ActionSaved] != 1 {
		t.Errorf("expected 1 saved, got %d", counts[ActionSaved])
	}
}

func TestPrune(t *testing.T) {
	l := testLog(t)
	l.Record(Event{ArticleID: "old", Action: ActionViewed, CreatedAt: time.Now().Add(-100 * 24 * time.Hour)})
	l.Record(Event{ArticleID: "new", Action: ActionViewed, CreatedAt: time.Now()})

	deleted, err := l.Prune(90 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 pruned event, got %d", deleted)
	}

	got, _ := l.Recent(10)
	if len(got) != 1 || got[0].ArticleID != "new" {
		t.Errorf("expected only the new event to remain, got %v", got)
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer l.Close()

	l.Record(Event{ArticleID: "1", Action: ActionViewed})

	count, size, err := l.Stats(path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 event, got %d", count)
	}
	if size <= 0 {
		t.Errorf("expected positive db size, got %d", size)
	}
}
