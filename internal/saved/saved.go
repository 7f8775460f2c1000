// Package saved keeps the user's bookmark collection as a single JSON blob
// on disk. The whole collection is rewritten on every change; there is no
// locking across processes, so the last writer wins.
package saved

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jayeshbali/readrabbit/internal/article"
)

type Store struct {
	path     string
	articles []article.Article
}

// Open loads the saved set from path. A missing file is an empty set.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading saved set: %w", err)
	}

	if err := json.Unmarshal(data, &s.articles); err != nil {
		return nil, fmt.Errorf("parsing saved set %s: %w", path, err)
	}
	return s, nil
}

// Add appends the article unless one with the same id is already saved.
// Returns true when the article was added.
func (s *Store) Add(a article.Article) (bool, error) {
	if s.Contains(a.ID) {
		return false, nil
	}
	s.articles = append(s.articles, a)
	if err := s.persist(); err != nil {
		s.articles = s.articles[:len(s.articles)-1]
		return false, err
	}
	return true, nil
}

// Remove deletes the article with the given id. Returns true when
// something was removed.
func (s *Store) Remove(id string) (bool, error) {
	for i, a := range s.articles {
		if a.ID == id {
			removed := a
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			if err := s.persist(); err != nil {
				// Restore on write failure
				s.articles = append(s.articles[:i], append([]article.Article{removed}, s.articles[i:]...)...)
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Clear empties the saved set.
func (s *Store) Clear() error {
	old := s.articles
	s.articles = nil
	if err := s.persist(); err != nil {
		s.articles = old
		return err
	}
	return nil
}

func (s *Store) Contains(id string) bool {
	return article.ContainsID(s.articles, id)
}

// All returns the saved articles in insertion order.
func (s *Store) All() []article.Article {
	out := make([]article.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

func (s *Store) Len() int {
	return len(s.articles)
}

func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.MarshalIndent(s.articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding saved set: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing saved set: %w", err)
	}
	return nil
}
