// Package api is the REST client for the ReadRabbit backend. The backend
// owns all article state; this client only moves JSON back and forth.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jayeshbali/readrabbit/internal/article"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Stats is the catalog summary returned by the admin stats endpoint.
type Stats struct {
	Total        int            `json:"total_articles"`
	ByStatus     map[string]int `json:"by_status"`
	BySourceType map[string]int `json:"by_source_type"`
}

// Metadata is what the backend's LLM extraction returns for a URL. It is an
// article without identity: the backend assigns id and source_type on insert.
type Metadata struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Source   string   `json:"source"`
	Summary  string   `json:"summary"`
	Topics   []string `json:"topics"`
	ReadTime int      `json:"read_time"`
}

// Themes is the agent's analysis of the discovery input.
type Themes struct {
	MainTopics    []string `json:"main_topics"`
	KeyConcepts   []string `json:"key_concepts"`
	RelatedFields []string `json:"related_fields"`
}

// Recommendation is one agent pick, ranked by quality.
type Recommendation struct {
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Source       string   `json:"source"`
	Author       string   `json:"author"`
	Summary      string   `json:"summary"`
	Topics       []string `json:"topics"`
	ReadTime     int      `json:"read_time"`
	QualityScore int      `json:"quality_score"`
	Reason       string   `json:"reason"`
}

type DiscoverRequest struct {
	Input      string `json:"input"`
	InputType  string `json:"input_type"`
	MaxResults int    `json:"max_results"`
}

type DiscoverResult struct {
	Success           bool             `json:"success"`
	Themes            Themes           `json:"themes"`
	Recommendations   []Recommendation `json:"recommendations"`
	SearchesPerformed int              `json:"searches_performed"`
	ResultsEvaluated  int              `json:"results_evaluated"`
	Message           string           `json:"message,omitempty"`
}

type articlesResponse struct {
	Articles []article.Article `json:"articles"`
}

// RandomArticles asks the backend for a fresh random sample. The backend
// avoids recently shown articles and resets its pool when exhausted.
func (c *Client) RandomArticles(ctx context.Context, count int) ([]article.Article, error) {
	if count <= 0 {
		count = 4
	}
	var resp articlesResponse
	path := fmt.Sprintf("/api/articles/random?count=%d", count)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// Dismiss marks an article so it stops appearing in random samples.
func (c *Client) Dismiss(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/articles/"+id+"/dismiss", nil, nil)
}

// ListArticles returns the catalog, newest first, capped at limit.
func (c *Client) ListArticles(ctx context.Context, limit int) ([]article.Article, error) {
	if limit <= 0 {
		limit = 100
	}
	var resp articlesResponse
	path := fmt.Sprintf("/api/articles?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

// CreateArticle inserts an article into the catalog. The backend assigns
// the id and returns the stored record.
func (c *Client) CreateArticle(ctx context.Context, a article.Article) (article.Article, error) {
	var created article.Article
	if err := c.do(ctx, http.MethodPost, "/api/articles", a, &created); err != nil {
		return article.Article{}, err
	}
	return created, nil
}

// DeleteArticle removes an article from the catalog.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/articles/"+id, nil, nil)
}

// AdminStats returns catalog counts.
func (c *Client) AdminStats(ctx context.Context) (Stats, error) {
	var s Stats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &s); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// ExtractMetadata asks the backend's LLM to pull article metadata from a URL
// without inserting anything.
func (c *Client) ExtractMetadata(ctx context.Context, rawURL string) (Metadata, error) {
	var m Metadata
	body := map[string]string{"url": rawURL}
	if err := c.do(ctx, http.MethodPost, "/api/admin/extract-metadata", body, &m); err != nil {
		return Metadata{}, err
	}
	return m, nil
}

// AddArticleSmart extracts metadata for a URL and inserts the result in one
// round trip.
func (c *Client) AddArticleSmart(ctx context.Context, rawURL string) (article.Article, error) {
	var a article.Article
	body := map[string]string{"url": rawURL}
	if err := c.do(ctx, http.MethodPost, "/api/admin/add-article-smart", body, &a); err != nil {
		return article.Article{}, err
	}
	return a, nil
}

// Discover runs the backend's discovery agent against the given input
// (a URL or free text). Agent runs involve web search and LLM calls, so
// the caller should pass a generous context deadline.
func (c *Client) Discover(ctx context.Context, req DiscoverRequest) (*DiscoverResult, error) {
	var result DiscoverResult
	if err := c.do(ctx, http.MethodPost, "/api/agent/discover", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveRecommendation inserts an agent recommendation into the catalog as an
// AI-suggested article.
func (c *Client) SaveRecommendation(ctx context.Context, rec Recommendation) (article.Article, error) {
	var a article.Article
	if err := c.do(ctx, http.MethodPost, "/api/agent/save-recommendation", rec, &a); err != nil {
		return article.Article{}, err
	}
	return a, nil
}

// do issues one JSON request. No retries: failures surface to the caller,
// which shows a message and lets the user re-trigger the action.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("readrabbit API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("readrabbit API %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
