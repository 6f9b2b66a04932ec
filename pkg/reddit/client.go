// Package reddit fetches new posts and top-level comments from the
// public JSON feeds of monitored communities.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/reddalert/reddalert/pkg/version"
)

// DefaultBaseURL is the public upstream endpoint.
const DefaultBaseURL = "https://www.reddit.com"

// Kind distinguishes posts from comments.
type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Item is one fetched post or top-level comment, mapped into the
// shape the ingestor persists.
type Item struct {
	SourceID  string
	Community string
	Kind      Kind
	Title     string // posts only
	Body      string
	Author    string
	CreatedAt time.Time
}

// Config holds upstream client settings.
type Config struct {
	// BaseURL of the upstream site. Defaults to DefaultBaseURL.
	BaseURL string
	// UserAgent sent on every request. Defaults to version.Full().
	UserAgent string
	// RequestTimeout bounds each HTTP GET.
	RequestTimeout time.Duration
	// RequestInterval is the minimum spacing between requests,
	// enforced for upstream fairness.
	RequestInterval time.Duration
}

// DefaultConfig returns the built-in upstream client defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		UserAgent:       version.Full(),
		RequestTimeout:  30 * time.Second,
		RequestInterval: 1 * time.Second,
	}
}

// Client is a shared HTTP client for the upstream JSON feeds. A single
// rate limiter spaces all requests, so concurrent callers still
// respect the per-request interval.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates an upstream feed client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.Full()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestInterval > 0 {
		limit = rate.Every(cfg.RequestInterval)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     slog.Default().With("component", "reddit-client"),
	}
}

// FetchNewPosts returns up to limit recent posts from a community.
func (c *Client) FetchNewPosts(ctx context.Context, community string, limit int) ([]Item, error) {
	url := fmt.Sprintf("%s/r/%s/new.json?limit=%d&raw_json=1", c.baseURL, community, limit)
	lst, err := c.fetchListing(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch posts for r/%s: %w", community, err)
	}

	items := make([]Item, 0, len(lst.Data.Children))
	for _, child := range lst.Data.Children {
		d := child.Data
		items = append(items, Item{
			SourceID:  d.ID,
			Community: community,
			Kind:      KindPost,
			Title:     d.Title,
			Body:      d.Selftext,
			Author:    authorOrDeleted(d.Author),
			CreatedAt: time.Unix(int64(d.CreatedUTC), 0).UTC(),
		})
	}
	return items, nil
}

// FetchComments returns up to limit recent top-level comments from a
// community. Nested replies (parent prefix "t1_") are skipped.
func (c *Client) FetchComments(ctx context.Context, community string, limit int) ([]Item, error) {
	url := fmt.Sprintf("%s/r/%s/comments.json?limit=%d&raw_json=1", c.baseURL, community, limit)
	lst, err := c.fetchListing(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch comments for r/%s: %w", community, err)
	}

	items := make([]Item, 0, len(lst.Data.Children))
	for _, child := range lst.Data.Children {
		d := child.Data
		if !isTopLevel(d.ParentID) {
			continue
		}
		items = append(items, Item{
			SourceID:  d.ID,
			Community: community,
			Kind:      KindComment,
			Body:      d.Body,
			Author:    authorOrDeleted(d.Author),
			CreatedAt: time.Unix(int64(d.CreatedUTC), 0).UTC(),
		})
	}
	return items, nil
}

func (c *Client) fetchListing(ctx context.Context, url string) (*listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var lst listing
	if err := json.Unmarshal(body, &lst); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	return &lst, nil
}

// listing is the subset of the upstream feed shape we consume.
type listing struct {
	Data struct {
		Children []struct {
			Kind string    `json:"kind"`
			Data childData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type childData struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Body       string  `json:"body"`
	Author     string  `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
	ParentID   string  `json:"parent_id"`
}

func authorOrDeleted(author string) string {
	if author == "" {
		return "[deleted]"
	}
	return author
}

// isTopLevel reports whether a comment hangs directly off a post
// (parent id prefix "t3_") rather than another comment.
func isTopLevel(parentID string) bool {
	return len(parentID) >= 3 && parentID[:3] == "t3_"
}
