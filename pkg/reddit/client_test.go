package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postsFixture = `{
  "data": {
    "children": [
      {"kind": "t3", "data": {"id": "abc1", "title": "Arbitrage guide", "selftext": "how to start", "author": "alice", "created_utc": 1700000000}},
      {"kind": "t3", "data": {"id": "abc2", "title": "Media post", "selftext": "", "author": "", "created_utc": 1700000100}}
    ]
  }
}`

const commentsFixture = `{
  "data": {
    "children": [
      {"kind": "t1", "data": {"id": "c1", "body": "top level reply", "author": "bob", "created_utc": 1700000200, "parent_id": "t3_abc1"}},
      {"kind": "t1", "data": {"id": "c2", "body": "nested reply", "author": "carol", "created_utc": 1700000300, "parent_id": "t1_c1"}}
    ]
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:         srv.URL,
		UserAgent:       "reddalert-test/1.0",
		RequestTimeout:  5 * time.Second,
		RequestInterval: 0, // no pacing in tests
	})
}

func TestFetchNewPosts(t *testing.T) {
	var gotPath, gotUA, gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(postsFixture))
	})

	items, err := client.FetchNewPosts(context.Background(), "sportsbook", 25)
	require.NoError(t, err)

	assert.Equal(t, "/r/sportsbook/new.json", gotPath)
	assert.Equal(t, "limit=25&raw_json=1", gotQuery)
	assert.Equal(t, "reddalert-test/1.0", gotUA)

	require.Len(t, items, 2)
	assert.Equal(t, "abc1", items[0].SourceID)
	assert.Equal(t, KindPost, items[0].Kind)
	assert.Equal(t, "Arbitrage guide", items[0].Title)
	assert.Equal(t, "how to start", items[0].Body)
	assert.Equal(t, "alice", items[0].Author)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), items[0].CreatedAt)

	// Null/absent author maps to the tombstone value.
	assert.Equal(t, "[deleted]", items[1].Author)
}

func TestFetchCommentsKeepsOnlyTopLevel(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/sportsbook/comments.json", r.URL.Path)
		_, _ = w.Write([]byte(commentsFixture))
	})

	items, err := client.FetchComments(context.Background(), "sportsbook", 25)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].SourceID)
	assert.Equal(t, KindComment, items[0].Kind)
	assert.Equal(t, "top level reply", items[0].Body)
}

func TestFetchErrorStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.FetchNewPosts(context.Background(), "private_sub", 25)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestFetchBadJSON(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>rate limited</html>"))
	})

	_, err := client.FetchComments(context.Background(), "sportsbook", 25)
	require.Error(t, err)
}

func TestRequestPacing(t *testing.T) {
	var times []time.Time
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		times = append(times, time.Now())
		_, _ = w.Write([]byte(postsFixture))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:         srv.URL,
		RequestInterval: 50 * time.Millisecond,
	})

	ctx := context.Background()
	_, err := client.FetchNewPosts(ctx, "a", 5)
	require.NoError(t, err)
	_, err = client.FetchNewPosts(ctx, "a", 5)
	require.NoError(t, err)

	require.Len(t, times, 2)
	assert.GreaterOrEqual(t, times[1].Sub(times[0]), 40*time.Millisecond)
}
