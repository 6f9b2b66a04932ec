package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/contentitem"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/pkg/reddit"
	"github.com/reddalert/reddalert/test/util"
)

func seedTenant(t *testing.T, db *ent.Client) *ent.Tenant {
	t.Helper()
	tenant, err := db.Tenant.Create().
		SetID(uuid.New().String()).
		SetAPIKeyHash("test-hash").
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func seedCommunity(t *testing.T, db *ent.Client, tenantID, name string, status monitoredcommunity.Status) *ent.MonitoredCommunity {
	t.Helper()
	community, err := db.MonitoredCommunity.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(name).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return community
}

// feedServer serves canned post/comment listings per community name.
func feedServer(t *testing.T, posts, comments map[string]string, failWith map[string]int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Path is /r/{name}/new.json or /r/{name}/comments.json
		parts := strings.Split(r.URL.Path, "/")
		require.Len(t, parts, 4)
		name := parts[2]
		if code, ok := failWith[name]; ok {
			w.WriteHeader(code)
			return
		}
		var body string
		if r.URL.Path == fmt.Sprintf("/r/%s/new.json", name) {
			body = posts[name]
		} else {
			body = comments[name]
		}
		if body == "" {
			body = `{"data":{"children":[]}}`
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestPoller(db *ent.Client, baseURL string) *Poller {
	return NewPoller(db, reddit.NewClient(reddit.Config{
		BaseURL:         baseURL,
		RequestTimeout:  5 * time.Second,
		RequestInterval: 0,
	}), 25)
}

func TestPollCommunityStoresAndDedupes(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedCommunity(t, db, tenant.ID, "sportsbook", monitoredcommunity.StatusActive)

	posts := map[string]string{"sportsbook": `{"data":{"children":[
		{"kind":"t3","data":{"id":"p1","title":"Arbitrage question","selftext":"is this legit","author":"alice","created_utc":1700000000}},
		{"kind":"t3","data":{"id":"p2","title":"Arbitrage question","selftext":"is this legit","author":"mirrorbot","created_utc":1700000050}}
	]}}`}
	comments := map[string]string{"sportsbook": `{"data":{"children":[
		{"kind":"t1","data":{"id":"c1","body":"check the betting lines","author":"bob","created_utc":1700000100,"parent_id":"t3_p1"}},
		{"kind":"t1","data":{"id":"c2","body":"nested answer","author":"carol","created_utc":1700000200,"parent_id":"t1_c1"}}
	]}}`}
	srv := feedServer(t, posts, comments, nil)

	poller := newTestPoller(db, srv.URL)
	created, err := poller.PollCommunity(ctx, "sportsbook")
	require.NoError(t, err)

	// p2 duplicates p1's normalized text; c2 is not top-level.
	require.Len(t, created, 2)
	assert.Equal(t, "p1", created[0].SourceID)
	assert.Equal(t, contentitem.KindPost, created[0].Kind)
	assert.Equal(t, "arbitrage question is this legit", created[0].NormalizedText)
	assert.NotEmpty(t, created[0].Digest)
	assert.Equal(t, "c1", created[1].SourceID)
	assert.Equal(t, contentitem.KindComment, created[1].Kind)

	// A second poll over the same feed stores nothing new.
	again, err := poller.PollCommunity(ctx, "sportsbook")
	require.NoError(t, err)
	assert.Empty(t, again)

	total, err := db.ContentItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// Poll time is stamped on the monitor.
	row, err := db.MonitoredCommunity.Query().
		Where(monitoredcommunity.NameEQ("sportsbook")).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, row.LastPolledAt)
}

func TestPollCommunitySkipsEmptyNormalizedText(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedCommunity(t, db, tenant.ID, "links", monitoredcommunity.StatusActive)

	// Body is a bare URL, which normalizes to the empty string.
	posts := map[string]string{"links": `{"data":{"children":[
		{"kind":"t3","data":{"id":"p1","title":"","selftext":"https://example.com/only-a-link","author":"alice","created_utc":1700000000}}
	]}}`}
	srv := feedServer(t, posts, nil, nil)

	created, err := newTestPoller(db, srv.URL).PollCommunity(ctx, "links")
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestPollCommunitySourceIDGuard(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedCommunity(t, db, tenant.ID, "sportsbook", monitoredcommunity.StatusActive)

	posts := map[string]string{"sportsbook": `{"data":{"children":[
		{"kind":"t3","data":{"id":"p1","title":"First edit","selftext":"original text","author":"alice","created_utc":1700000000}}
	]}}`}
	srv := feedServer(t, posts, nil, nil)
	poller := newTestPoller(db, srv.URL)

	created, err := poller.PollCommunity(ctx, "sportsbook")
	require.NoError(t, err)
	require.Len(t, created, 1)

	// Same source id with edited text: different digest, still skipped.
	posts["sportsbook"] = `{"data":{"children":[
		{"kind":"t3","data":{"id":"p1","title":"First edit","selftext":"completely rewritten text","author":"alice","created_utc":1700000000}}
	]}}`
	again, err := poller.PollCommunity(ctx, "sportsbook")
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestPollAllActive(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedCommunity(t, db, tenant.ID, "alpha", monitoredcommunity.StatusActive)
	seedCommunity(t, db, tenant.ID, "beta", monitoredcommunity.StatusActive)
	seedCommunity(t, db, tenant.ID, "gamma", monitoredcommunity.StatusPrivate)

	posts := map[string]string{"alpha": `{"data":{"children":[
		{"kind":"t3","data":{"id":"a1","title":"hello","selftext":"from alpha","author":"alice","created_utc":1700000000}}
	]}}`}
	srv := feedServer(t, posts, nil, map[string]int{"beta": http.StatusForbidden})

	results, err := newTestPoller(db, srv.URL).PollAllActive(ctx)
	require.NoError(t, err)

	// One failed community never fails the sweep, and non-active
	// monitors are not polled at all.
	require.Len(t, results, 2)
	assert.Len(t, results["alpha"], 1)
	assert.Empty(t, results["beta"])
	_, polled := results["gamma"]
	assert.False(t, polled)
}

func TestMarkDeleted(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedCommunity(t, db, tenant.ID, "sportsbook", monitoredcommunity.StatusActive)

	posts := map[string]string{"sportsbook": `{"data":{"children":[
		{"kind":"t3","data":{"id":"p1","title":"gone soon","selftext":"about to be removed","author":"alice","created_utc":1700000000}}
	]}}`}
	srv := feedServer(t, posts, nil, nil)
	poller := newTestPoller(db, srv.URL)

	created, err := poller.PollCommunity(ctx, "sportsbook")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.False(t, created[0].IsDeleted)

	require.NoError(t, poller.MarkDeleted(ctx, "p1"))
	row, err := db.ContentItem.Query().
		Where(contentitem.SourceIDEQ("p1")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, row.IsDeleted)

	assert.Error(t, poller.MarkDeleted(ctx, "missing"))
}

func TestDigestIsStableHex(t *testing.T) {
	d1 := Digest("arbitrage betting")
	d2 := Digest("arbitrage betting")
	d3 := Digest("arbitrage betting ")

	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, d3)
	assert.Len(t, d1, 64)
}
