package scheduler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/contentitem"
	entmatch "github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/pkg/config"
	"github.com/reddalert/reddalert/pkg/dispatch"
	"github.com/reddalert/reddalert/pkg/engine"
	"github.com/reddalert/reddalert/pkg/ingest"
	"github.com/reddalert/reddalert/pkg/reddit"
	"github.com/reddalert/reddalert/test/util"
)

func TestNextCleanupTime(t *testing.T) {
	loc := time.UTC

	before := time.Date(2026, 8, 25, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 8, 25, 3, 0, 0, 0, loc), nextCleanupTime(before, 3))

	after := time.Date(2026, 8, 25, 14, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 8, 26, 3, 0, 0, 0, loc), nextCleanupTime(after, 3))

	// Exactly at the boundary schedules tomorrow, never an immediate
	// double fire.
	exact := time.Date(2026, 8, 25, 3, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 8, 26, 3, 0, 0, 0, loc), nextCleanupTime(exact, 3))
}

func seedOldContent(t *testing.T, db *ent.Client, sourceID string, fetchedAt time.Time) *ent.ContentItem {
	t.Helper()
	item, err := db.ContentItem.Create().
		SetID(uuid.New().String()).
		SetSourceID(sourceID).
		SetCommunity("sportsbook").
		SetKind(contentitem.KindPost).
		SetBody("text " + sourceID).
		SetAuthor("alice").
		SetNormalizedText("text " + sourceID).
		SetDigest(ingest.Digest("text " + sourceID)).
		SetSourceCreatedAt(fetchedAt).
		SetFetchedAt(fetchedAt).
		Save(context.Background())
	require.NoError(t, err)
	return item
}

func TestCleanupOldData(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant, err := db.Tenant.Create().
		SetID(uuid.New().String()).
		SetAPIKeyHash("test-hash").
		Save(ctx)
	require.NoError(t, err)
	rule, err := db.KeywordRule.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenant.ID).
		SetPhrases([]string{"arbitrage"}).
		Save(ctx)
	require.NoError(t, err)

	old := time.Now().UTC().AddDate(0, 0, -100)
	fresh := time.Now().UTC().AddDate(0, 0, -1)

	oldItem := seedOldContent(t, db, "old1", old)
	freshItem := seedOldContent(t, db, "new1", fresh)

	for _, tc := range []struct {
		item       *ent.ContentItem
		detectedAt time.Time
	}{{oldItem, old}, {freshItem, fresh}} {
		_, err := db.Match.Create().
			SetID(uuid.New().String()).
			SetTenantID(tenant.ID).
			SetRuleID(rule.ID).
			SetContentID(tc.item.ID).
			SetKind(entmatch.KindPost).
			SetCommunity("sportsbook").
			SetMatchedPhrase("arbitrage").
			SetSnippet("snippet").
			SetProximityScore(1.0).
			SetRedditURL("https://reddit.com/r/sportsbook/comments/" + tc.item.SourceID).
			SetAuthor("alice").
			SetDetectedAt(tc.detectedAt).
			Save(ctx)
		require.NoError(t, err)
	}

	result, err := CleanupOldData(ctx, db, 90)
	require.NoError(t, err)
	assert.Equal(t, RetentionResult{MatchesDeleted: 1, ContentDeleted: 1}, result)

	remainingContent, err := db.ContentItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remainingContent)

	remainingMatches, err := db.Match.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remainingMatches)
}

func TestPipelineRunEndToEnd(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	// Upstream feed with one matching post.
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/r/sportsbook/new.json" {
			_, _ = w.Write([]byte(`{"data":{"children":[
				{"kind":"t3","data":{"id":"p1","title":"Arbitrage found","selftext":"easy arbitrage opportunity","author":"alice","created_utc":1700000000}}
			]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"children":[]}}`))
	}))
	t.Cleanup(feed.Close)

	var delivered []dispatch.Payload
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var p dispatch.Payload
		require.NoError(t, json.Unmarshal(body, &p))
		delivered = append(delivered, p)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(hook.Close)

	tenant, err := db.Tenant.Create().
		SetID(uuid.New().String()).
		SetAPIKeyHash("test-hash").
		Save(ctx)
	require.NoError(t, err)
	_, err = db.MonitoredCommunity.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenant.ID).
		SetName("sportsbook").
		SetStatus(monitoredcommunity.StatusActive).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.KeywordRule.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenant.ID).
		SetPhrases([]string{"arbitrage"}).
		Save(ctx)
	require.NoError(t, err)
	_, err = db.WebhookEndpoint.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenant.ID).
		SetURL(hook.URL).
		Save(ctx)
	require.NoError(t, err)

	poller := ingest.NewPoller(db, reddit.NewClient(reddit.Config{
		BaseURL:         feed.URL,
		RequestTimeout:  5 * time.Second,
		RequestInterval: 0,
	}), 25)
	dispCfg := config.Default().Dispatcher
	dispCfg.RetryBackoffs = []time.Duration{0, 0}
	pipeline := NewPipeline(poller, engine.NewEngine(db), dispatch.NewDispatcher(db, dispCfg, nil))

	summary, err := pipeline.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.CommunitiesPolled)
	assert.Equal(t, 1, summary.NewContent)
	assert.Equal(t, 1, summary.MatchesFound)
	assert.Equal(t, 1, summary.AlertsSent)
	assert.Zero(t, summary.AlertsFailed)

	require.Len(t, delivered, 1)
	assert.Equal(t, "Keyword Match in r/sportsbook", delivered[0].Embeds[0].Title)

	sent, err := db.Match.Query().
		Where(entmatch.AlertStatusEQ(entmatch.AlertStatusSent)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	// A second tick finds nothing new and sends nothing.
	again, err := pipeline.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.NewContent)
	assert.Zero(t, again.AlertsSent)
	assert.Len(t, delivered, 1)
}

func TestSchedulerStartStop(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)

	cfg := config.Default()
	cfg.Poller.PollInterval = time.Hour

	poller := ingest.NewPoller(db, reddit.NewClient(reddit.Config{
		BaseURL:         "http://127.0.0.1:0",
		RequestTimeout:  time.Second,
		RequestInterval: 0,
	}), 25)
	dispCfg := cfg.Dispatcher
	dispCfg.RetryBackoffs = []time.Duration{0, 0}
	pipeline := NewPipeline(poller, engine.NewEngine(db), dispatch.NewDispatcher(db, dispCfg, nil))

	s := NewScheduler(db, pipeline, cfg)
	s.Start(context.Background())

	// The startup run completes against an empty database; Stop waits
	// for it and returns cleanly.
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// Stop twice is a no-op.
	s.Stop()
}
