package dispatch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/contentitem"
	entmatch "github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/pkg/config"
	"github.com/reddalert/reddalert/pkg/ingest"
	"github.com/reddalert/reddalert/test/util"
)

type fixture struct {
	db      *ent.Client
	tenant  *ent.Tenant
	rule    *ent.KeywordRule
	content *ent.ContentItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant, err := db.Tenant.Create().
		SetID(uuid.New().String()).
		SetAPIKeyHash("test-hash").
		SetEmail("owner@example.com").
		Save(ctx)
	require.NoError(t, err)

	rule, err := db.KeywordRule.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenant.ID).
		SetPhrases([]string{"arbitrage"}).
		Save(ctx)
	require.NoError(t, err)

	text := "arbitrage betting content"
	content, err := db.ContentItem.Create().
		SetID(uuid.New().String()).
		SetSourceID("p1").
		SetCommunity("sportsbook").
		SetKind(contentitem.KindPost).
		SetBody(text).
		SetAuthor("alice").
		SetNormalizedText(text).
		SetDigest(ingest.Digest(text)).
		SetSourceCreatedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	return &fixture{db: db, tenant: tenant, rule: rule, content: content}
}

func (f *fixture) seedMatch(t *testing.T, detectedAt time.Time) *ent.Match {
	t.Helper()
	m, err := f.db.Match.Create().
		SetID(uuid.New().String()).
		SetTenantID(f.tenant.ID).
		SetRuleID(f.rule.ID).
		SetContentID(f.content.ID).
		SetKind(entmatch.KindPost).
		SetCommunity("sportsbook").
		SetMatchedPhrase("arbitrage").
		SetSnippet("arbitrage betting content").
		SetProximityScore(1.0).
		SetRedditURL("https://reddit.com/r/sportsbook/comments/p1").
		SetAuthor("alice").
		SetDetectedAt(detectedAt).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func (f *fixture) seedWebhook(t *testing.T, url string, primary, active bool) {
	t.Helper()
	_, err := f.db.WebhookEndpoint.Create().
		SetID(uuid.New().String()).
		SetTenantID(f.tenant.ID).
		SetURL(url).
		SetIsPrimary(primary).
		SetIsActive(active).
		Save(context.Background())
	require.NoError(t, err)
}

// webhookRecorder captures every payload POSTed to it.
type webhookRecorder struct {
	mu       sync.Mutex
	payloads []Payload
	status   int
}

func newWebhookRecorder(t *testing.T, status int) (*webhookRecorder, string) {
	t.Helper()
	rec := &webhookRecorder{status: status}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var p Payload
		require.NoError(t, json.Unmarshal(body, &p))
		rec.mu.Lock()
		rec.payloads = append(rec.payloads, p)
		rec.mu.Unlock()
		w.WriteHeader(rec.status)
	}))
	t.Cleanup(srv.Close)
	return rec, srv.URL
}

func newTestDispatcher(db *ent.Client) *Dispatcher {
	cfg := config.Default().Dispatcher
	cfg.RetryBackoffs = []time.Duration{0, 0}
	return NewDispatcher(db, cfg, nil)
}

func TestDispatchPendingSingleMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, url := newWebhookRecorder(t, http.StatusNoContent)
	f.seedWebhook(t, url, true, true)
	m := f.seedMatch(t, time.Now().UTC())

	summary, err := newTestDispatcher(f.db).DispatchPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Sent: 1, Failed: 0, Total: 1}, summary)

	require.Len(t, rec.payloads, 1)
	assert.Equal(t, "Keyword Match in r/sportsbook", rec.payloads[0].Embeds[0].Title)

	updated, err := f.db.Match.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entmatch.AlertStatusSent, updated.AlertStatus)
	require.NotNil(t, updated.AlertSentAt)
}

func TestDispatchPendingBatchesBurst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, url := newWebhookRecorder(t, http.StatusOK)
	f.seedWebhook(t, url, true, true)

	base := time.Now().UTC().Add(-time.Minute)
	f.seedMatch(t, base)
	f.seedMatch(t, base.Add(30*time.Second))
	f.seedMatch(t, base.Add(60*time.Second))

	summary, err := newTestDispatcher(f.db).DispatchPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Sent: 3, Failed: 0, Total: 3}, summary)

	// Three matches inside the window collapse into one digest message.
	require.Len(t, rec.payloads, 1)
	assert.Equal(t, "3 New Keyword Matches", rec.payloads[0].Embeds[0].Title)
	assert.Len(t, rec.payloads[0].Embeds[0].Fields, 3)
}

func TestDispatchPendingSpreadOutMatchesGoIndividually(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, url := newWebhookRecorder(t, http.StatusOK)
	f.seedWebhook(t, url, true, true)

	base := time.Now().UTC().Add(-time.Hour)
	f.seedMatch(t, base)
	f.seedMatch(t, base.Add(10*time.Minute))
	f.seedMatch(t, base.Add(20*time.Minute))

	summary, err := newTestDispatcher(f.db).DispatchPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Sent: 3, Failed: 0, Total: 3}, summary)

	// Outside the window each match gets its own message.
	require.Len(t, rec.payloads, 3)
	for _, p := range rec.payloads {
		assert.Equal(t, "Keyword Match in r/sportsbook", p.Embeds[0].Title)
	}
}

func TestDispatchPendingFailureMarksFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rec, url := newWebhookRecorder(t, http.StatusInternalServerError)
	f.seedWebhook(t, url, true, true)
	m := f.seedMatch(t, time.Now().UTC())

	summary, err := newTestDispatcher(f.db).DispatchPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Sent: 0, Failed: 1, Total: 1}, summary)

	// All three attempts hit the webhook.
	assert.Len(t, rec.payloads, 3)

	updated, err := f.db.Match.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entmatch.AlertStatusFailed, updated.AlertStatus)
	assert.Nil(t, updated.AlertSentAt)
}

func TestDispatchPendingSkipsTenantWithoutWebhook(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := f.seedMatch(t, time.Now().UTC())

	summary, err := newTestDispatcher(f.db).DispatchPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Sent: 0, Failed: 0, Total: 1}, summary)

	// The match stays pending for the next run.
	updated, err := f.db.Match.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entmatch.AlertStatusPending, updated.AlertStatus)
}

func TestDispatchPendingPrefersPrimaryEndpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	primaryRec, primaryURL := newWebhookRecorder(t, http.StatusOK)
	backupRec, backupURL := newWebhookRecorder(t, http.StatusOK)
	f.seedWebhook(t, backupURL, false, true)
	f.seedWebhook(t, primaryURL, true, true)
	f.seedMatch(t, time.Now().UTC())

	_, err := newTestDispatcher(f.db).DispatchPending(ctx)
	require.NoError(t, err)

	assert.Len(t, primaryRec.payloads, 1)
	assert.Empty(t, backupRec.payloads)
}

func TestDispatchPendingFallsBackToAnyActiveEndpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inactiveRec, inactiveURL := newWebhookRecorder(t, http.StatusOK)
	activeRec, activeURL := newWebhookRecorder(t, http.StatusOK)
	f.seedWebhook(t, inactiveURL, true, false)
	f.seedWebhook(t, activeURL, false, true)
	f.seedMatch(t, time.Now().UTC())

	_, err := newTestDispatcher(f.db).DispatchPending(ctx)
	require.NoError(t, err)

	assert.Empty(t, inactiveRec.payloads)
	assert.Len(t, activeRec.payloads, 1)
}

func TestDispatchPendingNothingToDo(t *testing.T) {
	f := newFixture(t)

	summary, err := newTestDispatcher(f.db).DispatchPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}
