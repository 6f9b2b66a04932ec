package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
	entmatch "github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/test/util"
)

type matchFixture struct {
	db     *ent.Client
	tenant *ent.Tenant
	rule   *ent.KeywordRule
}

func newMatchFixture(t *testing.T) *matchFixture {
	t.Helper()
	db, _ := util.SetupTestDatabase(t)
	tenant := registerTenant(t, db)
	rule, err := NewKeywordService(db).Create(context.Background(), tenant.ID, CreateKeywordRuleInput{
		Phrases: []string{"arbitrage betting"},
	})
	require.NoError(t, err)
	return &matchFixture{db: db, tenant: tenant, rule: rule}
}

func (f *matchFixture) seedMatch(t *testing.T, community string, detectedAt time.Time, status entmatch.AlertStatus) *ent.Match {
	t.Helper()
	ctx := context.Background()
	sourceID := fmt.Sprintf("t3_%s", uuid.New().String()[:8])
	content, err := f.db.ContentItem.Create().
		SetID(uuid.New().String()).
		SetSourceID(sourceID).
		SetCommunity(community).
		SetKind("post").
		SetBody("found an arbitrage betting angle").
		SetAuthor("tipster").
		SetNormalizedText("found an arbitrage betting angle " + sourceID).
		SetDigest(uuid.New().String()).
		SetSourceCreatedAt(detectedAt).
		Save(ctx)
	require.NoError(t, err)

	match, err := f.db.Match.Create().
		SetID(uuid.New().String()).
		SetTenantID(f.tenant.ID).
		SetRuleID(f.rule.ID).
		SetContentID(content.ID).
		SetKind(entmatch.KindPost).
		SetCommunity(community).
		SetMatchedPhrase("arbitrage betting").
		SetSnippet("found an arbitrage betting angle").
		SetProximityScore(1.0).
		SetRedditURL(fmt.Sprintf("https://reddit.com/r/%s/comments/%s", community, sourceID)).
		SetAuthor("tipster").
		SetDetectedAt(detectedAt).
		SetAlertStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return match
}

func TestMatchListPaginationAndOrder(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()
	svc := NewMatchService(f.db)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		f.seedMatch(t, "sportsbook", base.Add(time.Duration(i)*time.Minute), entmatch.AlertStatusPending)
	}

	page, err := svc.List(ctx, f.tenant.ID, MatchFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Len(t, page.Items, 2)
	// Newest first.
	assert.True(t, page.Items[0].DetectedAt.After(page.Items[1].DetectedAt))

	last, err := svc.List(ctx, f.tenant.ID, MatchFilter{}, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)

	// Out-of-range inputs are clamped to sane values.
	clamped, err := svc.List(ctx, f.tenant.ID, MatchFilter{}, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Page)
	assert.Equal(t, 100, clamped.PerPage)
}

func TestMatchListFilters(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()
	svc := NewMatchService(f.db)

	old := time.Now().UTC().Add(-48 * time.Hour)
	recent := time.Now().UTC().Add(-time.Hour)
	f.seedMatch(t, "sportsbook", old, entmatch.AlertStatusSent)
	f.seedMatch(t, "sportsbook", recent, entmatch.AlertStatusPending)
	f.seedMatch(t, "gambling", recent, entmatch.AlertStatusPending)

	byCommunity, err := svc.List(ctx, f.tenant.ID, MatchFilter{Community: "gambling"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, byCommunity.Total)

	byStatus, err := svc.List(ctx, f.tenant.ID, MatchFilter{AlertStatus: "sent"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, byStatus.Total)

	_, err = svc.List(ctx, f.tenant.ID, MatchFilter{AlertStatus: "bounced"}, 1, 20)
	assert.True(t, IsValidationError(err))

	since, err := svc.List(ctx, f.tenant.ID, MatchFilter{Since: time.Now().UTC().Add(-24 * time.Hour)}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, since.Total)

	byRule, err := svc.List(ctx, f.tenant.ID, MatchFilter{RuleID: f.rule.ID}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, byRule.Total)
}

func TestMatchGetScoping(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()
	svc := NewMatchService(f.db)

	match := f.seedMatch(t, "sportsbook", time.Now().UTC(), entmatch.AlertStatusPending)

	got, err := svc.Get(ctx, f.tenant.ID, match.ID)
	require.NoError(t, err)
	assert.Equal(t, match.ID, got.ID)

	other := registerTenant(t, f.db)
	_, err = svc.Get(ctx, other.ID, match.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatchStats(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()
	svc := NewMatchService(f.db)

	now := time.Now().UTC()
	f.seedMatch(t, "sportsbook", now.Add(-time.Hour), entmatch.AlertStatusSent)
	f.seedMatch(t, "sportsbook", now.AddDate(0, 0, -3), entmatch.AlertStatusSent)
	f.seedMatch(t, "gambling", now.AddDate(0, 0, -30), entmatch.AlertStatusSent)

	stats, err := svc.Stats(ctx, f.tenant.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalMatches)
	assert.Equal(t, 1, stats.MatchesLast24h)
	assert.Equal(t, 2, stats.MatchesLast7d)

	require.Len(t, stats.TopRules, 1)
	assert.Equal(t, f.rule.ID, stats.TopRules[0].RuleID)
	assert.Equal(t, 3, stats.TopRules[0].MatchCount)

	require.Len(t, stats.TopCommunities, 2)
	assert.Equal(t, "sportsbook", stats.TopCommunities[0].Community)
	assert.Equal(t, 2, stats.TopCommunities[0].MatchCount)
}

func TestMatchStatsEmpty(t *testing.T) {
	f := newMatchFixture(t)

	stats, err := NewMatchService(f.db).Stats(context.Background(), f.tenant.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalMatches)
	assert.Empty(t, stats.TopRules)
	assert.Empty(t, stats.TopCommunities)
}
