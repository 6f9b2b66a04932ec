package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/contentitem"
	entmatch "github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/pkg/ingest"
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

func seedMonitor(t *testing.T, db *ent.Client, tenantID, name string) {
	t.Helper()
	_, err := db.MonitoredCommunity.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(name).
		SetStatus(monitoredcommunity.StatusActive).
		Save(context.Background())
	require.NoError(t, err)
}

func seedRule(t *testing.T, db *ent.Client, tenantID string, phrases []string, mutate func(*ent.KeywordRuleCreate)) *ent.KeywordRule {
	t.Helper()
	builder := db.KeywordRule.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetPhrases(phrases)
	if mutate != nil {
		mutate(builder)
	}
	rule, err := builder.Save(context.Background())
	require.NoError(t, err)
	return rule
}

func seedContent(t *testing.T, db *ent.Client, community, sourceID, normalizedText string) *ent.ContentItem {
	t.Helper()
	item, err := db.ContentItem.Create().
		SetID(uuid.New().String()).
		SetSourceID(sourceID).
		SetCommunity(community).
		SetKind(contentitem.KindPost).
		SetBody(normalizedText).
		SetAuthor("alice").
		SetNormalizedText(normalizedText).
		SetDigest(ingest.Digest(normalizedText)).
		SetSourceCreatedAt(time.Now().UTC()).
		Save(context.Background())
	require.NoError(t, err)
	return item
}

func TestProcessContentCreatesPendingMatches(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedMonitor(t, db, tenant.ID, "sportsbook")
	seedRule(t, db, tenant.ID, []string{"arbitrage"}, nil)

	item := seedContent(t, db, "sportsbook", "p1", "looking into arbitrage betting strategies")

	matches, err := NewEngine(db).ProcessContent(ctx, item)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, tenant.ID, m.TenantID)
	assert.Equal(t, item.ID, m.ContentID)
	assert.Equal(t, "arbitrage", m.MatchedPhrase)
	assert.Equal(t, entmatch.AlertStatusPending, m.AlertStatus)
	assert.Equal(t, "https://reddit.com/r/sportsbook/comments/p1", m.RedditURL)
	assert.Equal(t, "alice", m.Author)
	assert.Empty(t, m.AlsoMatched)
	assert.NotEmpty(t, m.Snippet)
}

func TestProcessContentAlsoMatchedSnapshot(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedMonitor(t, db, tenant.ID, "sportsbook")
	seedRule(t, db, tenant.ID, []string{"arbitrage"}, nil)
	seedRule(t, db, tenant.ID, []string{"betting"}, nil)

	item := seedContent(t, db, "sportsbook", "p1", "arbitrage betting is risky")

	matches, err := NewEngine(db).ProcessContent(ctx, item)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	byPhrase := map[string][]string{}
	for _, m := range matches {
		byPhrase[m.MatchedPhrase] = m.AlsoMatched
	}
	assert.Equal(t, []string{"betting"}, byPhrase["arbitrage"])
	assert.Equal(t, []string{"arbitrage"}, byPhrase["betting"])
}

func TestProcessContentScopesAlsoMatchedPerTenant(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenantA := seedTenant(t, db)
	seedMonitor(t, db, tenantA.ID, "sportsbook")
	seedRule(t, db, tenantA.ID, []string{"arbitrage"}, nil)
	seedRule(t, db, tenantA.ID, []string{"betting"}, nil)

	tenantB := seedTenant(t, db)
	seedMonitor(t, db, tenantB.ID, "sportsbook")
	seedRule(t, db, tenantB.ID, []string{"arbitrage"}, nil)

	item := seedContent(t, db, "sportsbook", "p1", "arbitrage betting is risky")

	matches, err := NewEngine(db).ProcessContent(ctx, item)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for _, m := range matches {
		if m.TenantID == tenantB.ID {
			// Tenant B only matched one phrase, so nothing else to report.
			assert.Empty(t, m.AlsoMatched)
		}
	}
}

func TestProcessContentSkipsSilencedAndInactiveRules(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedMonitor(t, db, tenant.ID, "sportsbook")
	seedRule(t, db, tenant.ID, []string{"arbitrage"}, func(b *ent.KeywordRuleCreate) {
		b.SetIsActive(false)
	})
	seedRule(t, db, tenant.ID, []string{"betting"}, func(b *ent.KeywordRuleCreate) {
		b.SetSilencedUntil(time.Now().Add(time.Hour))
	})
	// Expired silence counts as active again.
	seedRule(t, db, tenant.ID, []string{"risky"}, func(b *ent.KeywordRuleCreate) {
		b.SetSilencedUntil(time.Now().Add(-time.Hour))
	})

	item := seedContent(t, db, "sportsbook", "p1", "arbitrage betting is risky")

	matches, err := NewEngine(db).ProcessContent(ctx, item)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "risky", matches[0].MatchedPhrase)
}

func TestProcessContentNoMonitorsNoWrites(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedRule(t, db, tenant.ID, []string{"arbitrage"}, nil)
	// Tenant monitors nothing, so its rules never fire.

	item := seedContent(t, db, "sportsbook", "p1", "arbitrage betting is risky")

	matches, err := NewEngine(db).ProcessContent(ctx, item)
	require.NoError(t, err)
	assert.Empty(t, matches)

	count, err := db.Match.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProcessBatch(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	tenant := seedTenant(t, db)
	seedMonitor(t, db, tenant.ID, "sportsbook")
	seedRule(t, db, tenant.ID, []string{"arbitrage"}, nil)

	items := []*ent.ContentItem{
		seedContent(t, db, "sportsbook", "p1", "arbitrage here"),
		seedContent(t, db, "sportsbook", "p2", "nothing relevant"),
		seedContent(t, db, "sportsbook", "p3", "more arbitrage talk"),
	}

	matches, err := NewEngine(db).ProcessBatch(ctx, items)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
