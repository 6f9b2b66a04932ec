package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/keywordrule"
	"github.com/reddalert/reddalert/test/util"
)

func registerTenant(t *testing.T, db *ent.Client) *ent.Tenant {
	t.Helper()
	tenant, _, err := NewTenantService(db).Register(context.Background(), "")
	require.NoError(t, err)
	return tenant
}

func TestKeywordCreateDefaults(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewKeywordService(db)

	rule, err := svc.Create(ctx, tenant.ID, CreateKeywordRuleInput{
		Phrases: []string{"arbitrage betting"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"arbitrage betting"}, rule.Phrases)
	assert.Equal(t, 15, rule.ProximityWindow)
	assert.False(t, rule.RequireOrder)
	assert.False(t, rule.UseStemming)
	assert.Equal(t, keywordrule.ExclusionScopeAnywhere, rule.ExclusionScope)
	assert.True(t, rule.IsActive)
}

func TestKeywordCreateValidation(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewKeywordService(db)

	_, err := svc.Create(ctx, tenant.ID, CreateKeywordRuleInput{})
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(ctx, tenant.ID, CreateKeywordRuleInput{
		Phrases:         []string{"arbitrage"},
		ProximityWindow: -1,
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(ctx, tenant.ID, CreateKeywordRuleInput{
		Phrases:        []string{"arbitrage"},
		ExclusionScope: "everywhere",
	})
	assert.True(t, IsValidationError(err))
}

func TestKeywordUpdatePartial(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewKeywordService(db)

	rule, err := svc.Create(ctx, tenant.ID, CreateKeywordRuleInput{
		Phrases: []string{"arbitrage"},
	})
	require.NoError(t, err)

	window := 5
	order := true
	updated, err := svc.Update(ctx, tenant.ID, rule.ID, UpdateKeywordRuleInput{
		ProximityWindow: &window,
		RequireOrder:    &order,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.ProximityWindow)
	assert.True(t, updated.RequireOrder)
	// Untouched fields keep their values.
	assert.Equal(t, []string{"arbitrage"}, updated.Phrases)
}

func TestKeywordSoftDeleteHidesFromList(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewKeywordService(db)

	rule, err := svc.Create(ctx, tenant.ID, CreateKeywordRuleInput{
		Phrases: []string{"arbitrage"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, tenant.ID, rule.ID))

	listed, err := svc.List(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The row still exists, just inactive.
	row, err := db.KeywordRule.Get(ctx, rule.ID)
	require.NoError(t, err)
	assert.False(t, row.IsActive)
}

func TestKeywordSilence(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewKeywordService(db)

	rule, err := svc.Create(ctx, tenant.ID, CreateKeywordRuleInput{
		Phrases: []string{"arbitrage"},
	})
	require.NoError(t, err)

	until := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	silenced, err := svc.Silence(ctx, tenant.ID, rule.ID, until)
	require.NoError(t, err)
	require.NotNil(t, silenced.SilencedUntil)
	assert.WithinDuration(t, until, *silenced.SilencedUntil, time.Second)

	cleared, err := svc.Silence(ctx, tenant.ID, rule.ID, time.Time{})
	require.NoError(t, err)
	assert.Nil(t, cleared.SilencedUntil)
}

func TestKeywordTenantScoping(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	owner := registerTenant(t, db)
	other := registerTenant(t, db)
	svc := NewKeywordService(db)

	rule, err := svc.Create(ctx, owner.ID, CreateKeywordRuleInput{
		Phrases: []string{"arbitrage"},
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, other.ID, rule.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.SoftDelete(ctx, other.ID, rule.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
