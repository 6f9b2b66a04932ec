package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/test/util"
)

const testWebhookURL = "https://discord.com/api/webhooks/123456789/token-abc"

func TestWebhookCreateDemotesPreviousPrimary(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewWebhookService(db)

	first, err := svc.Create(ctx, tenant.ID, CreateWebhookInput{URL: testWebhookURL})
	require.NoError(t, err)
	assert.True(t, first.IsPrimary)
	assert.True(t, first.IsActive)

	second, err := svc.Create(ctx, tenant.ID, CreateWebhookInput{
		URL:       "https://discord.com/api/webhooks/987654321/token-def",
		GuildName: "Alerts HQ",
	})
	require.NoError(t, err)
	assert.True(t, second.IsPrimary)
	require.NotNil(t, second.GuildName)
	assert.Equal(t, "Alerts HQ", *second.GuildName)

	reloaded, err := svc.Get(ctx, tenant.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPrimary)
}

func TestWebhookCreateNonPrimaryLeavesPrimaryAlone(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewWebhookService(db)

	first, err := svc.Create(ctx, tenant.ID, CreateWebhookInput{URL: testWebhookURL})
	require.NoError(t, err)

	notPrimary := false
	second, err := svc.Create(ctx, tenant.ID, CreateWebhookInput{
		URL:       "https://discord.com/api/webhooks/987654321/token-def",
		IsPrimary: &notPrimary,
	})
	require.NoError(t, err)
	assert.False(t, second.IsPrimary)

	reloaded, err := svc.Get(ctx, tenant.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsPrimary)
}

func TestWebhookUpdateAndDelete(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewWebhookService(db)

	endpoint, err := svc.Create(ctx, tenant.ID, CreateWebhookInput{URL: testWebhookURL})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, tenant.ID, endpoint.ID, UpdateWebhookInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	empty := ""
	_, err = svc.Update(ctx, tenant.ID, endpoint.ID, UpdateWebhookInput{URL: &empty})
	assert.True(t, IsValidationError(err))

	require.NoError(t, svc.Delete(ctx, tenant.ID, endpoint.ID))
	_, err = svc.Get(ctx, tenant.ID, endpoint.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWebhookMarkTested(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewWebhookService(db)

	endpoint, err := svc.Create(ctx, tenant.ID, CreateWebhookInput{URL: testWebhookURL})
	require.NoError(t, err)
	assert.Nil(t, endpoint.LastTestedAt)

	tested, err := svc.MarkTested(ctx, tenant.ID, endpoint.ID)
	require.NoError(t, err)
	assert.NotNil(t, tested.LastTestedAt)
}

func TestWebhookTenantScoping(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	owner := registerTenant(t, db)
	other := registerTenant(t, db)
	svc := NewWebhookService(db)

	endpoint, err := svc.Create(ctx, owner.ID, CreateWebhookInput{URL: testWebhookURL})
	require.NoError(t, err)

	_, err = svc.Get(ctx, other.ID, endpoint.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, other.ID, endpoint.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
