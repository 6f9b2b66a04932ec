package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/test/util"
)

func TestCommunityCreateAndDuplicate(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewCommunityService(db)

	community, err := svc.Create(ctx, tenant.ID, CreateCommunityInput{Name: "sportsbook"})
	require.NoError(t, err)

	assert.Equal(t, "sportsbook", community.Name)
	assert.Equal(t, monitoredcommunity.StatusActive, community.Status)
	assert.True(t, community.IncludeMediaPosts)
	assert.True(t, community.DedupeCrossposts)
	assert.False(t, community.FilterBots)

	_, err = svc.Create(ctx, tenant.ID, CreateCommunityInput{Name: "sportsbook"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Another tenant may monitor the same community.
	other := registerTenant(t, db)
	_, err = svc.Create(ctx, other.ID, CreateCommunityInput{Name: "sportsbook"})
	require.NoError(t, err)
}

func TestCommunityUpdateStatus(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewCommunityService(db)

	community, err := svc.Create(ctx, tenant.ID, CreateCommunityInput{Name: "sportsbook"})
	require.NoError(t, err)

	status := "private"
	updated, err := svc.Update(ctx, tenant.ID, community.ID, UpdateCommunityInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, monitoredcommunity.StatusPrivate, updated.Status)

	bad := "banned"
	_, err = svc.Update(ctx, tenant.ID, community.ID, UpdateCommunityInput{Status: &bad})
	assert.True(t, IsValidationError(err))
}

func TestCommunityDelete(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	tenant := registerTenant(t, db)
	svc := NewCommunityService(db)

	community, err := svc.Create(ctx, tenant.ID, CreateCommunityInput{Name: "sportsbook"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tenant.ID, community.ID))

	listed, err := svc.List(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.Delete(ctx, tenant.ID, community.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
