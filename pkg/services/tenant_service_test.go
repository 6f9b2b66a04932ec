package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddalert/reddalert/test/util"
)

func TestTenantRegisterAndAuthenticate(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTenantService(db)

	tenant, apiKey, err := svc.Register(ctx, "owner@example.com")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(apiKey, "rda_"))
	require.NotNil(t, tenant.Email)
	assert.Equal(t, "owner@example.com", *tenant.Email)
	// The plaintext key is never stored.
	assert.NotEqual(t, apiKey, tenant.APIKeyHash)

	authed, err := svc.Authenticate(ctx, apiKey)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, authed.ID)
}

func TestTenantAuthenticateRejectsBadKeys(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTenantService(db)

	_, apiKey, err := svc.Register(ctx, "")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(ctx, apiKey+"tampered")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTenantUpdateEmail(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewTenantService(db)

	tenant, _, err := svc.Register(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, tenant.Email)

	updated, err := svc.UpdateEmail(ctx, tenant.ID, "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "new@example.com", *updated.Email)

	cleared, err := svc.UpdateEmail(ctx, tenant.ID, "")
	require.NoError(t, err)
	assert.Nil(t, cleared.Email)
}

func TestTenantGetNotFound(t *testing.T) {
	db, _ := util.SetupTestDatabase(t)

	_, err := NewTenantService(db).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
