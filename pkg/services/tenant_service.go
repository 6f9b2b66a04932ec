// Package services contains the domain services between the HTTP API
// and the store.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reddalert/reddalert/ent"
)

// TenantService handles tenant registration and API-key authentication.
type TenantService struct {
	client *ent.Client
}

// NewTenantService creates a new TenantService.
func NewTenantService(client *ent.Client) *TenantService {
	if client == nil {
		panic("NewTenantService: client must not be nil")
	}
	return &TenantService{client: client}
}

// Register creates a tenant and returns it together with the plaintext
// API key. The key is shown exactly once; only its hash is stored.
func (s *TenantService) Register(ctx context.Context, email string) (*ent.Tenant, string, error) {
	apiKey, err := GenerateAPIKey()
	if err != nil {
		return nil, "", err
	}
	hash, err := HashAPIKey(apiKey)
	if err != nil {
		return nil, "", err
	}

	builder := s.client.Tenant.Create().
		SetID(uuid.New().String()).
		SetAPIKeyHash(hash)
	if email != "" {
		builder.SetEmail(email)
	}

	tenant, err := builder.Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant, apiKey, nil
}

// Authenticate resolves an API key to its tenant. Every stored hash is
// checked so timing does not reveal whether a key prefix exists.
func (s *TenantService) Authenticate(ctx context.Context, apiKey string) (*ent.Tenant, error) {
	if apiKey == "" {
		return nil, ErrUnauthorized
	}

	tenants, err := s.client.Tenant.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}

	var found *ent.Tenant
	for _, tenant := range tenants {
		if VerifyAPIKey(apiKey, tenant.APIKeyHash) && found == nil {
			found = tenant
		}
	}
	if found == nil {
		return nil, ErrUnauthorized
	}
	return found, nil
}

// Get returns a tenant by id.
func (s *TenantService) Get(ctx context.Context, id string) (*ent.Tenant, error) {
	tenant, err := s.client.Tenant.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

// UpdateEmail sets or clears the tenant's fallback contact address.
func (s *TenantService) UpdateEmail(ctx context.Context, id, email string) (*ent.Tenant, error) {
	builder := s.client.Tenant.UpdateOneID(id)
	if email == "" {
		builder.ClearEmail()
	} else {
		builder.SetEmail(email)
	}
	tenant, err := builder.Save(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return tenant, nil
}
