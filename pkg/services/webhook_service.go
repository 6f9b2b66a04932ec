package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/ent/webhookendpoint"
)

// CreateWebhookInput carries a validated endpoint. URL has already
// passed pattern and SSRF checks at the API boundary.
type CreateWebhookInput struct {
	URL       string
	GuildName string
	IsPrimary *bool
}

// UpdateWebhookInput holds partial updates; nil fields stay untouched.
type UpdateWebhookInput struct {
	URL       *string
	GuildName *string
	IsPrimary *bool
	IsActive  *bool
}

// WebhookService manages a tenant's outbound webhook endpoints.
type WebhookService struct {
	client *ent.Client
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client) *WebhookService {
	if client == nil {
		panic("NewWebhookService: client must not be nil")
	}
	return &WebhookService{client: client}
}

// List returns the tenant's endpoints, newest first.
func (s *WebhookService) List(ctx context.Context, tenantID string) ([]*ent.WebhookEndpoint, error) {
	endpoints, err := s.client.WebhookEndpoint.Query().
		Where(webhookendpoint.TenantIDEQ(tenantID)).
		Order(ent.Desc(webhookendpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	return endpoints, nil
}

// Create adds an endpoint. A new primary demotes the previous one so
// the dispatcher always resolves a single preferred target.
func (s *WebhookService) Create(ctx context.Context, tenantID string, input CreateWebhookInput) (*ent.WebhookEndpoint, error) {
	if input.URL == "" {
		return nil, NewValidationError("url", "webhook URL is required")
	}
	isPrimary := true
	if input.IsPrimary != nil {
		isPrimary = *input.IsPrimary
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if isPrimary {
		if _, err := tx.WebhookEndpoint.Update().
			Where(
				webhookendpoint.TenantIDEQ(tenantID),
				webhookendpoint.IsPrimary(true),
			).
			SetIsPrimary(false).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to demote previous primary: %w", err)
		}
	}

	builder := tx.WebhookEndpoint.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetURL(input.URL).
		SetIsPrimary(isPrimary)
	if input.GuildName != "" {
		builder.SetGuildName(input.GuildName)
	}

	endpoint, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit webhook: %w", err)
	}
	return endpoint, nil
}

// Get returns one endpoint, scoped to its owner.
func (s *WebhookService) Get(ctx context.Context, tenantID, endpointID string) (*ent.WebhookEndpoint, error) {
	endpoint, err := s.client.WebhookEndpoint.Query().
		Where(
			webhookendpoint.IDEQ(endpointID),
			webhookendpoint.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}
	return endpoint, nil
}

// Update applies a partial update to an endpoint.
func (s *WebhookService) Update(ctx context.Context, tenantID, endpointID string, input UpdateWebhookInput) (*ent.WebhookEndpoint, error) {
	if _, err := s.Get(ctx, tenantID, endpointID); err != nil {
		return nil, err
	}

	builder := s.client.WebhookEndpoint.UpdateOneID(endpointID)
	if input.URL != nil {
		if *input.URL == "" {
			return nil, NewValidationError("url", "webhook URL is required")
		}
		builder.SetURL(*input.URL)
	}
	if input.GuildName != nil {
		builder.SetGuildName(*input.GuildName)
	}
	if input.IsPrimary != nil {
		builder.SetIsPrimary(*input.IsPrimary)
	}
	if input.IsActive != nil {
		builder.SetIsActive(*input.IsActive)
	}

	endpoint, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update webhook: %w", err)
	}
	return endpoint, nil
}

// Delete removes an endpoint.
func (s *WebhookService) Delete(ctx context.Context, tenantID, endpointID string) error {
	if _, err := s.Get(ctx, tenantID, endpointID); err != nil {
		return err
	}
	if err := s.client.WebhookEndpoint.DeleteOneID(endpointID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// MarkTested stamps a successful test delivery on the endpoint.
func (s *WebhookService) MarkTested(ctx context.Context, tenantID, endpointID string) (*ent.WebhookEndpoint, error) {
	if _, err := s.Get(ctx, tenantID, endpointID); err != nil {
		return nil, err
	}
	endpoint, err := s.client.WebhookEndpoint.UpdateOneID(endpointID).
		SetLastTestedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark webhook tested: %w", err)
	}
	return endpoint, nil
}
