// Package dispatch delivers pending matches to tenant chat webhooks,
// batching bursts into digest messages and falling back to email
// notification when delivery fails.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reddalert/reddalert/ent"
	entmatch "github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/tenant"
	"github.com/reddalert/reddalert/ent/webhookendpoint"
	"github.com/reddalert/reddalert/pkg/config"
)

// Summary reports the outcome of one dispatch run.
type Summary struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// alertBatch is a group of matches destined for a single webhook.
type alertBatch struct {
	tenantID   string
	webhookURL string
	matches    []*ent.Match
	isBatch    bool
}

// Dispatcher sends chat alerts for pending matches.
type Dispatcher struct {
	db             *ent.Client
	sender         *WebhookSender
	notifier       FailureNotifier
	batchThreshold int
	batchWindow    time.Duration
	logger         *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil notifier defaults to the
// email logging stub.
func NewDispatcher(db *ent.Client, cfg config.DispatcherConfig, notifier FailureNotifier) *Dispatcher {
	if notifier == nil {
		notifier = NewEmailStubNotifier()
	}
	return &Dispatcher{
		db:             db,
		sender:         NewWebhookSender(cfg.MaxAttempts, cfg.RetryBackoffs),
		notifier:       notifier,
		batchThreshold: cfg.BatchThreshold,
		batchWindow:    cfg.BatchWindow,
		logger:         slog.Default().With("component", "dispatcher"),
	}
}

// DispatchPending finds pending matches, batches them per tenant,
// sends the alerts, and updates their status. Status updates commit as
// one transaction at the end of the run.
func (d *Dispatcher) DispatchPending(ctx context.Context) (Summary, error) {
	pending, err := d.db.Match.Query().
		Where(entmatch.AlertStatusEQ(entmatch.AlertStatusPending)).
		Order(ent.Asc(entmatch.FieldDetectedAt)).
		All(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load pending matches: %w", err)
	}
	if len(pending) == 0 {
		return Summary{}, nil
	}

	batches, err := d.batchMatches(ctx, pending)
	if err != nil {
		return Summary{}, err
	}

	var sent, failed []*ent.Match
	for _, batch := range batches {
		var payload Payload
		if batch.isBatch {
			payload = BatchEmbed(batch.matches)
		} else {
			payload = SingleEmbed(batch.matches[0])
		}

		if d.sender.Send(ctx, batch.webhookURL, payload) {
			sent = append(sent, batch.matches...)
		} else {
			failed = append(failed, batch.matches...)
		}
	}

	if err := d.commitOutcomes(ctx, sent, failed); err != nil {
		return Summary{}, err
	}

	summary := Summary{Sent: len(sent), Failed: len(failed), Total: len(pending)}
	d.logger.Info("Dispatch run finished",
		"sent", summary.Sent, "failed", summary.Failed, "total", summary.Total)
	return summary, nil
}

// batchMatches groups pending matches by tenant and applies the
// batching rule: a tenant with at least batchThreshold matches whose
// detected_at timestamps all fall inside batchWindow gets one digest
// message. Everything else goes out individually. Tenants without a
// usable webhook are skipped.
func (d *Dispatcher) batchMatches(ctx context.Context, matches []*ent.Match) ([]alertBatch, error) {
	byTenant := make(map[string][]*ent.Match)
	var tenantOrder []string
	for _, m := range matches {
		if _, ok := byTenant[m.TenantID]; !ok {
			tenantOrder = append(tenantOrder, m.TenantID)
		}
		byTenant[m.TenantID] = append(byTenant[m.TenantID], m)
	}

	var batches []alertBatch
	for _, tenantID := range tenantOrder {
		tenantMatches := byTenant[tenantID]

		webhookURL, err := d.resolveWebhook(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		if webhookURL == "" {
			d.logger.Warn("No active webhook for tenant, skipping", "tenant", tenantID)
			continue
		}

		if len(tenantMatches) >= d.batchThreshold && d.withinWindow(tenantMatches) {
			batches = append(batches, alertBatch{
				tenantID:   tenantID,
				webhookURL: webhookURL,
				matches:    tenantMatches,
				isBatch:    true,
			})
			continue
		}

		for _, m := range tenantMatches {
			batches = append(batches, alertBatch{
				tenantID:   tenantID,
				webhookURL: webhookURL,
				matches:    []*ent.Match{m},
			})
		}
	}
	return batches, nil
}

// withinWindow reports whether all detection timestamps fall inside
// the batch window. Matches arrive ordered by detected_at.
func (d *Dispatcher) withinWindow(matches []*ent.Match) bool {
	first := matches[0].DetectedAt
	last := matches[len(matches)-1].DetectedAt
	return last.Sub(first) <= d.batchWindow
}

// resolveWebhook returns the tenant's primary active endpoint URL, or
// any active one, or "" when the tenant has no usable endpoint.
func (d *Dispatcher) resolveWebhook(ctx context.Context, tenantID string) (string, error) {
	endpoint, err := d.db.WebhookEndpoint.Query().
		Where(
			webhookendpoint.TenantIDEQ(tenantID),
			webhookendpoint.IsActive(true),
			webhookendpoint.IsPrimary(true),
		).
		First(ctx)
	if err == nil {
		return endpoint.URL, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to resolve webhook for tenant %s: %w", tenantID, err)
	}

	endpoint, err = d.db.WebhookEndpoint.Query().
		Where(
			webhookendpoint.TenantIDEQ(tenantID),
			webhookendpoint.IsActive(true),
		).
		First(ctx)
	if err == nil {
		return endpoint.URL, nil
	}
	if ent.IsNotFound(err) {
		return "", nil
	}
	return "", fmt.Errorf("failed to resolve webhook for tenant %s: %w", tenantID, err)
}

// commitOutcomes applies status transitions for one dispatch run in a
// single transaction, then emits fallback notifications for failures.
func (d *Dispatcher) commitOutcomes(ctx context.Context, sent, failed []*ent.Match) error {
	if len(sent) == 0 && len(failed) == 0 {
		return nil
	}

	tx, err := d.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for _, m := range sent {
		if err := tx.Match.UpdateOneID(m.ID).
			SetAlertStatus(entmatch.AlertStatusSent).
			SetAlertSentAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark match %s sent: %w", m.ID, err)
		}
	}
	for _, m := range failed {
		if err := tx.Match.UpdateOneID(m.ID).
			SetAlertStatus(entmatch.AlertStatusFailed).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to mark match %s failed: %w", m.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dispatch outcomes: %w", err)
	}

	for _, m := range failed {
		d.handleFailure(ctx, m)
	}
	return nil
}

// handleFailure logs the exhausted delivery and notifies the tenant's
// contact address when one is on file.
func (d *Dispatcher) handleFailure(ctx context.Context, m *ent.Match) {
	d.logger.Error("Alert delivery failed",
		"match", m.ID, "phrase", m.MatchedPhrase, "community", m.Community)

	owner, err := d.db.Tenant.Query().
		Where(tenant.IDEQ(m.TenantID)).
		Only(ctx)
	if err != nil {
		d.logger.Warn("Failed to load tenant for failure notification",
			"tenant", m.TenantID, "error", err)
		return
	}
	if owner.Email == nil || *owner.Email == "" {
		d.logger.Warn("No email on file for tenant, cannot send failure notification",
			"tenant", m.TenantID)
		return
	}
	d.notifier.NotifyFailure(ctx, *owner.Email, m)
}
