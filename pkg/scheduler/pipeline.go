// Package scheduler drives the periodic poll/match/alert pipeline and
// the daily data-retention cleanup.
package scheduler

import (
	"context"
	"log/slog"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/pkg/dispatch"
	"github.com/reddalert/reddalert/pkg/engine"
	"github.com/reddalert/reddalert/pkg/ingest"
)

// RunSummary reports the counts of one full pipeline run.
type RunSummary struct {
	CommunitiesPolled int `json:"communities_polled"`
	NewContent        int `json:"new_content"`
	MatchesFound      int `json:"matches_found"`
	AlertsSent        int `json:"alerts_sent"`
	AlertsFailed      int `json:"alerts_failed"`
}

// Pipeline executes the full poll, match, alert cycle in one call.
// Stages run strictly in order: ingest commits fully before matching,
// which commits fully before dispatch.
type Pipeline struct {
	poller     *ingest.Poller
	engine     *engine.Engine
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

// NewPipeline wires the three stages together.
func NewPipeline(poller *ingest.Poller, matchEngine *engine.Engine, dispatcher *dispatch.Dispatcher) *Pipeline {
	return &Pipeline{
		poller:     poller,
		engine:     matchEngine,
		dispatcher: dispatcher,
		logger:     slog.Default().With("component", "pipeline"),
	}
}

// Run executes one pipeline tick and returns its summary. Dispatch
// always runs, so matches left pending by an earlier failed run still
// go out.
func (p *Pipeline) Run(ctx context.Context) (RunSummary, error) {
	var summary RunSummary

	results, err := p.poller.PollAllActive(ctx)
	if err != nil {
		return summary, err
	}
	summary.CommunitiesPolled = len(results)

	var newItems []*ent.ContentItem
	for _, items := range results {
		newItems = append(newItems, items...)
	}
	summary.NewContent = len(newItems)
	p.logger.Info("Poll complete",
		"communities", summary.CommunitiesPolled, "new_content", summary.NewContent)

	if len(newItems) > 0 {
		matches, err := p.engine.ProcessBatch(ctx, newItems)
		if err != nil {
			return summary, err
		}
		summary.MatchesFound = len(matches)
		p.logger.Info("Matching complete", "matches", summary.MatchesFound)
	}

	dispatched, err := p.dispatcher.DispatchPending(ctx)
	if err != nil {
		return summary, err
	}
	summary.AlertsSent = dispatched.Sent
	summary.AlertsFailed = dispatched.Failed
	p.logger.Info("Alerting complete",
		"sent", summary.AlertsSent, "failed", summary.AlertsFailed)

	return summary, nil
}
