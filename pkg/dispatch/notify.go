package dispatch

import (
	"context"
	"log/slog"

	"github.com/reddalert/reddalert/ent"
)

// FailureNotifier delivers a fallback notification when webhook
// delivery has been exhausted for a match.
type FailureNotifier interface {
	NotifyFailure(ctx context.Context, email string, match *ent.Match)
}

// EmailStubNotifier logs the notification that a real mail integration
// would send.
//
// TODO: replace with an SMTP or provider-API sender once an outbound
// mail account exists for the service.
type EmailStubNotifier struct {
	logger *slog.Logger
}

// NewEmailStubNotifier creates the logging fallback notifier.
func NewEmailStubNotifier() *EmailStubNotifier {
	return &EmailStubNotifier{
		logger: slog.Default().With("component", "email-notifier"),
	}
}

// NotifyFailure logs what the fallback email would contain.
func (n *EmailStubNotifier) NotifyFailure(ctx context.Context, email string, match *ent.Match) {
	n.logger.Info("EMAIL STUB: would send failure notification",
		"to", email,
		"match", match.ID,
		"phrase", match.MatchedPhrase,
		"community", match.Community,
		"url", match.RedditURL)
}
