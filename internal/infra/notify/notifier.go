package notify

import (
	"context"
	"log/slog"

	"ideagate/internal/usecase/commands"
)

// SlogNotifier emits transition events to the structured log. Delivery to
// the real channel (mail, push) is an external consumer of this stream;
// best-effort and at-least-once are acceptable here, duplicates are a UX
// nuisance rather than a correctness problem.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Notify(_ context.Context, ev commands.NotificationEvent) error {
	n.logger.Info("access event",
		"kind", string(ev.Kind),
		"idea_id", ev.IdeaID,
		"requester_id", ev.RequesterID,
		"creator_id", ev.CreatorID,
	)
	return nil
}
