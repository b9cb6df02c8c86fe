package notify

import (
	"context"

	"github.com/sspletnik/gossipbot/internal/stats"
)

// QueuePublisher pushes a notification ID onto the delivery queue.
type QueuePublisher interface {
	Publish(ctx context.Context, notificationID string) error
}

// Service resolves a subject username to a previously seen user and enqueues
// one outbox notification for them. Everything here is best-effort from the
// caller's point of view: a miss or an error never blocks a submission.
type Service struct {
	events *stats.Repo
	outbox *Repo
	pub    QueuePublisher
}

func NewService(events *stats.Repo, outbox *Repo, pub QueuePublisher) *Service {
	return &Service{events: events, outbox: outbox, pub: pub}
}

// NotifySubject targets the most recent event record for username. It reports
// whether a notification was enqueued; an unknown username is (false, nil).
func (s *Service) NotifySubject(ctx context.Context, username, text string) (bool, error) {
	if username == "" {
		return false, nil
	}

	ev, err := s.events.LatestByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if ev == nil {
		// The subject has never talked to the bot. Normal outcome.
		return false, nil
	}

	id, err := NewID()
	if err != nil {
		return false, err
	}
	n := &Notification{
		ID:     id,
		ChatID: ev.UserID,
		Text:   text,
		Status: StatusQueued,
	}
	if err := s.outbox.Create(ctx, n); err != nil {
		return false, err
	}

	if err := s.pub.Publish(ctx, n.ID); err != nil {
		// The row stays queued; delivery is lost until requeued. Still an
		// attempted notification as far as the submission is concerned.
		return true, err
	}
	return true, nil
}
