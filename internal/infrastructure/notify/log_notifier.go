package notify

import (
	"context"

	"storefront/internal/domain"
	"storefront/pkg/logger"
)

// LogNotifier writes notifications to the request logger at debug level.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(ctx context.Context, n domain.Notification) {
	logger.WithContext(ctx).Debug().
		Str("kind", string(n.Kind)).
		Str("session_id", n.SessionID).
		Str("item_id", n.ItemID).
		Str("title", n.Title).
		Msg("Notification")
}

// Multi fans a notification out to several notifiers.
type Multi []domain.Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, nt := range m {
		nt.Notify(ctx, n)
	}
}
