package usecase

import (
	"context"

	"storefront/internal/domain"
)

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, domain.Notification) {}

func orNoop(n domain.Notifier) domain.Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
