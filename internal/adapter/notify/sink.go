package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

const dispatchTimeout = 2 * time.Second

// Sink receives user-facing messages after money events. Delivery is
// best-effort; implementations never propagate failures to the caller.
type Sink interface {
	Notify(ctx context.Context, userID int64, title, message string, category model.NotificationCategory)
}

// StoreSink persists notifications through the repository.
type StoreSink struct {
	notifications repository.NotificationRepository
	logger        *slog.Logger
}

// NewStoreSink constructs StoreSink.
func NewStoreSink(notifications repository.NotificationRepository, logger *slog.Logger) *StoreSink {
	return &StoreSink{notifications: notifications, logger: logger}
}

// Notify writes the notification with a short internal timeout. Failures are
// logged and swallowed so money paths are never blocked.
func (s *StoreSink) Notify(ctx context.Context, userID int64, title, message string, category model.NotificationCategory) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	if _, err := s.notifications.Create(ctx, userID, title, message, category); err != nil {
		s.logger.Warn("notification dispatch failed",
			slog.Int64("user_id", userID),
			slog.String("category", string(category)),
			slog.Any("error", err),
		)
	}
}
