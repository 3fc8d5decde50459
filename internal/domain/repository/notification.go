package repository

import (
	"context"

	"github.com/polkiloo/celengan/internal/domain/model"
)

// NotificationRepository stores best-effort user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, userID int64, title, message string, category model.NotificationCategory) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
}
