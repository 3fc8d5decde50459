package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/celengan/internal/domain/repository"
)

// Module exposes the notification sink to the fx container.
var Module = fx.Provide(newSink)

func newSink(notifications repository.NotificationRepository, logger *slog.Logger) Sink {
	return NewStoreSink(notifications, logger)
}
