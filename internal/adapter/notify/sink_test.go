package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/celengan/internal/domain/model"
	testhelpers "github.com/polkiloo/celengan/internal/test"
)

func TestStoreSinkPersistsNotification(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	sink := NewStoreSink(repo, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	sink.Notify(context.Background(), 7, "Deposit received", "Rp 50 saved", model.NotificationDeposit)

	if len(repo.Items) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(repo.Items))
	}
	if repo.Items[0].Title != "Deposit received" || repo.Items[0].Category != model.NotificationDeposit {
		t.Fatalf("unexpected notification: %+v", repo.Items[0])
	}
}

func TestStoreSinkSwallowsFailures(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{
		CreateFn: func(context.Context, int64, string, string, model.NotificationCategory) (*model.Notification, error) {
			return nil, errors.New("db down")
		},
	}
	sink := NewStoreSink(repo, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	sink.Notify(context.Background(), 7, "t", "m", model.NotificationSystem)
}

func TestStoreSinkSurvivesCancelledContext(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	sink := NewStoreSink(repo, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink.Notify(ctx, 7, "t", "m", model.NotificationSystem)

	if len(repo.Items) != 1 {
		t.Fatalf("expected notification despite cancelled caller context, got %d", len(repo.Items))
	}
}
