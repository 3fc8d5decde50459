package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type facadeStub struct {
	calls   atomic.Int64
	users   []*int64
	approve func() (int, error)
}

func (f *facadeStub) ProcessDelayedApprovals(ctx context.Context, userID *int64) (int, error) {
	f.calls.Add(1)
	f.users = append(f.users, userID)
	if f.approve != nil {
		return f.approve()
	}
	return 0, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestApprovalSweeperRunsPeriodically(t *testing.T) {
	facade := &facadeStub{}
	sweeper := NewApprovalSweeper(facade, 5*time.Millisecond, discardLogger())

	sweeper.Start(context.Background())
	deadline := time.After(time.Second)
	for facade.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not run twice in time")
		case <-time.After(time.Millisecond):
		}
	}
	sweeper.Stop()
}

func TestApprovalSweeperSweepsAllUsers(t *testing.T) {
	facade := &facadeStub{}
	sweeper := NewApprovalSweeper(facade, 5*time.Millisecond, discardLogger())

	sweeper.Start(context.Background())
	deadline := time.After(time.Second)
	for facade.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not run in time")
		case <-time.After(time.Millisecond):
		}
	}
	sweeper.Stop()

	for _, u := range facade.users {
		if u != nil {
			t.Fatalf("expected global sweep, got user %d", *u)
		}
	}
}

func TestApprovalSweeperSurvivesErrors(t *testing.T) {
	facade := &facadeStub{approve: func() (int, error) { return 0, errors.New("db down") }}
	sweeper := NewApprovalSweeper(facade, 5*time.Millisecond, discardLogger())

	sweeper.Start(context.Background())
	deadline := time.After(time.Second)
	for facade.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("sweeper stopped after error")
		case <-time.After(time.Millisecond):
		}
	}
	sweeper.Stop()
}

func TestApprovalSweeperStopIsIdempotent(t *testing.T) {
	sweeper := NewApprovalSweeper(&facadeStub{}, time.Minute, discardLogger())
	sweeper.Start(context.Background())
	sweeper.Stop()
	sweeper.Stop()
}
