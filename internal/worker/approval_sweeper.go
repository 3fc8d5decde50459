package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SavingsFacade exposes the subset of application functionality required by the sweeper.
type SavingsFacade interface {
	ProcessDelayedApprovals(ctx context.Context, userID *int64) (int, error)
}

// ApprovalSweeper periodically auto-approves pending withdrawals that have
// aged past the configured approval delay.
type ApprovalSweeper struct {
	facade   SavingsFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewApprovalSweeper constructs the withdrawal sweeper.
func NewApprovalSweeper(facade SavingsFacade, interval time.Duration, logger *slog.Logger) *ApprovalSweeper {
	if interval <= 0 {
		interval = time.Second
	}
	return &ApprovalSweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background sweeping.
func (s *ApprovalSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweeper to finish.
func (s *ApprovalSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *ApprovalSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ApprovalSweeper) sweep(ctx context.Context) {
	approved, err := s.facade.ProcessDelayedApprovals(ctx, nil)
	if err != nil {
		s.logger.Error("withdrawal sweep failed", slog.String("error", err.Error()))
		return
	}
	if approved > 0 {
		s.logger.Info("withdrawals auto-approved", slog.Int("count", approved))
	}
}
