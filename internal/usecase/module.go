package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/celengan/internal/adapter/notify"
	"github.com/polkiloo/celengan/internal/config"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewGoalUseCase,
	NewTransactionUseCase,
	NewAllocationUseCase,
	NewBalanceUseCase,
	newWithdrawalUseCase,
	NewNotificationUseCase,
	NewReportUseCase,
)

func newWithdrawalUseCase(withdrawals repository.WithdrawalRepository, sink notify.Sink, logger *slog.Logger, cfg *config.Config) *WithdrawalUseCase {
	return NewWithdrawalUseCase(withdrawals, sink, logger, cfg.ApprovalDelay)
}
