package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/celengan/internal/domain/repository"
	"github.com/polkiloo/celengan/internal/report"
)

// ReportUseCase assembles savings reports from the user's full history.
type ReportUseCase struct {
	users        repository.UserRepository
	goals        repository.GoalRepository
	transactions repository.TransactionRepository
	withdrawals  repository.WithdrawalRepository
	builder      *report.Builder
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(
	users repository.UserRepository,
	goals repository.GoalRepository,
	transactions repository.TransactionRepository,
	withdrawals repository.WithdrawalRepository,
	builder *report.Builder,
) *ReportUseCase {
	return &ReportUseCase{
		users:        users,
		goals:        goals,
		transactions: transactions,
		withdrawals:  withdrawals,
		builder:      builder,
	}
}

// Generate renders the user's savings history in the requested format.
func (u *ReportUseCase) Generate(ctx context.Context, userID int64, format report.Format) ([]byte, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := u.goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := u.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	withdrawals, err := u.withdrawals.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	return u.builder.Render(format, report.Data{
		User:         usr,
		Goals:        goals,
		Transactions: transactions,
		Withdrawals:  withdrawals,
		GeneratedAt:  time.Now(),
	})
}
