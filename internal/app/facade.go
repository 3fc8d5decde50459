package app

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/report"
	"github.com/polkiloo/celengan/internal/usecase"
)

// SavingsFacade aggregates the use cases behind one application surface for
// the HTTP handlers and the background sweeper.
type SavingsFacade struct {
	auth          *usecase.AuthUseCase
	goals         *usecase.GoalUseCase
	transactions  *usecase.TransactionUseCase
	allocations   *usecase.AllocationUseCase
	balance       *usecase.BalanceUseCase
	withdrawals   *usecase.WithdrawalUseCase
	notifications *usecase.NotificationUseCase
	reports       *usecase.ReportUseCase
}

// NewSavingsFacade constructs SavingsFacade.
func NewSavingsFacade(
	auth *usecase.AuthUseCase,
	goals *usecase.GoalUseCase,
	transactions *usecase.TransactionUseCase,
	allocations *usecase.AllocationUseCase,
	balance *usecase.BalanceUseCase,
	withdrawals *usecase.WithdrawalUseCase,
	notifications *usecase.NotificationUseCase,
	reports *usecase.ReportUseCase,
) *SavingsFacade {
	return &SavingsFacade{
		auth:          auth,
		goals:         goals,
		transactions:  transactions,
		allocations:   allocations,
		balance:       balance,
		withdrawals:   withdrawals,
		notifications: notifications,
		reports:       reports,
	}
}

func (f *SavingsFacade) Register(ctx context.Context, name, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, name, email, password)
	return token, err
}

func (f *SavingsFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *SavingsFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *SavingsFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *SavingsFacade) CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	return f.goals.Create(ctx, goal)
}

func (f *SavingsFacade) Goal(ctx context.Context, id, userID int64) (*model.Goal, error) {
	return f.goals.Get(ctx, id, userID)
}

func (f *SavingsFacade) Goals(ctx context.Context, userID int64) ([]model.Goal, error) {
	return f.goals.List(ctx, userID)
}

func (f *SavingsFacade) UpdateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	return f.goals.Update(ctx, goal)
}

func (f *SavingsFacade) DeleteGoal(ctx context.Context, id, userID int64) error {
	return f.goals.Delete(ctx, id, userID)
}

func (f *SavingsFacade) Deposit(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error) {
	return f.transactions.Deposit(ctx, userID, goalID, amount, method, description)
}

func (f *SavingsFacade) DeleteTransaction(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	return f.transactions.Delete(ctx, id, userID)
}

func (f *SavingsFacade) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return f.transactions.ListByUser(ctx, userID)
}

func (f *SavingsFacade) GoalTransactions(ctx context.Context, goalID, userID int64) ([]model.Transaction, error) {
	return f.transactions.ListByGoal(ctx, goalID, userID)
}

func (f *SavingsFacade) Allocate(ctx context.Context, userID int64, entries []model.AllocationEntry, saveToBalance decimal.Decimal) ([]model.AllocationResult, decimal.Decimal, error) {
	return f.allocations.Allocate(ctx, userID, entries, saveToBalance)
}

func (f *SavingsFacade) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	summary, err := f.balance.Summary(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.BalanceSummary{}, nil
		}
		return nil, err
	}
	return summary, nil
}

func (f *SavingsFacade) RequestWithdrawal(ctx context.Context, userID int64, goalID *int64, amount decimal.Decimal, method model.Method, accountNumber, notes string) (*model.Withdrawal, error) {
	return f.withdrawals.Request(ctx, userID, goalID, amount, method, accountNumber, notes)
}

func (f *SavingsFacade) ApproveWithdrawal(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	return f.withdrawals.Approve(ctx, id, notes)
}

func (f *SavingsFacade) RejectWithdrawal(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	return f.withdrawals.Reject(ctx, id, notes)
}

func (f *SavingsFacade) Withdrawals(ctx context.Context, userID int64, status model.WithdrawalStatus) ([]model.Withdrawal, *model.WithdrawalSummary, error) {
	return f.withdrawals.History(ctx, userID, status)
}

func (f *SavingsFacade) ProcessDelayedApprovals(ctx context.Context, userID *int64) (int, error) {
	return f.withdrawals.ProcessDelayedApprovals(ctx, userID)
}

func (f *SavingsFacade) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	return f.notifications.List(ctx, userID)
}

func (f *SavingsFacade) Report(ctx context.Context, userID int64, format report.Format) ([]byte, error) {
	return f.reports.Generate(ctx, userID, format)
}
