package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/report"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// GoalFacade encapsulates goal operations exposed via HTTP.
type GoalFacade interface {
	CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	Goal(ctx context.Context, id, userID int64) (*model.Goal, error)
	Goals(ctx context.Context, userID int64) ([]model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	DeleteGoal(ctx context.Context, id, userID int64) error
}

// TransactionFacade covers deposits, the ledger and allocation batches.
type TransactionFacade interface {
	Deposit(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error)
	DeleteTransaction(ctx context.Context, id, userID int64) (*model.Transaction, error)
	Transactions(ctx context.Context, userID int64) ([]model.Transaction, error)
	GoalTransactions(ctx context.Context, goalID, userID int64) ([]model.Transaction, error)
	Allocate(ctx context.Context, userID int64, entries []model.AllocationEntry, saveToBalance decimal.Decimal) ([]model.AllocationResult, decimal.Decimal, error)
}

// WithdrawalFacade covers the withdrawal request lifecycle.
type WithdrawalFacade interface {
	RequestWithdrawal(ctx context.Context, userID int64, goalID *int64, amount decimal.Decimal, method model.Method, accountNumber, notes string) (*model.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id int64, notes string) (*model.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, id int64, notes string) (*model.Withdrawal, error)
	Withdrawals(ctx context.Context, userID int64, status model.WithdrawalStatus) ([]model.Withdrawal, *model.WithdrawalSummary, error)
}

// BalanceFacade provides balance related operations.
type BalanceFacade interface {
	Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error)
}

// NotificationFacade lists stored notifications.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
}

// ReportFacade renders account statements.
type ReportFacade interface {
	Report(ctx context.Context, userID int64, format report.Format) ([]byte, error)
}

// SavingsFacade aggregates the full set of operations used across handlers.
type SavingsFacade interface {
	AuthFacade
	GoalFacade
	TransactionFacade
	WithdrawalFacade
	BalanceFacade
	NotificationFacade
	ReportFacade
}
