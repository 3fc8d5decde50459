package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/celengan/internal/domain/model"
)

// GoalRepository describes persistence operations for goals. Deposit and
// Allocate are compound transactional operations: the goal update, the ledger
// entry, and any balance movement commit or roll back as one unit.
type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) (*model.Goal, error)
	GetByID(ctx context.Context, id, userID int64) (*model.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Goal, error)
	Update(ctx context.Context, goal *model.Goal) error
	Delete(ctx context.Context, id, userID int64) error
	SumCurrent(ctx context.Context, userID int64) (decimal.Decimal, decimal.Decimal, error)

	// Deposit applies the full funding flow for one deposit: row-locks the
	// goal, rejects completed goals and method/type mismatches, debits the
	// available balance for balance-method deposits, clamps at the target and
	// credits overflow back to the balance, and records the ledger entry.
	Deposit(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error)

	// Allocate distributes a pooled amount across goals. The batch is
	// all-or-nothing: any entry exceeding a goal's remaining target fails the
	// whole batch, while entries aimed at already-complete goals are skipped
	// without debiting the balance.
	Allocate(ctx context.Context, userID int64, entries []model.AllocationEntry) ([]model.AllocationResult, error)
}
