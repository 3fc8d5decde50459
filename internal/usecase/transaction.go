package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/celengan/internal/adapter/notify"
	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

// TransactionUseCase manages deposits and ledger entries.
type TransactionUseCase struct {
	goals        repository.GoalRepository
	transactions repository.TransactionRepository
	sink         notify.Sink
}

// NewTransactionUseCase constructs TransactionUseCase.
func NewTransactionUseCase(goals repository.GoalRepository, transactions repository.TransactionRepository, sink notify.Sink) *TransactionUseCase {
	return &TransactionUseCase{goals: goals, transactions: transactions, sink: sink}
}

// Deposit credits a goal. The storage layer enforces goal state and method
// policy under a row lock; this layer validates the request shape and sends
// notifications after the money has moved.
func (u *TransactionUseCase) Deposit(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error) {
	if !amount.IsPositive() {
		return nil, nil, domainErrors.ErrInvalidAmount
	}
	if !model.ValidDepositMethod(method) {
		return nil, nil, domainErrors.ErrInvalidMethod
	}

	txn, result, err := u.goals.Deposit(ctx, userID, goalID, amount, method, description)
	if err != nil {
		return nil, nil, err
	}

	u.sink.Notify(ctx, userID, "Deposit received",
		fmt.Sprintf("Saved %s to your goal", result.Deposited.StringFixed(2)),
		model.NotificationDeposit)
	if result.Completed {
		u.sink.Notify(ctx, userID, "Goal reached",
			"Congratulations, one of your savings goals reached its target",
			model.NotificationSystem)
	}

	return txn, result, nil
}

// Delete removes a ledger entry and rolls its amount back out of the goal.
func (u *TransactionUseCase) Delete(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	return u.transactions.DeleteCompensating(ctx, id, userID)
}

// Get fetches one owner-scoped ledger entry.
func (u *TransactionUseCase) Get(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	return u.transactions.GetByID(ctx, id, userID)
}

// ListByGoal returns the ledger of one goal.
func (u *TransactionUseCase) ListByGoal(ctx context.Context, goalID, userID int64) ([]model.Transaction, error) {
	return u.transactions.ListByGoal(ctx, goalID, userID)
}

// ListByUser returns the full ledger of the user.
func (u *TransactionUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return u.transactions.ListByUser(ctx, userID)
}
