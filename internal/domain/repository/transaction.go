package repository

import (
	"context"

	"github.com/polkiloo/celengan/internal/domain/model"
)

// TransactionRepository provides access to the append-only ledger. Deleting an
// entry is a compensating action: the record is removed and the goal's current
// amount is decremented by the same amount in one transaction.
type TransactionRepository interface {
	GetByID(ctx context.Context, id, userID int64) (*model.Transaction, error)
	ListByGoal(ctx context.Context, goalID, userID int64) ([]model.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error)
	DeleteCompensating(ctx context.Context, id, userID int64) (*model.Transaction, error)
}
