package repository

import (
	"context"
	"time"

	"github.com/polkiloo/celengan/internal/domain/model"
)

// WithdrawalRepository manages withdrawal requests. Create places the balance
// hold for balance-funded requests; Approve and Reject perform the status
// transition together with any deduction or refund in one transaction and fail
// with ErrAlreadyProcessed when the row is no longer pending.
type WithdrawalRepository interface {
	Create(ctx context.Context, w *model.Withdrawal) (*model.Withdrawal, error)
	GetByID(ctx context.Context, id int64) (*model.Withdrawal, error)
	ListByUser(ctx context.Context, userID int64, status model.WithdrawalStatus) ([]model.Withdrawal, error)
	Summary(ctx context.Context, userID int64) (*model.WithdrawalSummary, error)
	ListPendingBefore(ctx context.Context, userID *int64, cutoff time.Time) ([]model.Withdrawal, error)
	Approve(ctx context.Context, id int64, notes string) (*model.Withdrawal, error)
	Reject(ctx context.Context, id int64, notes string) (*model.Withdrawal, error)
}
