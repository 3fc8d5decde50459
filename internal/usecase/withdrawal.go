package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/celengan/internal/adapter/notify"
	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

const autoApprovalNotes = "auto-approved by system"

// WithdrawalUseCase manages withdrawal requests and their delayed approval.
type WithdrawalUseCase struct {
	withdrawals repository.WithdrawalRepository
	sink        notify.Sink
	logger      *slog.Logger
	delay       time.Duration
}

// NewWithdrawalUseCase constructs WithdrawalUseCase. delay is the minimum age
// a pending request must reach before the sweep auto-approves it.
func NewWithdrawalUseCase(withdrawals repository.WithdrawalRepository, sink notify.Sink, logger *slog.Logger, delay time.Duration) *WithdrawalUseCase {
	return &WithdrawalUseCase{withdrawals: withdrawals, sink: sink, logger: logger, delay: delay}
}

// Request creates a pending withdrawal. A request against a specific goal
// leaves the goal untouched until approval; a request against the available
// balance takes the hold immediately.
func (u *WithdrawalUseCase) Request(ctx context.Context, userID int64, goalID *int64, amount decimal.Decimal, method model.Method, accountNumber, notes string) (*model.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, domainErrors.ErrInvalidAmount
	}
	if !model.ValidWithdrawalMethod(method) {
		return nil, domainErrors.ErrInvalidMethod
	}

	source := model.SourceBalance
	if goalID != nil {
		source = model.SourceGoal
	} else if method == model.MethodManual {
		// the available balance only ever holds electronic money
		return nil, domainErrors.ErrMethodNotAllowed
	}

	created, err := u.withdrawals.Create(ctx, &model.Withdrawal{
		UserID:        userID,
		GoalID:        goalID,
		Source:        source,
		Amount:        amount,
		Method:        method,
		AccountNumber: accountNumber,
		Notes:         notes,
	})
	if err != nil {
		return nil, err
	}

	u.sink.Notify(ctx, userID, "Withdrawal requested",
		fmt.Sprintf("Withdrawal of %s is pending approval", created.Amount.StringFixed(2)),
		model.NotificationWithdrawal)
	return created, nil
}

// Approve finalizes a pending withdrawal and applies the deduction.
func (u *WithdrawalUseCase) Approve(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	approved, err := u.withdrawals.Approve(ctx, id, notes)
	if err != nil {
		return nil, err
	}
	u.sink.Notify(ctx, approved.UserID, "Withdrawal approved",
		fmt.Sprintf("Withdrawal of %s was approved", approved.Amount.StringFixed(2)),
		model.NotificationWithdrawal)
	return approved, nil
}

// Reject declines a pending withdrawal, refunding any balance hold.
func (u *WithdrawalUseCase) Reject(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	rejected, err := u.withdrawals.Reject(ctx, id, notes)
	if err != nil {
		return nil, err
	}
	u.sink.Notify(ctx, rejected.UserID, "Withdrawal rejected",
		fmt.Sprintf("Withdrawal of %s was rejected", rejected.Amount.StringFixed(2)),
		model.NotificationWithdrawal)
	return rejected, nil
}

// Get fetches one withdrawal request.
func (u *WithdrawalUseCase) Get(ctx context.Context, id int64) (*model.Withdrawal, error) {
	return u.withdrawals.GetByID(ctx, id)
}

// History sweeps the user's overdue pending requests, then returns the
// withdrawal list filtered by status together with the status counts.
func (u *WithdrawalUseCase) History(ctx context.Context, userID int64, status model.WithdrawalStatus) ([]model.Withdrawal, *model.WithdrawalSummary, error) {
	if status != "" && !model.ValidWithdrawalStatus(status) {
		return nil, nil, domainErrors.ErrNotFound
	}

	if _, err := u.ProcessDelayedApprovals(ctx, &userID); err != nil {
		u.logger.Warn("withdrawal sweep failed", slog.Int64("user_id", userID), slog.Any("error", err))
	}

	list, err := u.withdrawals.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, nil, err
	}
	summary, err := u.withdrawals.Summary(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return list, summary, nil
}

// ProcessDelayedApprovals approves pending withdrawals older than the
// configured delay. userID scopes the sweep to one user; nil sweeps everyone.
// Requests that cannot be funded stay pending, other per-item failures are
// logged and the sweep continues. Returns the number of approvals applied.
func (u *WithdrawalUseCase) ProcessDelayedApprovals(ctx context.Context, userID *int64) (int, error) {
	cutoff := time.Now().Add(-u.delay)
	pending, err := u.withdrawals.ListPendingBefore(ctx, userID, cutoff)
	if err != nil {
		return 0, err
	}

	approved := 0
	for _, w := range pending {
		result, err := u.withdrawals.Approve(ctx, w.ID, autoApprovalNotes)
		switch {
		case err == nil:
			approved++
			u.sink.Notify(ctx, result.UserID, "Withdrawal approved",
				fmt.Sprintf("Withdrawal of %s was approved automatically", result.Amount.StringFixed(2)),
				model.NotificationWithdrawal)
		case errors.Is(err, domainErrors.ErrInsufficientBalance),
			errors.Is(err, domainErrors.ErrInsufficientGoalFunds):
			// stays pending until it can be funded
			u.logger.Debug("auto-approval deferred",
				slog.Int64("withdrawal_id", w.ID), slog.Any("error", err))
		case errors.Is(err, domainErrors.ErrAlreadyProcessed):
			// processed concurrently, nothing to do
		default:
			u.logger.Warn("auto-approval failed",
				slog.Int64("withdrawal_id", w.ID), slog.Any("error", err))
		}
	}
	return approved, nil
}
