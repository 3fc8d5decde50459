package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

// AllocationUseCase distributes pooled money across goals.
type AllocationUseCase struct {
	goals repository.GoalRepository
	users repository.UserRepository
}

// NewAllocationUseCase constructs AllocationUseCase.
func NewAllocationUseCase(goals repository.GoalRepository, users repository.UserRepository) *AllocationUseCase {
	return &AllocationUseCase{goals: goals, users: users}
}

// Allocate routes entries into goals as one all-or-nothing batch and returns
// the per-entry results plus the balance left afterwards. saveToBalance names
// money the caller wants kept in the available balance; since the balance
// already holds it, only its presence matters for validating an empty batch.
func (u *AllocationUseCase) Allocate(ctx context.Context, userID int64, entries []model.AllocationEntry, saveToBalance decimal.Decimal) ([]model.AllocationResult, decimal.Decimal, error) {
	if len(entries) == 0 && !saveToBalance.IsPositive() {
		return nil, decimal.Zero, domainErrors.ErrEmptyAllocation
	}
	for _, entry := range entries {
		if !entry.Amount.IsPositive() {
			return nil, decimal.Zero, domainErrors.ErrInvalidAmount
		}
	}

	var results []model.AllocationResult
	if len(entries) > 0 {
		var err error
		results, err = u.goals.Allocate(ctx, userID, entries)
		if err != nil {
			return nil, decimal.Zero, err
		}
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return results, usr.AvailableBalance, nil
}
