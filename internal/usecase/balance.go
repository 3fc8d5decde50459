package usecase

import (
	"context"

	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

// BalanceUseCase aggregates the user's money position.
type BalanceUseCase struct {
	users repository.UserRepository
	goals repository.GoalRepository
}

// NewBalanceUseCase constructs BalanceUseCase.
func NewBalanceUseCase(users repository.UserRepository, goals repository.GoalRepository) *BalanceUseCase {
	return &BalanceUseCase{users: users, goals: goals}
}

// Summary returns the available balance together with goal totals.
func (u *BalanceUseCase) Summary(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	saved, target, err := u.goals.SumCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.BalanceSummary{
		AvailableBalance: usr.AvailableBalance,
		TotalSaved:       saved,
		TotalTarget:      target,
	}, nil
}
