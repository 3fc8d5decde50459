package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/domain/repository"
)

// GoalUseCase manages savings goal lifecycle.
type GoalUseCase struct {
	goals repository.GoalRepository
}

// NewGoalUseCase constructs GoalUseCase.
func NewGoalUseCase(goals repository.GoalRepository) *GoalUseCase {
	return &GoalUseCase{goals: goals}
}

func validateGoal(goal *model.Goal) error {
	goal.Name = strings.TrimSpace(goal.Name)
	if goal.Name == "" {
		return domainErrors.ErrInvalidGoal
	}
	if !goal.TargetAmount.IsPositive() {
		return domainErrors.ErrInvalidAmount
	}
	if goal.Type == "" {
		goal.Type = model.GoalTypeDigital
	}
	if !model.ValidGoalType(goal.Type) {
		return domainErrors.ErrInvalidGoal
	}
	return nil
}

// Create validates and stores a new goal.
func (u *GoalUseCase) Create(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if err := validateGoal(goal); err != nil {
		return nil, err
	}
	return u.goals.Create(ctx, goal)
}

// Get fetches one owner-scoped goal.
func (u *GoalUseCase) Get(ctx context.Context, id, userID int64) (*model.Goal, error) {
	return u.goals.GetByID(ctx, id, userID)
}

// List returns all goals of the user.
func (u *GoalUseCase) List(ctx context.Context, userID int64) ([]model.Goal, error) {
	return u.goals.ListByUser(ctx, userID)
}

// Update validates and persists goal changes.
func (u *GoalUseCase) Update(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if err := validateGoal(goal); err != nil {
		return nil, err
	}
	if err := u.goals.Update(ctx, goal); err != nil {
		return nil, err
	}
	return u.goals.GetByID(ctx, goal.ID, goal.UserID)
}

// Delete removes the goal together with its ledger entries.
func (u *GoalUseCase) Delete(ctx context.Context, id, userID int64) error {
	return u.goals.Delete(ctx, id, userID)
}
