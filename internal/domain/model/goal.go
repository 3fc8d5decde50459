package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType constrains which payment methods may fund or drain a goal.
type GoalType string

const (
	// GoalTypeCash holds physical money, funded only by manual deposits.
	GoalTypeCash GoalType = "cash"
	// GoalTypeDigital holds electronic money, funded by wallets or balance.
	GoalTypeDigital GoalType = "digital"
)

// ValidGoalType reports whether t is a recognized goal type.
func ValidGoalType(t GoalType) bool {
	return t == GoalTypeCash || t == GoalTypeDigital
}

// Goal is a named savings target owned by a user.
type Goal struct {
	ID            int64
	UserID        int64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Description   string
	Type          GoalType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FundingResult describes how a deposit was split between the goal and overflow.
type FundingResult struct {
	Completed bool
	Deposited decimal.Decimal
	Overflow  decimal.Decimal
}

// Remaining returns the amount still needed to reach the target.
func (g *Goal) Remaining() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// Completed reports whether the goal has reached its target.
func (g *Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// ProgressPercentage returns completion as a percentage rounded to two digits.
func (g *Goal) ProgressPercentage() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// ApplyDeposit credits amount to the goal, clamping at the target. The portion
// above the remaining target is returned as overflow and must be routed onward
// by the caller; it is never silently absorbed.
func (g *Goal) ApplyDeposit(amount decimal.Decimal) FundingResult {
	remaining := g.Remaining()
	overflow := decimal.Zero

	if amount.GreaterThanOrEqual(remaining) {
		g.CurrentAmount = g.TargetAmount
		overflow = amount.Sub(remaining)
	} else {
		g.CurrentAmount = g.CurrentAmount.Add(amount)
	}

	return FundingResult{
		Completed: g.Completed(),
		Deposited: amount.Sub(overflow),
		Overflow:  overflow,
	}
}

// Subtract decrements the current amount unconditionally. Callers must check
// sufficiency first; this is the primitive behind withdrawal deduction and
// compensating transaction deletes.
func (g *Goal) Subtract(amount decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Sub(amount)
}
