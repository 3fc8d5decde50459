package model

import "github.com/shopspring/decimal"

// AllocationEntry routes part of a pooled amount into a single goal.
type AllocationEntry struct {
	GoalID int64
	Amount decimal.Decimal
}

// AllocationResult reports what happened to one entry of an allocation batch.
type AllocationResult struct {
	GoalID    int64
	GoalName  string
	Amount    decimal.Decimal
	Completed bool
	Skipped   bool
}

// BalanceSummary aggregates a user's free balance and goal holdings.
type BalanceSummary struct {
	AvailableBalance decimal.Decimal
	TotalSaved       decimal.Decimal
	TotalTarget      decimal.Decimal
}

// WithdrawalSummary counts a user's withdrawal requests by status.
type WithdrawalSummary struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}
