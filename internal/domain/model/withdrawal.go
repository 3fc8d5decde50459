package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus describes the request lifecycle. Terminal once non-pending.
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// ValidWithdrawalStatus reports whether s is a recognized status.
func ValidWithdrawalStatus(s WithdrawalStatus) bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusApproved, WithdrawalStatusRejected:
		return true
	}
	return false
}

// WithdrawalSource names where the money comes from.
type WithdrawalSource string

const (
	// SourceGoal deducts from a specific goal at approval time.
	SourceGoal WithdrawalSource = "goal"
	// SourceBalance holds the amount from the available balance at request time.
	SourceBalance WithdrawalSource = "balance"
	// SourcePooled drains the user's goals largest-first at approval time.
	// Only legacy rows without a funding source carry it.
	SourcePooled WithdrawalSource = "pooled"
)

// Withdrawal is a request to take money out of the system.
type Withdrawal struct {
	ID            int64
	UserID        int64
	GoalID        *int64
	Source        WithdrawalSource
	Amount        decimal.Decimal
	Method        Method
	AccountNumber string
	Status        WithdrawalStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Pending reports whether the withdrawal can still transition.
func (w *Withdrawal) Pending() bool {
	return w.Status == WithdrawalStatusPending
}
