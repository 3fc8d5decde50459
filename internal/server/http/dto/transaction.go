package dto

import "time"

// DepositRequest describes deposit payload.
type DepositRequest struct {
	GoalID      int64   `json:"goal_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Description string  `json:"description"`
}

// TransactionResponse describes one ledger entry.
type TransactionResponse struct {
	ID              int64     `json:"id"`
	GoalID          int64     `json:"goal_id"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"method"`
	Description     string    `json:"description,omitempty"`
	TransactionDate time.Time `json:"transaction_date"`
}

// DepositResponse describes the outcome of a deposit.
type DepositResponse struct {
	Transaction     TransactionResponse `json:"transaction"`
	GoalCompleted   bool                `json:"goal_completed"`
	DepositedAmount float64             `json:"deposited_amount"`
	OverflowAmount  float64             `json:"overflow_amount"`
}
