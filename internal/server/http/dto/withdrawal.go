package dto

import "time"

// WithdrawalRequest describes withdrawal request payload. GoalID selects the
// funding goal; when absent the amount is held from the available balance.
type WithdrawalRequest struct {
	GoalID        *int64  `json:"goal_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	AccountNumber string  `json:"account_number"`
	Notes         string  `json:"notes"`
}

// WithdrawalDecisionRequest carries approval/rejection notes.
type WithdrawalDecisionRequest struct {
	Notes string `json:"notes"`
}

// WithdrawalResponse describes one withdrawal request.
type WithdrawalResponse struct {
	ID            int64     `json:"id"`
	GoalID        *int64    `json:"goal_id,omitempty"`
	Source        string    `json:"source"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	AccountNumber string    `json:"account_number,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WithdrawalSummaryResponse counts requests by status.
type WithdrawalSummaryResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// WithdrawalListResponse is the history plus status counts.
type WithdrawalListResponse struct {
	Withdrawals []WithdrawalResponse      `json:"withdrawals"`
	Summary     WithdrawalSummaryResponse `json:"summary"`
}
