package dto

// AllocationEntryRequest routes part of the pooled amount into one goal.
type AllocationEntryRequest struct {
	GoalID int64   `json:"goal_id"`
	Amount float64 `json:"amount"`
}

// AllocationRequest describes the allocation batch payload.
type AllocationRequest struct {
	Allocations         []AllocationEntryRequest `json:"allocations"`
	SaveToBalanceAmount float64                  `json:"save_to_balance_amount"`
}

// AllocationResultResponse describes the outcome for one entry.
type AllocationResultResponse struct {
	GoalID    int64   `json:"goal_id"`
	GoalName  string  `json:"goal_name"`
	Amount    float64 `json:"amount"`
	Completed bool    `json:"completed"`
	Skipped   bool    `json:"skipped"`
}

// AllocationResponse describes the batch outcome plus remaining balance.
type AllocationResponse struct {
	Results          []AllocationResultResponse `json:"results"`
	AvailableBalance float64                    `json:"available_balance"`
}
