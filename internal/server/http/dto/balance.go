package dto

// BalanceResponse represents the user's money position.
type BalanceResponse struct {
	AvailableBalance float64 `json:"available_balance"`
	TotalSaved       float64 `json:"total_saved"`
	TotalTarget      float64 `json:"total_target"`
}
