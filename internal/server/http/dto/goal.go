package dto

import "time"

// DeadlineLayout is the wire format for goal deadlines.
const DeadlineLayout = "2006-01-02"

// GoalRequest describes goal create/update payload.
type GoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Deadline     *string `json:"deadline"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
}

// GoalResponse describes one savings goal.
type GoalResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"`
	Description   string    `json:"description,omitempty"`
	Type          string    `json:"type"`
	Progress      float64   `json:"progress"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
}
