package model

import "time"

// NotificationCategory groups notifications by the event that produced them.
type NotificationCategory string

const (
	NotificationDeposit    NotificationCategory = "deposit"
	NotificationWithdrawal NotificationCategory = "withdrawal"
	NotificationSystem     NotificationCategory = "system"
)

// Notification is a stored message shown to the user after a money event.
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	Category  NotificationCategory
	Read      bool
	CreatedAt time.Time
}
