package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Goals() GoalRepository
	Transactions() TransactionRepository
	Withdrawals() WithdrawalRepository
	Notifications() NotificationRepository
}
