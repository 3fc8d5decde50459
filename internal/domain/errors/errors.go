package errors

import "errors"

var (
	ErrAlreadyExists           = errors.New("already exists")
	ErrNotFound                = errors.New("not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidMethod           = errors.New("invalid payment method")
	ErrInvalidGoal             = errors.New("invalid goal definition")
	ErrEmptyAllocation         = errors.New("allocation list is empty")
	ErrMethodNotAllowed        = errors.New("payment method not allowed for goal type")
	ErrGoalCompleted           = errors.New("goal already completed")
	ErrAllocationExceedsTarget = errors.New("allocation exceeds remaining target")
	ErrTransactionLocked       = errors.New("transaction locked until goal completion")
	ErrInsufficientBalance     = errors.New("insufficient available balance")
	ErrInsufficientGoalFunds   = errors.New("insufficient goal funds")
	ErrAlreadyProcessed        = errors.New("withdrawal already processed")
)
