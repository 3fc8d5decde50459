package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered saver with a free-floating digital balance.
type User struct {
	ID               int64
	Name             string
	Email            string
	PasswordHash     string
	AvailableBalance decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
