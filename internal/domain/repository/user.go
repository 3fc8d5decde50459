package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/celengan/internal/domain/model"
)

// UserRepository describes persistence operations for users. The balance is
// never overwritten directly; AddBalance and SubtractBalance are the only
// mutation paths and both run under a row lock.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) error
	SubtractBalance(ctx context.Context, userID int64, amount decimal.Decimal) error
}
