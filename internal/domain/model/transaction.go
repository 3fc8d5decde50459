package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Method identifies how money moved in a ledger entry.
type Method string

const (
	MethodManual       Method = "manual"
	MethodBalance      Method = "balance"
	MethodAllocation   Method = "allocation"
	MethodDana         Method = "dana"
	MethodGopay        Method = "gopay"
	MethodOvo          Method = "ovo"
	MethodShopeepay    Method = "shopeepay"
	MethodBankTransfer Method = "bank_transfer"
	MethodPospay       Method = "pospay"
)

var walletMethods = map[Method]struct{}{
	MethodDana:         {},
	MethodGopay:        {},
	MethodOvo:          {},
	MethodShopeepay:    {},
	MethodBankTransfer: {},
	MethodPospay:       {},
}

// Electronic reports whether m moves digital-origin money.
func (m Method) Electronic() bool {
	if m == MethodBalance || m == MethodAllocation {
		return true
	}
	_, ok := walletMethods[m]
	return ok
}

// ValidDepositMethod reports whether m may be supplied on a deposit request.
// Allocation entries are written internally and are not accepted from callers.
func ValidDepositMethod(m Method) bool {
	if m == MethodManual || m == MethodBalance {
		return true
	}
	_, ok := walletMethods[m]
	return ok
}

// ValidWithdrawalMethod reports whether m may be supplied on a withdrawal request.
func ValidWithdrawalMethod(m Method) bool {
	if m == MethodManual {
		return true
	}
	_, ok := walletMethods[m]
	return ok
}

// AllowedForGoalType enforces the funding-method policy: cash goals accept only
// manual money, digital goals accept only electronic money.
func (m Method) AllowedForGoalType(t GoalType) bool {
	if t == GoalTypeCash {
		return m == MethodManual
	}
	return m != MethodManual
}

// Transaction is an append-only ledger entry explaining a goal credit.
type Transaction struct {
	ID              int64
	GoalID          int64
	Amount          decimal.Decimal
	Method          Method
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}
