package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/report"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, error)
	ProfileFn      func(context.Context, int64) (*model.User, error)
}

// Register delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return "token", nil
}

// Authenticate delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken resolves any token to user 1 unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// Profile returns a canned user unless overridden.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "tester", Email: "tester@example.com"}, nil
}

// GoalFacadeStub simulates goal endpoints.
type GoalFacadeStub struct {
	CreateFn func(context.Context, *model.Goal) (*model.Goal, error)
	GetFn    func(context.Context, int64, int64) (*model.Goal, error)
	ListFn   func(context.Context, int64) ([]model.Goal, error)
	UpdateFn func(context.Context, *model.Goal) (*model.Goal, error)
	DeleteFn func(context.Context, int64, int64) error
}

// CreateGoal delegates to provided function or echoes the goal with an id.
func (s GoalFacadeStub) CreateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, goal)
	}
	created := *goal
	created.ID = 1
	return &created, nil
}

// Goal returns a canned goal unless overridden.
func (s GoalFacadeStub) Goal(ctx context.Context, id, userID int64) (*model.Goal, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id, userID)
	}
	return &model.Goal{ID: id, UserID: userID, Name: "trip", TargetAmount: decimal.NewFromInt(100), Type: model.GoalTypeDigital}, nil
}

// Goals returns canned goals unless overridden.
func (s GoalFacadeStub) Goals(ctx context.Context, userID int64) ([]model.Goal, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Goal{{ID: 1, UserID: userID, Name: "trip", TargetAmount: decimal.NewFromInt(100), Type: model.GoalTypeDigital}}, nil
}

// UpdateGoal delegates or echoes the goal.
func (s GoalFacadeStub) UpdateGoal(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, goal)
	}
	return goal, nil
}

// DeleteGoal delegates or succeeds.
func (s GoalFacadeStub) DeleteGoal(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return nil
}

// TransactionFacadeStub simulates deposit, ledger and allocation endpoints.
type TransactionFacadeStub struct {
	DepositFn          func(context.Context, int64, int64, decimal.Decimal, model.Method, string) (*model.Transaction, *model.FundingResult, error)
	DeleteFn           func(context.Context, int64, int64) (*model.Transaction, error)
	TransactionsFn     func(context.Context, int64) ([]model.Transaction, error)
	GoalTransactionsFn func(context.Context, int64, int64) ([]model.Transaction, error)
	AllocateFn         func(context.Context, int64, []model.AllocationEntry, decimal.Decimal) ([]model.AllocationResult, decimal.Decimal, error)
}

// Deposit delegates or returns a canned ledger entry.
func (s TransactionFacadeStub) Deposit(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error) {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, userID, goalID, amount, method, description)
	}
	txn := &model.Transaction{ID: 1, GoalID: goalID, Amount: amount, Method: method, TransactionDate: time.Unix(0, 0)}
	return txn, &model.FundingResult{Deposited: amount}, nil
}

// DeleteTransaction delegates or returns a canned entry.
func (s TransactionFacadeStub) DeleteTransaction(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return &model.Transaction{ID: id, GoalID: 1, Amount: decimal.NewFromInt(10)}, nil
}

// Transactions returns canned history unless overridden.
func (s TransactionFacadeStub) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return []model.Transaction{{ID: 1, GoalID: 1, Amount: decimal.NewFromInt(10), Method: model.MethodManual}}, nil
}

// GoalTransactions returns canned goal history unless overridden.
func (s TransactionFacadeStub) GoalTransactions(ctx context.Context, goalID, userID int64) ([]model.Transaction, error) {
	if s.GoalTransactionsFn != nil {
		return s.GoalTransactionsFn(ctx, goalID, userID)
	}
	return []model.Transaction{{ID: 1, GoalID: goalID, Amount: decimal.NewFromInt(10), Method: model.MethodManual}}, nil
}

// Allocate delegates or reports every entry as deposited.
func (s TransactionFacadeStub) Allocate(ctx context.Context, userID int64, entries []model.AllocationEntry, saveToBalance decimal.Decimal) ([]model.AllocationResult, decimal.Decimal, error) {
	if s.AllocateFn != nil {
		return s.AllocateFn(ctx, userID, entries, saveToBalance)
	}
	results := make([]model.AllocationResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, model.AllocationResult{GoalID: entry.GoalID, Amount: entry.Amount})
	}
	return results, decimal.Zero, nil
}

// WithdrawalFacadeStub simulates withdrawal endpoints.
type WithdrawalFacadeStub struct {
	RequestFn func(context.Context, int64, *int64, decimal.Decimal, model.Method, string, string) (*model.Withdrawal, error)
	ApproveFn func(context.Context, int64, string) (*model.Withdrawal, error)
	RejectFn  func(context.Context, int64, string) (*model.Withdrawal, error)
	ListFn    func(context.Context, int64, model.WithdrawalStatus) ([]model.Withdrawal, *model.WithdrawalSummary, error)
}

// RequestWithdrawal delegates or returns a pending request.
func (s WithdrawalFacadeStub) RequestWithdrawal(ctx context.Context, userID int64, goalID *int64, amount decimal.Decimal, method model.Method, accountNumber, notes string) (*model.Withdrawal, error) {
	if s.RequestFn != nil {
		return s.RequestFn(ctx, userID, goalID, amount, method, accountNumber, notes)
	}
	source := model.SourceBalance
	if goalID != nil {
		source = model.SourceGoal
	}
	return &model.Withdrawal{ID: 1, UserID: userID, GoalID: goalID, Source: source, Amount: amount, Method: method, Status: model.WithdrawalStatusPending}, nil
}

// ApproveWithdrawal delegates or returns an approved request.
func (s WithdrawalFacadeStub) ApproveWithdrawal(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, id, notes)
	}
	return &model.Withdrawal{ID: id, Status: model.WithdrawalStatusApproved, Notes: notes}, nil
}

// RejectWithdrawal delegates or returns a rejected request.
func (s WithdrawalFacadeStub) RejectWithdrawal(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, id, notes)
	}
	return &model.Withdrawal{ID: id, Status: model.WithdrawalStatusRejected, Notes: notes}, nil
}

// Withdrawals returns canned history plus counts unless overridden.
func (s WithdrawalFacadeStub) Withdrawals(ctx context.Context, userID int64, status model.WithdrawalStatus) ([]model.Withdrawal, *model.WithdrawalSummary, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, status)
	}
	items := []model.Withdrawal{{ID: 1, UserID: userID, Source: model.SourceBalance, Amount: decimal.NewFromInt(10), Status: model.WithdrawalStatusPending}}
	return items, &model.WithdrawalSummary{Total: 1, Pending: 1}, nil
}

// BalanceFacadeStub simulates the money position endpoint.
type BalanceFacadeStub struct {
	BalanceFn func(context.Context, int64) (*model.BalanceSummary, error)
}

// Balance returns stored summary or default data.
func (s BalanceFacadeStub) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return &model.BalanceSummary{AvailableBalance: decimal.NewFromInt(10), TotalSaved: decimal.NewFromInt(5)}, nil
}

// NotificationFacadeStub simulates the notification endpoint.
type NotificationFacadeStub struct {
	ListFn func(context.Context, int64) ([]model.Notification, error)
}

// Notifications returns canned messages unless overridden.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Notification{{ID: 1, UserID: userID, Title: "Deposit received", Category: model.NotificationDeposit}}, nil
}

// ReportFacadeStub simulates statement rendering.
type ReportFacadeStub struct {
	ReportFn func(context.Context, int64, report.Format) ([]byte, error)
}

// Report delegates or returns a canned document.
func (s ReportFacadeStub) Report(ctx context.Context, userID int64, format report.Format) ([]byte, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx, userID, format)
	}
	return []byte("document"), nil
}

// SavingsFacadeStub aggregates the per-handler stubs into one surface.
type SavingsFacadeStub struct {
	AuthFacadeStub
	GoalFacadeStub
	TransactionFacadeStub
	WithdrawalFacadeStub
	BalanceFacadeStub
	NotificationFacadeStub
	ReportFacadeStub
}
