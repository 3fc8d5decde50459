package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users    map[string]*model.User
	ByID     map[int64]*model.User
	Next     int64
	Err      error
	Credited []decimal.Decimal
	Debited  []decimal.Decimal
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AddBalance credits the stored user and records the amount.
func (s *UserRepositoryStub) AddBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if s.Err != nil {
		return s.Err
	}
	s.Credited = append(s.Credited, amount)
	if user, ok := s.ByID[userID]; ok {
		user.AvailableBalance = user.AvailableBalance.Add(amount)
	}
	return nil
}

// SubtractBalance debits the stored user, failing on insufficient funds.
func (s *UserRepositoryStub) SubtractBalance(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if s.Err != nil {
		return s.Err
	}
	if user, ok := s.ByID[userID]; ok {
		if user.AvailableBalance.LessThan(amount) {
			return domainErrors.ErrInsufficientBalance
		}
		user.AvailableBalance = user.AvailableBalance.Sub(amount)
	}
	s.Debited = append(s.Debited, amount)
	return nil
}

// GoalDepositCall captures one Deposit invocation.
type GoalDepositCall struct {
	UserID      int64
	GoalID      int64
	Amount      decimal.Decimal
	Method      model.Method
	Description string
}

// GoalRepositoryStub allows tests to customize goal behaviour.
type GoalRepositoryStub struct {
	CreateFn     func(context.Context, *model.Goal) (*model.Goal, error)
	GetByIDFn    func(context.Context, int64, int64) (*model.Goal, error)
	ListByUserFn func(context.Context, int64) ([]model.Goal, error)
	UpdateFn     func(context.Context, *model.Goal) error
	DeleteFn     func(context.Context, int64, int64) error
	SumCurrentFn func(context.Context, int64) (decimal.Decimal, decimal.Decimal, error)
	DepositFn    func(context.Context, int64, int64, decimal.Decimal, model.Method, string) (*model.Transaction, *model.FundingResult, error)
	AllocateFn   func(context.Context, int64, []model.AllocationEntry) ([]model.AllocationResult, error)

	Goals        []model.Goal
	DepositCalls []GoalDepositCall
	Allocations  [][]model.AllocationEntry
}

// Create delegates to override or echoes the goal with an identifier.
func (s *GoalRepositoryStub) Create(ctx context.Context, goal *model.Goal) (*model.Goal, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, goal)
	}
	created := *goal
	created.ID = int64(len(s.Goals) + 1)
	s.Goals = append(s.Goals, created)
	return &created, nil
}

// GetByID returns matched goal either via override or stored slice.
func (s *GoalRepositoryStub) GetByID(ctx context.Context, id, userID int64) (*model.Goal, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id, userID)
	}
	for _, g := range s.Goals {
		if g.ID == id && g.UserID == userID {
			goal := g
			return &goal, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns goals from configured slice.
func (s *GoalRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Goal, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Goals, nil
}

// Update applies override when provided.
func (s *GoalRepositoryStub) Update(ctx context.Context, goal *model.Goal) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, goal)
	}
	return nil
}

// Delete applies override when provided.
func (s *GoalRepositoryStub) Delete(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return nil
}

// SumCurrent aggregates stored goals unless overridden.
func (s *GoalRepositoryStub) SumCurrent(ctx context.Context, userID int64) (decimal.Decimal, decimal.Decimal, error) {
	if s.SumCurrentFn != nil {
		return s.SumCurrentFn(ctx, userID)
	}
	saved, target := decimal.Zero, decimal.Zero
	for _, g := range s.Goals {
		if g.UserID == userID {
			saved = saved.Add(g.CurrentAmount)
			target = target.Add(g.TargetAmount)
		}
	}
	return saved, target, nil
}

// Deposit records the call and delegates to override.
func (s *GoalRepositoryStub) Deposit(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error) {
	s.DepositCalls = append(s.DepositCalls, GoalDepositCall{
		UserID: userID, GoalID: goalID, Amount: amount, Method: method, Description: description,
	})
	if s.DepositFn != nil {
		return s.DepositFn(ctx, userID, goalID, amount, method, description)
	}
	txn := &model.Transaction{ID: 1, GoalID: goalID, Amount: amount, Method: method, Description: description}
	return txn, &model.FundingResult{Deposited: amount, Overflow: decimal.Zero}, nil
}

// Allocate records the batch and delegates to override.
func (s *GoalRepositoryStub) Allocate(ctx context.Context, userID int64, entries []model.AllocationEntry) ([]model.AllocationResult, error) {
	s.Allocations = append(s.Allocations, entries)
	if s.AllocateFn != nil {
		return s.AllocateFn(ctx, userID, entries)
	}
	results := make([]model.AllocationResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, model.AllocationResult{GoalID: e.GoalID, Amount: e.Amount})
	}
	return results, nil
}

// TransactionRepositoryStub exposes ledger entries to tests.
type TransactionRepositoryStub struct {
	GetByIDFn            func(context.Context, int64, int64) (*model.Transaction, error)
	ListByGoalFn         func(context.Context, int64, int64) ([]model.Transaction, error)
	ListByUserFn         func(context.Context, int64) ([]model.Transaction, error)
	DeleteCompensatingFn func(context.Context, int64, int64) (*model.Transaction, error)

	Items   []model.Transaction
	Deleted []int64
}

// GetByID returns matched entry either via override or stored slice.
func (s *TransactionRepositoryStub) GetByID(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id, userID)
	}
	for _, t := range s.Items {
		if t.ID == id {
			txn := t
			return &txn, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByGoal returns entries from configured slice.
func (s *TransactionRepositoryStub) ListByGoal(ctx context.Context, goalID, userID int64) ([]model.Transaction, error) {
	if s.ListByGoalFn != nil {
		return s.ListByGoalFn(ctx, goalID, userID)
	}
	var result []model.Transaction
	for _, t := range s.Items {
		if t.GoalID == goalID {
			result = append(result, t)
		}
	}
	return result, nil
}

// ListByUser returns all configured entries.
func (s *TransactionRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Items, nil
}

// DeleteCompensating records the call and delegates to override.
func (s *TransactionRepositoryStub) DeleteCompensating(ctx context.Context, id, userID int64) (*model.Transaction, error) {
	s.Deleted = append(s.Deleted, id)
	if s.DeleteCompensatingFn != nil {
		return s.DeleteCompensatingFn(ctx, id, userID)
	}
	return s.GetByID(ctx, id, userID)
}

// WithdrawalRepositoryStub stores withdrawal requests for tests.
type WithdrawalRepositoryStub struct {
	CreateFn            func(context.Context, *model.Withdrawal) (*model.Withdrawal, error)
	GetByIDFn           func(context.Context, int64) (*model.Withdrawal, error)
	ListByUserFn        func(context.Context, int64, model.WithdrawalStatus) ([]model.Withdrawal, error)
	SummaryFn           func(context.Context, int64) (*model.WithdrawalSummary, error)
	ListPendingBeforeFn func(context.Context, *int64, time.Time) ([]model.Withdrawal, error)
	ApproveFn           func(context.Context, int64, string) (*model.Withdrawal, error)
	RejectFn            func(context.Context, int64, string) (*model.Withdrawal, error)

	Items    []model.Withdrawal
	Approved []int64
	Rejected []int64
}

// Create delegates to override or echoes the request as pending.
func (s *WithdrawalRepositoryStub) Create(ctx context.Context, w *model.Withdrawal) (*model.Withdrawal, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, w)
	}
	created := *w
	created.ID = int64(len(s.Items) + 1)
	created.Status = model.WithdrawalStatusPending
	s.Items = append(s.Items, created)
	return &created, nil
}

// GetByID returns matched request either via override or stored slice.
func (s *WithdrawalRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Withdrawal, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, w := range s.Items {
		if w.ID == id {
			withdrawal := w
			return &withdrawal, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser filters stored requests by status when provided.
func (s *WithdrawalRepositoryStub) ListByUser(ctx context.Context, userID int64, status model.WithdrawalStatus) ([]model.Withdrawal, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, status)
	}
	var result []model.Withdrawal
	for _, w := range s.Items {
		if status != "" && w.Status != status {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}

// Summary counts stored requests by status.
func (s *WithdrawalRepositoryStub) Summary(ctx context.Context, userID int64) (*model.WithdrawalSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, userID)
	}
	summary := &model.WithdrawalSummary{}
	for _, w := range s.Items {
		summary.Total++
		switch w.Status {
		case model.WithdrawalStatusPending:
			summary.Pending++
		case model.WithdrawalStatusApproved:
			summary.Approved++
		case model.WithdrawalStatusRejected:
			summary.Rejected++
		}
	}
	return summary, nil
}

// ListPendingBefore returns pending requests created before cutoff.
func (s *WithdrawalRepositoryStub) ListPendingBefore(ctx context.Context, userID *int64, cutoff time.Time) ([]model.Withdrawal, error) {
	if s.ListPendingBeforeFn != nil {
		return s.ListPendingBeforeFn(ctx, userID, cutoff)
	}
	var result []model.Withdrawal
	for _, w := range s.Items {
		if w.Status != model.WithdrawalStatusPending || !w.CreatedAt.Before(cutoff) {
			continue
		}
		if userID != nil && w.UserID != *userID {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}

// Approve records the call and delegates to override.
func (s *WithdrawalRepositoryStub) Approve(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	s.Approved = append(s.Approved, id)
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, id, notes)
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			if s.Items[i].Status != model.WithdrawalStatusPending {
				return nil, domainErrors.ErrAlreadyProcessed
			}
			s.Items[i].Status = model.WithdrawalStatusApproved
			s.Items[i].Notes = notes
			withdrawal := s.Items[i]
			return &withdrawal, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Reject records the call and delegates to override.
func (s *WithdrawalRepositoryStub) Reject(ctx context.Context, id int64, notes string) (*model.Withdrawal, error) {
	s.Rejected = append(s.Rejected, id)
	if s.RejectFn != nil {
		return s.RejectFn(ctx, id, notes)
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			if s.Items[i].Status != model.WithdrawalStatusPending {
				return nil, domainErrors.ErrAlreadyProcessed
			}
			s.Items[i].Status = model.WithdrawalStatusRejected
			s.Items[i].Notes = notes
			withdrawal := s.Items[i]
			return &withdrawal, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// NotificationRepositoryStub records created notifications.
type NotificationRepositoryStub struct {
	CreateFn     func(context.Context, int64, string, string, model.NotificationCategory) (*model.Notification, error)
	ListByUserFn func(context.Context, int64) ([]model.Notification, error)

	Items []model.Notification
}

// Create stores the notification unless overridden.
func (s *NotificationRepositoryStub) Create(ctx context.Context, userID int64, title, message string, category model.NotificationCategory) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, title, message, category)
	}
	n := model.Notification{
		ID:       int64(len(s.Items) + 1),
		UserID:   userID,
		Title:    title,
		Message:  message,
		Category: category,
	}
	s.Items = append(s.Items, n)
	return &n, nil
}

// ListByUser returns stored notifications.
func (s *NotificationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Items, nil
}
