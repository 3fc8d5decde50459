package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	testhelpers "github.com/polkiloo/celengan/internal/test"
)

func TestTransactionUseCaseDepositValidation(t *testing.T) {
	goals := &testhelpers.GoalRepositoryStub{
		DepositFn: func(context.Context, int64, int64, decimal.Decimal, model.Method, string) (*model.Transaction, *model.FundingResult, error) {
			t.Fatal("deposit should not be called on validation errors")
			return nil, nil, nil
		},
	}
	uc := NewTransactionUseCase(goals, &testhelpers.TransactionRepositoryStub{}, &testhelpers.SinkStub{})

	if _, _, err := uc.Deposit(context.Background(), 7, 3, decimal.NewFromInt(-5), model.MethodManual, ""); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, _, err := uc.Deposit(context.Background(), 7, 3, decimal.NewFromInt(5), "paypal", ""); !errors.Is(err, domainErrors.ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
	if _, _, err := uc.Deposit(context.Background(), 7, 3, decimal.NewFromInt(5), model.MethodAllocation, ""); !errors.Is(err, domainErrors.ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod for internal allocation method, got %v", err)
	}
}

func TestTransactionUseCaseDepositNotifies(t *testing.T) {
	sink := &testhelpers.SinkStub{}
	goals := &testhelpers.GoalRepositoryStub{}
	uc := NewTransactionUseCase(goals, &testhelpers.TransactionRepositoryStub{}, sink)

	_, _, err := uc.Deposit(context.Background(), 7, 3, decimal.NewFromInt(50), model.MethodGopay, "topup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals.DepositCalls) != 1 {
		t.Fatalf("expected 1 deposit call, got %d", len(goals.DepositCalls))
	}
	if len(sink.Calls) != 1 || sink.Calls[0].Category != model.NotificationDeposit {
		t.Fatalf("unexpected notifications: %+v", sink.Calls)
	}
}

func TestTransactionUseCaseDepositCompletionNotifies(t *testing.T) {
	sink := &testhelpers.SinkStub{}
	goals := &testhelpers.GoalRepositoryStub{
		DepositFn: func(ctx context.Context, userID, goalID int64, amount decimal.Decimal, method model.Method, description string) (*model.Transaction, *model.FundingResult, error) {
			return &model.Transaction{ID: 1}, &model.FundingResult{
				Completed: true,
				Deposited: decimal.NewFromInt(20),
				Overflow:  decimal.NewFromInt(30),
			}, nil
		},
	}
	uc := NewTransactionUseCase(goals, &testhelpers.TransactionRepositoryStub{}, sink)

	_, result, err := uc.Deposit(context.Background(), 7, 3, decimal.NewFromInt(50), model.MethodGopay, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Completed {
		t.Fatal("expected completion result")
	}
	if len(sink.Calls) != 2 {
		t.Fatalf("expected deposit and goal-reached notifications, got %+v", sink.Calls)
	}
}

func TestTransactionUseCaseDepositErrorSkipsNotification(t *testing.T) {
	sink := &testhelpers.SinkStub{}
	goals := &testhelpers.GoalRepositoryStub{
		DepositFn: func(context.Context, int64, int64, decimal.Decimal, model.Method, string) (*model.Transaction, *model.FundingResult, error) {
			return nil, nil, domainErrors.ErrGoalCompleted
		},
	}
	uc := NewTransactionUseCase(goals, &testhelpers.TransactionRepositoryStub{}, sink)

	if _, _, err := uc.Deposit(context.Background(), 7, 3, decimal.NewFromInt(50), model.MethodGopay, ""); !errors.Is(err, domainErrors.ErrGoalCompleted) {
		t.Fatalf("expected ErrGoalCompleted, got %v", err)
	}
	if len(sink.Calls) != 0 {
		t.Fatalf("expected no notifications, got %+v", sink.Calls)
	}
}

func TestTransactionUseCaseDelete(t *testing.T) {
	transactions := &testhelpers.TransactionRepositoryStub{
		Items: []model.Transaction{{ID: 11, GoalID: 3, Amount: decimal.NewFromInt(50)}},
	}
	uc := NewTransactionUseCase(&testhelpers.GoalRepositoryStub{}, transactions, &testhelpers.SinkStub{})

	deleted, err := uc.Delete(context.Background(), 11, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != 11 {
		t.Fatalf("unexpected transaction: %+v", deleted)
	}
	if len(transactions.Deleted) != 1 || transactions.Deleted[0] != 11 {
		t.Fatalf("expected delete invocation, got %+v", transactions.Deleted)
	}
}

func TestTransactionUseCaseDeleteLockedPropagates(t *testing.T) {
	transactions := &testhelpers.TransactionRepositoryStub{
		DeleteCompensatingFn: func(context.Context, int64, int64) (*model.Transaction, error) {
			return nil, domainErrors.ErrTransactionLocked
		},
	}
	uc := NewTransactionUseCase(&testhelpers.GoalRepositoryStub{}, transactions, &testhelpers.SinkStub{})

	if _, err := uc.Delete(context.Background(), 11, 7); !errors.Is(err, domainErrors.ErrTransactionLocked) {
		t.Fatalf("expected ErrTransactionLocked, got %v", err)
	}
}
