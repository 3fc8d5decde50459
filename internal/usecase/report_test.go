package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/celengan/internal/domain/errors"
	"github.com/polkiloo/celengan/internal/domain/model"
	"github.com/polkiloo/celengan/internal/report"
	testhelpers "github.com/polkiloo/celengan/internal/test"
)

func reportFixture() *ReportUseCase {
	users := testhelpers.NewUserRepositoryStub()
	users.ByID[7] = &model.User{ID: 7, Name: "alice", AvailableBalance: decimal.NewFromInt(120)}
	goals := &testhelpers.GoalRepositoryStub{
		Goals: []model.Goal{{ID: 1, UserID: 7, Name: "bike", TargetAmount: decimal.NewFromInt(200), CurrentAmount: decimal.NewFromInt(50), Type: model.GoalTypeDigital}},
	}
	transactions := &testhelpers.TransactionRepositoryStub{
		Items: []model.Transaction{{ID: 11, GoalID: 1, Amount: decimal.NewFromInt(50), Method: model.MethodGopay}},
	}
	withdrawals := &testhelpers.WithdrawalRepositoryStub{
		Items: []model.Withdrawal{{ID: 31, UserID: 7, Amount: decimal.NewFromInt(40), Method: model.MethodBankTransfer, Status: model.WithdrawalStatusApproved}},
	}
	return NewReportUseCase(users, goals, transactions, withdrawals, report.NewBuilder())
}

func TestReportUseCaseGeneratePDF(t *testing.T) {
	uc := reportFixture()

	out, err := uc.Generate(context.Background(), 7, report.FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}

func TestReportUseCaseGenerateXLSX(t *testing.T) {
	uc := reportFixture()

	out, err := uc.Generate(context.Background(), 7, report.FormatXLSX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatal("expected XLSX output")
	}
}

func TestReportUseCaseGenerateUnknownUser(t *testing.T) {
	uc := NewReportUseCase(
		testhelpers.NewUserRepositoryStub(),
		&testhelpers.GoalRepositoryStub{},
		&testhelpers.TransactionRepositoryStub{},
		&testhelpers.WithdrawalRepositoryStub{},
		report.NewBuilder(),
	)

	if _, err := uc.Generate(context.Background(), 404, report.FormatPDF); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
