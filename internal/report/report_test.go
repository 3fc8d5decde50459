package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/celengan/internal/domain/model"
)

func sampleData() Data {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return Data{
		User: &model.User{
			ID:               7,
			Name:             "alice",
			AvailableBalance: decimal.NewFromInt(120),
		},
		Goals: []model.Goal{
			{ID: 1, Name: "bike", TargetAmount: decimal.NewFromInt(200), CurrentAmount: decimal.NewFromInt(50), Type: model.GoalTypeDigital},
		},
		Transactions: []model.Transaction{
			{ID: 11, GoalID: 1, Amount: decimal.NewFromInt(50), Method: model.MethodGopay, TransactionDate: now},
		},
		Withdrawals: []model.Withdrawal{
			{ID: 31, Amount: decimal.NewFromInt(40), Method: model.MethodBankTransfer, Status: model.WithdrawalStatusApproved, CreatedAt: now},
		},
		GeneratedAt: now,
	}
}

func TestBuilderPDF(t *testing.T) {
	out, err := NewBuilder().PDF(sampleData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", out[:min(8, len(out))])
	}
}

func TestBuilderXLSX(t *testing.T) {
	out, err := NewBuilder().XLSX(sampleData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatalf("expected zip header, got %q", out[:min(4, len(out))])
	}
}

func TestBuilderRender(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Render(FormatPDF, sampleData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Render(FormatXLSX, sampleData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Render("csv", sampleData()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestValidFormat(t *testing.T) {
	if !ValidFormat(FormatPDF) || !ValidFormat(FormatXLSX) {
		t.Fatal("expected pdf and xlsx to be valid")
	}
	if ValidFormat("doc") {
		t.Fatal("expected doc to be invalid")
	}
}
