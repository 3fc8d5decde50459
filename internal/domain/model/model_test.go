package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func TestGoalTypeValues(t *testing.T) {
	cases := []struct {
		name  string
		got   GoalType
		value string
	}{
		{"cash", GoalTypeCash, "cash"},
		{"digital", GoalTypeDigital, "digital"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !ValidGoalType(tc.got) {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}

	if ValidGoalType("crypto") {
		t.Fatal("expected unknown type to be invalid")
	}
}

func TestApplyDepositPartial(t *testing.T) {
	goal := &Goal{TargetAmount: dec("1000000"), CurrentAmount: dec("250000")}

	result := goal.ApplyDeposit(dec("100000"))

	if result.Completed {
		t.Fatal("goal should not be completed")
	}
	if !goal.CurrentAmount.Equal(dec("350000")) {
		t.Fatalf("unexpected current amount %s", goal.CurrentAmount)
	}
	if !result.Deposited.Equal(dec("100000")) {
		t.Fatalf("unexpected deposited %s", result.Deposited)
	}
	if !result.Overflow.IsZero() {
		t.Fatalf("expected zero overflow, got %s", result.Overflow)
	}
}

func TestApplyDepositOverflow(t *testing.T) {
	goal := &Goal{TargetAmount: dec("1000000"), CurrentAmount: decimal.Zero}

	result := goal.ApplyDeposit(dec("1500000"))

	if !result.Completed {
		t.Fatal("expected goal to be completed")
	}
	if !goal.CurrentAmount.Equal(goal.TargetAmount) {
		t.Fatalf("current amount %s must be clamped at target %s", goal.CurrentAmount, goal.TargetAmount)
	}
	if !result.Overflow.Equal(dec("500000")) {
		t.Fatalf("unexpected overflow %s", result.Overflow)
	}
	if !result.Deposited.Add(result.Overflow).Equal(dec("1500000")) {
		t.Fatalf("deposited %s + overflow %s must equal the full amount", result.Deposited, result.Overflow)
	}
}

func TestApplyDepositExactRemaining(t *testing.T) {
	goal := &Goal{TargetAmount: dec("500000"), CurrentAmount: dec("400000")}

	result := goal.ApplyDeposit(dec("100000"))

	if !result.Completed {
		t.Fatal("expected goal to be completed")
	}
	if !result.Overflow.IsZero() {
		t.Fatalf("expected zero overflow, got %s", result.Overflow)
	}
	if !result.Deposited.Equal(dec("100000")) {
		t.Fatalf("unexpected deposited %s", result.Deposited)
	}
}

func TestApplyDepositNeverExceedsTarget(t *testing.T) {
	goal := &Goal{TargetAmount: dec("100"), CurrentAmount: decimal.Zero}
	for i := 0; i < 10; i++ {
		goal.ApplyDeposit(dec("37.50"))
		if goal.CurrentAmount.GreaterThan(goal.TargetAmount) {
			t.Fatalf("current amount %s exceeds target", goal.CurrentAmount)
		}
		if goal.CurrentAmount.IsNegative() {
			t.Fatalf("current amount %s is negative", goal.CurrentAmount)
		}
	}
	if !goal.Completed() {
		t.Fatal("expected goal to be completed")
	}
}

func TestGoalSubtract(t *testing.T) {
	goal := &Goal{TargetAmount: dec("1000"), CurrentAmount: dec("600")}
	goal.Subtract(dec("150"))
	if !goal.CurrentAmount.Equal(dec("450")) {
		t.Fatalf("unexpected current amount %s", goal.CurrentAmount)
	}
}

func TestProgressPercentage(t *testing.T) {
	goal := &Goal{TargetAmount: dec("300000"), CurrentAmount: dec("100000")}
	if got := goal.ProgressPercentage(); !got.Equal(dec("33.33")) {
		t.Fatalf("unexpected progress %s", got)
	}

	zero := &Goal{TargetAmount: decimal.Zero, CurrentAmount: decimal.Zero}
	if got := zero.ProgressPercentage(); !got.IsZero() {
		t.Fatalf("expected zero progress for zero target, got %s", got)
	}
}

func TestMethodPolicyMatrix(t *testing.T) {
	cases := []struct {
		method  Method
		cash    bool
		digital bool
	}{
		{MethodManual, true, false},
		{MethodBalance, false, true},
		{MethodGopay, false, true},
		{MethodDana, false, true},
		{MethodBankTransfer, false, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.method), func(t *testing.T) {
			if got := tc.method.AllowedForGoalType(GoalTypeCash); got != tc.cash {
				t.Fatalf("cash: expected %v, got %v", tc.cash, got)
			}
			if got := tc.method.AllowedForGoalType(GoalTypeDigital); got != tc.digital {
				t.Fatalf("digital: expected %v, got %v", tc.digital, got)
			}
		})
	}
}

func TestValidDepositMethod(t *testing.T) {
	for _, m := range []Method{MethodManual, MethodBalance, MethodGopay, MethodDana, MethodOvo, MethodShopeepay, MethodBankTransfer, MethodPospay} {
		if !ValidDepositMethod(m) {
			t.Fatalf("expected %s to be a valid deposit method", m)
		}
	}
	if ValidDepositMethod(MethodAllocation) {
		t.Fatal("allocation must not be accepted from callers")
	}
	if ValidDepositMethod("bitcoin") {
		t.Fatal("unknown method must be invalid")
	}
}

func TestValidWithdrawalMethod(t *testing.T) {
	if !ValidWithdrawalMethod(MethodManual) {
		t.Fatal("manual must be a valid withdrawal method")
	}
	if ValidWithdrawalMethod(MethodBalance) {
		t.Fatal("balance is not a payout method")
	}
	if ValidWithdrawalMethod(MethodAllocation) {
		t.Fatal("allocation is not a payout method")
	}
}

func TestWithdrawalStatusValues(t *testing.T) {
	cases := []struct {
		status WithdrawalStatus
		value  string
	}{
		{WithdrawalStatusPending, "pending"},
		{WithdrawalStatusApproved, "approved"},
		{WithdrawalStatusRejected, "rejected"},
	}

	for _, tc := range cases {
		if string(tc.status) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.status)
		}
		if !ValidWithdrawalStatus(tc.status) {
			t.Fatalf("expected %s to be valid", tc.status)
		}
	}
	if ValidWithdrawalStatus("cancelled") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestWithdrawalPending(t *testing.T) {
	w := &Withdrawal{Status: WithdrawalStatusPending}
	if !w.Pending() {
		t.Fatal("expected pending")
	}
	w.Status = WithdrawalStatusApproved
	if w.Pending() {
		t.Fatal("approved withdrawal must not be pending")
	}
}
