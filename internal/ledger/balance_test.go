package ledger

import (
	"testing"

	"github.com/kararha/installment/internal/models"
)

func TestComputeBalanceEmpty(t *testing.T) {
	b := ComputeBalance(100000, nil)
	if b.TotalDebtCent != 100000 || b.TotalPaidCent != 0 || b.RemainingCent != 100000 {
		t.Fatalf("got %+v, want debt=100000 paid=0 remaining=100000", b)
	}
	if b.PaidOff {
		t.Fatal("customer with open debt reported as paid off")
	}
}

func TestComputeBalanceZeroInitial(t *testing.T) {
	b := ComputeBalance(0, nil)
	if b.RemainingCent != 0 {
		t.Fatalf("remaining=%d want=0", b.RemainingCent)
	}
	// remaining <= 0 counts as paid off
	if !b.PaidOff {
		t.Fatal("zero balance should be paid off")
	}
}

func TestComputeBalanceMixedEntries(t *testing.T) {
	txs := []models.Transaction{
		{Kind: models.KindDebt, AmountCent: 50000},
		{Kind: models.KindPayment, AmountCent: 30000},
		{Kind: models.KindDebt, AmountCent: 20000},
		{Kind: models.KindPayment, AmountCent: 10000},
	}
	b := ComputeBalance(100000, txs)
	if b.TotalDebtCent != 170000 {
		t.Fatalf("total debt=%d want=170000", b.TotalDebtCent)
	}
	if b.TotalPaidCent != 40000 {
		t.Fatalf("total paid=%d want=40000", b.TotalPaidCent)
	}
	if b.RemainingCent != 130000 {
		t.Fatalf("remaining=%d want=130000", b.RemainingCent)
	}
	if b.PaidOff {
		t.Fatal("unexpected paid off")
	}
}

// A negative remaining balance is a legitimate state (the customer is
// in credit after a debt entry was removed); it must be reported as-is,
// not clamped to zero.
func TestComputeBalanceNegativeRemaining(t *testing.T) {
	txs := []models.Transaction{
		{Kind: models.KindPayment, AmountCent: 50000},
	}
	b := ComputeBalance(20000, txs)
	if b.RemainingCent != -30000 {
		t.Fatalf("remaining=%d want=-30000", b.RemainingCent)
	}
	if !b.PaidOff {
		t.Fatal("negative balance should count as paid off")
	}
}

func TestComputeBalanceIsPure(t *testing.T) {
	txs := []models.Transaction{
		{Kind: models.KindDebt, AmountCent: 100},
		{Kind: models.KindPayment, AmountCent: 40},
	}
	first := ComputeBalance(500, txs)
	second := ComputeBalance(500, txs)
	if first != second {
		t.Fatalf("same inputs gave %+v then %+v", first, second)
	}
	if txs[0].AmountCent != 100 || txs[1].AmountCent != 40 {
		t.Fatal("ComputeBalance mutated its input")
	}
}
