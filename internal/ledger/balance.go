package ledger

import "github.com/kararha/installment/internal/models"

// Balance is the derived view of what a customer owes. It is never
// stored; every consumer recomputes it from the entry set so it cannot
// drift after inserts or deletes.
type Balance struct {
	TotalDebtCent int64
	TotalPaidCent int64
	RemainingCent int64
	PaidOff       bool
}

// ComputeBalance derives a customer's balance from the initial debt and
// the full entry set. Pure: no I/O, no mutation, deterministic. This is
// the single code path for the derivation — guard checks, API views,
// summary and export all go through here.
//
// Remaining may legitimately be negative: deleting a debt entry that
// payments were already recorded against leaves the customer in credit.
// That state is preserved, not clamped.
func ComputeBalance(initialDebtCent int64, txs []models.Transaction) Balance {
	b := Balance{TotalDebtCent: initialDebtCent}
	for i := range txs {
		switch txs[i].Kind {
		case models.KindDebt:
			b.TotalDebtCent += txs[i].AmountCent
		case models.KindPayment:
			b.TotalPaidCent += txs[i].AmountCent
		}
	}
	b.RemainingCent = b.TotalDebtCent - b.TotalPaidCent
	b.PaidOff = b.RemainingCent <= 0
	return b
}
