package ledger

import (
	"github.com/kararha/installment/internal/models"

	"gorm.io/gorm"
)

// Summary is the portfolio-wide aggregate, folded from per-customer
// balances at a single snapshot.
type Summary struct {
	TotalCustomers     int
	TotalDebtCent      int64
	TotalPaidCent      int64
	TotalRemainingCent int64
	PaidOffCount       int
	ActiveCount        int
}

// Summary folds ComputeBalance over every customer inside one database
// transaction, so every total comes from the same snapshot. Totals are
// kept in cents here; rounding to two decimals is a display concern.
func (l *Ledger) Summary() (*Summary, error) {
	var s Summary
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var customers []models.Customer
		if err := withTransactions(tx).Find(&customers).Error; err != nil {
			return err
		}
		s.TotalCustomers = len(customers)
		for i := range customers {
			b := ComputeBalance(customers[i].InitialDebtCent, customers[i].Transactions)
			s.TotalDebtCent += b.TotalDebtCent
			s.TotalPaidCent += b.TotalPaidCent
			s.TotalRemainingCent += b.RemainingCent
			if b.PaidOff {
				s.PaidOffCount++
			}
		}
		s.ActiveCount = s.TotalCustomers - s.PaidOffCount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
