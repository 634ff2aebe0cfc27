package ledger

import (
	"errors"

	"github.com/kararha/installment/internal/models"

	"gorm.io/gorm"
)

// Default descriptions when the caller supplies none.
const (
	DefaultDebtDescription    = "new debt"
	DefaultPaymentDescription = "installment payment"
)

// ListTransactions returns a customer's entry log ordered ascending by
// creation time (the computation order). Display layers re-sort as they
// see fit.
func (l *Ledger) ListTransactions(customerID uint) ([]models.Transaction, error) {
	if err := l.ensureCustomer(customerID); err != nil {
		return nil, err
	}
	var txs []models.Transaction
	if err := l.db.Where("customer_id = ?", customerID).
		Order("created_at ASC, id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// RecordDebt appends a debt entry and returns the customer's refreshed
// view. Amount must be strictly positive.
func (l *Ledger) RecordDebt(customerID uint, amountCent int64, description string) (*models.Customer, error) {
	return l.record(customerID, amountCent, models.KindDebt, description)
}

// RecordPayment appends a payment entry after checking, under the same
// atomic unit as the write, that the amount does not exceed the
// remaining balance recomputed from the entries existing at that
// instant. On rejection nothing is written. Of two racing payments that
// would together overdraw the balance, exactly one commits.
func (l *Ledger) RecordPayment(customerID uint, amountCent int64, description string) (*models.Customer, error) {
	return l.record(customerID, amountCent, models.KindPayment, description)
}

func (l *Ledger) record(customerID uint, amountCent int64, kind, description string) (*models.Customer, error) {
	if amountCent <= 0 {
		return nil, invalidField("amount", "must be positive")
	}
	if description == "" {
		if kind == models.KindDebt {
			description = DefaultDebtDescription
		} else {
			description = DefaultPaymentDescription
		}
	}

	lock := l.customerLock(customerID)
	lock.Lock()
	defer lock.Unlock()

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var c models.Customer
		if err := tx.First(&c, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		if kind == models.KindPayment {
			var existing []models.Transaction
			if err := tx.Where("customer_id = ?", customerID).
				Order("created_at ASC, id ASC").
				Find(&existing).Error; err != nil {
				return err
			}
			if amountCent > ComputeBalance(c.InitialDebtCent, existing).RemainingCent {
				return ErrInvalidPayment
			}
		}

		entry := models.Transaction{
			CustomerID:  customerID,
			AmountCent:  amountCent,
			Kind:        kind,
			Description: description,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return l.GetCustomer(customerID)
}

// DeleteTransaction removes one entry; derived balances simply
// recompute on the next read. Deleting a debt entry that payments were
// already recorded against can leave the balance negative — that state
// is preserved, not clamped (the customer is in credit).
//
// Returns the owning customer's refreshed view, or nil if the customer
// itself no longer exists.
func (l *Ledger) DeleteTransaction(id uint) (*models.Customer, error) {
	var probe models.Transaction
	if err := l.db.First(&probe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	lock := l.customerLock(probe.CustomerID)
	lock.Lock()
	defer lock.Unlock()

	err := l.db.Transaction(func(tx *gorm.DB) error {
		// re-read under the lock; a cascade delete may have raced us
		var entry models.Transaction
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}
		return tx.Delete(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	c, err := l.GetCustomer(probe.CustomerID)
	if errors.Is(err, ErrCustomerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (l *Ledger) ensureCustomer(id uint) error {
	var c models.Customer
	if err := l.db.Select("id").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}
