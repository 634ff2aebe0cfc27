package models

import "time"

// Customer represents an installment customer with a starting debt.
// Amounts are stored in cents to avoid float error, e.g. 12.34 = 1234.
// Balances are never stored; they are recomputed from the transaction
// log on every read (see the ledger package).
type Customer struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:100;not null"`
	Phone           string `gorm:"size:20;not null"`
	InitialDebtCent int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time

	Transactions []Transaction `gorm:"constraint:OnDelete:CASCADE"`
}
