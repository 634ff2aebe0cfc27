package models

import "time"

// Transaction kinds.
const (
	KindDebt    = "debt"
	KindPayment = "payment"
)

// Transaction is a single immutable debt or payment event against a
// customer. There is no update path: entries are appended and, at most,
// deleted. AmountCent is strictly positive by construction; CreatedAt
// is the ordering key, ties broken by ID.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	CustomerID  uint      `gorm:"index;not null"`
	AmountCent  int64     `gorm:"not null"`
	Kind        string    `gorm:"size:20;not null"` // debt / payment
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"index"`
}
