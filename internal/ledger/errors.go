// Package ledger holds the core of the installment system: the account
// store operations, the append-only transaction log, balance derivation
// and the validation boundary that keeps payments from exceeding what a
// customer still owes. HTTP handlers are thin adapters over this package.
package ledger

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers translate these to HTTP status codes; none of
// them is transient, they are all deterministic rejections of the input.
var (
	// ErrCustomerNotFound means the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrTransactionNotFound means the referenced transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidPayment means a payment exceeds the remaining balance at
	// the instant of the check. Distinct from generic validation so the
	// API can tell "amount too large" apart from "amount non-positive".
	ErrInvalidPayment = errors.New("payment exceeds remaining balance")
)

// ValidationError reports a bad input value for a named field.
// No mutation happens when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}
