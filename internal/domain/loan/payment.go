package loan

import (
	"fundo-backend/internal/domain/apperr"

	"github.com/shopspring/decimal"
)

// ApplyPayment reduces the balance by amount and flips the loan to paid
// when the balance reaches exactly zero. On error the loan is untouched.
func (l *Loan) ApplyPayment(amount decimal.Decimal) error {
	if l.IsPaid() {
		return ErrAlreadyPaid
	}
	if !amount.IsPositive() {
		return apperr.BadRequest("Payment amount must be greater than 0")
	}
	if !HasCents(amount) {
		return apperr.BadRequest("Payment amount must have at most 2 decimal places")
	}
	if amount.GreaterThan(l.CurrentBalance) {
		return apperr.BadRequestf("Payment amount (%s) exceeds current balance (%s)",
			FormatCurrency(amount), FormatCurrency(l.CurrentBalance))
	}

	l.CurrentBalance = l.CurrentBalance.Sub(amount)
	if l.CurrentBalance.IsZero() {
		l.Status = StatusPaid
	}
	return nil
}

// HasCents reports whether d carries no more than two decimal places.
func HasCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}
