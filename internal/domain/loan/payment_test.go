package loan

import (
	"errors"
	"testing"

	"fundo-backend/internal/domain/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireInvariants(t *testing.T, l *Loan) {
	t.Helper()
	require.False(t, l.CurrentBalance.IsNegative(), "balance below zero: %s", l.CurrentBalance)
	require.True(t, l.CurrentBalance.LessThanOrEqual(l.Amount), "balance %s above amount %s", l.CurrentBalance, l.Amount)
	require.Equal(t, l.CurrentBalance.IsZero(), l.Status == StatusPaid, "status %s with balance %s", l.Status, l.CurrentBalance)
}

func TestNew(t *testing.T) {
	l := New(dec("15000"), "New User")

	assert.True(t, l.CurrentBalance.Equal(dec("15000")))
	assert.Equal(t, StatusActive, l.Status)
	assert.Equal(t, "New User", l.ApplicantName)
	assert.EqualValues(t, 1, l.Version)
	requireInvariants(t, l)
}

func TestApplyPayment_PaysOff(t *testing.T) {
	l := &Loan{Amount: dec("5000"), CurrentBalance: dec("1000"), Status: StatusActive}

	require.NoError(t, l.ApplyPayment(dec("1000")))
	assert.True(t, l.CurrentBalance.IsZero())
	assert.Equal(t, StatusPaid, l.Status)
	requireInvariants(t, l)
}

func TestApplyPayment_Partial(t *testing.T) {
	l := &Loan{Amount: dec("5000"), CurrentBalance: dec("1000"), Status: StatusActive}

	require.NoError(t, l.ApplyPayment(dec("250.25")))
	assert.True(t, l.CurrentBalance.Equal(dec("749.75")))
	assert.Equal(t, StatusActive, l.Status)
	requireInvariants(t, l)
}

func TestApplyPayment_SubCentRejected(t *testing.T) {
	for _, amt := range []string{"99.9999999999", "0.001"} {
		l := &Loan{Amount: dec("5000"), CurrentBalance: dec("1000"), Status: StatusActive}

		err := l.ApplyPayment(dec(amt))
		require.Error(t, err, amt)
		assert.True(t, apperr.Is(err, apperr.KindBadRequest))
		assert.True(t, l.CurrentBalance.Equal(dec("1000")), "balance changed to %s", l.CurrentBalance)
		requireInvariants(t, l)
	}
}

func TestApplyPayment_ExceedsBalance(t *testing.T) {
	l := &Loan{Amount: dec("5000"), CurrentBalance: dec("1000"), Status: StatusActive}

	err := l.ApplyPayment(dec("2000"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindBadRequest))
	assert.Equal(t, "Payment amount ($2,000.00) exceeds current balance ($1,000.00)", err.Error())
	assert.True(t, l.CurrentBalance.Equal(dec("1000")), "balance changed to %s", l.CurrentBalance)
	assert.Equal(t, StatusActive, l.Status)
}

func TestApplyPayment_AlreadyPaid(t *testing.T) {
	l := &Loan{Amount: dec("15000"), CurrentBalance: decimal.Zero, Status: StatusPaid}

	for _, amt := range []string{"0.01", "1", "15000"} {
		err := l.ApplyPayment(dec(amt))
		require.True(t, errors.Is(err, ErrAlreadyPaid), "amount %s: got %v", amt, err)
		assert.Equal(t, "This loan has already been paid off", err.Error())
		assert.True(t, l.CurrentBalance.IsZero())
		assert.Equal(t, StatusPaid, l.Status)
	}
}

func TestApplyPayment_RejectsNonPositive(t *testing.T) {
	l := &Loan{Amount: dec("100"), CurrentBalance: dec("100"), Status: StatusActive}

	for _, amt := range []string{"0", "-5"} {
		err := l.ApplyPayment(dec(amt))
		require.True(t, apperr.Is(err, apperr.KindBadRequest), "amount %s: got %v", amt, err)
	}
	assert.True(t, l.CurrentBalance.Equal(dec("100")))
}

// Binary floating point would leave a residue here; decimals must land on zero.
func TestApplyPayment_ExactZeroWithCents(t *testing.T) {
	l := New(dec("0.30"), "Cent Counter")

	for i := 0; i < 3; i++ {
		require.NoError(t, l.ApplyPayment(dec("0.10")))
		requireInvariants(t, l)
	}
	assert.Equal(t, StatusPaid, l.Status)
}

func TestApplyPayment_Monotonic(t *testing.T) {
	l := New(dec("10000"), "Mono Tone")
	prev := l.CurrentBalance
	for _, amt := range []string{"1500", "0.99", "3000.01", "20000", "5499", "1", "1"} {
		_ = l.ApplyPayment(dec(amt))
		require.True(t, l.CurrentBalance.LessThanOrEqual(prev), "balance rose from %s to %s", prev, l.CurrentBalance)
		requireInvariants(t, l)
		prev = l.CurrentBalance
	}
	assert.Equal(t, StatusPaid, l.Status)
}

func TestFormatCurrency(t *testing.T) {
	tests := map[string]string{
		"0":          "$0.00",
		"5":          "$5.00",
		"1000":       "$1,000.00",
		"12500.5":    "$12,500.50",
		"10000000":   "$10,000,000.00",
		"1234.567":   "$1,234.57",
		"-42.1":      "-$42.10",
		"999999.995": "$1,000,000.00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCurrency(dec(in)), "input %s", in)
	}
}
