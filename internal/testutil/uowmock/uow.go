package uowmock

import (
	"context"
	"errors"

	"fundo-backend/internal/domain/loan"
	"fundo-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error

	TxCalls     int
	LoanTxCalls int
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinLoanTx(fn func(context.Context, uint64, func(uow.Repos, *loan.Loan) error) error) *UoW {
	m.WithinLoanTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough wires both methods to run fn directly against r, loading the
// loan through r.Loans.GetByIDForUpdate the way the gorm implementation does.
// There is no rollback.
func Passthrough(r uow.Repos) *UoW {
	return New().
		WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		}).
		WithWithinLoanTx(func(ctx context.Context, id uint64, fn func(uow.Repos, *loan.Loan) error) error {
			l, err := r.Loans.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(r, l)
		})
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	m.TxCalls++
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	m.LoanTxCalls++
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}
