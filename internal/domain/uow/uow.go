package uow

import (
	"context"

	"fundo-backend/internal/domain/loan"
	"fundo-backend/internal/domain/user"
)

// Repos are bound to the transaction opened by the UnitOfWork.
type Repos struct {
	Loans loan.Repository
	Users user.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in.
	// It returns loan.ErrNotFound without calling fn if the loan is missing.
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
