package uowmock

import (
	"context"
	"errors"
	"testing"

	"fundo-backend/internal/domain/loan"
	"fundo-backend/internal/domain/uow"
	"fundo-backend/internal/testutil/loanmock"
	"fundo-backend/internal/testutil/usermock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	loans := &loanmock.Repo{}
	users := &usermock.Repo{}
	repos := uow.Repos{Loans: loans, Users: users}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			if fn == nil {
				t.Fatalf("WithinTx: fn is nil")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Loans != loans || r.Users != users {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Defaults_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinLoanTx(ctx, 1, func(uow.Repos, *loan.Loan) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinLoanTx default: want errUnimplemented, got %v", err)
	}
	if m.LoanTxCalls != 1 {
		t.Fatalf("LoanTxCalls = %d, want 1", m.LoanTxCalls)
	}
}

func TestPassthrough_LoadsLockedLoan(t *testing.T) {
	ctx := context.Background()
	lock := &loan.Loan{ID: 7}
	loans := &loanmock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, id uint64) (*loan.Loan, error) {
			if id != 7 {
				return nil, loan.ErrNotFound
			}
			return lock, nil
		},
	}
	m := Passthrough(uow.Repos{Loans: loans})

	var got *loan.Loan
	if err := m.WithinLoanTx(ctx, 7, func(_ uow.Repos, l *loan.Loan) error {
		got = l
		return nil
	}); err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}
	if got != lock {
		t.Fatalf("loan not forwarded: %+v", got)
	}

	called := false
	err := m.WithinLoanTx(ctx, 8, func(uow.Repos, *loan.Loan) error {
		called = true
		return nil
	})
	if !errors.Is(err, loan.ErrNotFound) || called {
		t.Fatalf("missing loan: err=%v called=%v", err, called)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New()
	if m.WithinTxFn != nil || m.WithinLoanTxFn != nil {
		t.Fatalf("New should start with nil funcs")
	}

	m.WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinLoanTx(func(context.Context, uint64, func(uow.Repos, *loan.Loan) error) error { return nil })

	if m.WithinTxFn == nil || m.WithinLoanTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}

	m.Reset()
	if m.WithinTxFn != nil || m.WithinLoanTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
