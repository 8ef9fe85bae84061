package loanmock

import (
	"context"
	"errors"

	domain "fundo-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Create and Save default to success; reads default to errUnimplemented.
type Repo struct {
	CreateFn           func(ctx context.Context, l *domain.Loan) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListFn             func(ctx context.Context) ([]domain.Loan, error)
	SaveFn             func(ctx context.Context, l *domain.Loan) error

	SaveCalls int
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	m.SaveCalls++
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
