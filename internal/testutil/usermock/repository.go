package usermock

import (
	"context"
	"errors"

	domain "fundo-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	SaveFn          func(ctx context.Context, u *domain.User) error

	SaveCalls int
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	m.SaveCalls++
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}
