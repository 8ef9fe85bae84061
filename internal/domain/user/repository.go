package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByUsername matches case-sensitively and returns ErrNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, u *User) error
}
