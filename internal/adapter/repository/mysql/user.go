package mysql

import (
	"context"
	"errors"

	userDomain "fundo-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, res.Error
	}
	// MySQL's default collation folds case; usernames are case-sensitive.
	if out.Username != username {
		return nil, userDomain.ErrNotFound
	}
	return &out, nil
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
