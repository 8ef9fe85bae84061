package mysql

import (
	"context"
	"errors"
	"time"

	loanDomain "fundo-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	if l.Version == 0 {
		l.Version = 1
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return &out, nil
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	return &out, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save writes only the mutable columns, guarded by the version read earlier.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ? AND version = ?", l.ID, l.Version).
		Updates(map[string]any{
			"current_balance": l.CurrentBalance,
			"status":          string(l.Status),
			"version":         gorm.Expr("version + 1"),
			"updated_at":      now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrVersionConflict
	}
	l.Version++
	l.UpdatedAt = now
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loanDomain.ErrNotFound
	}
	return err
}
