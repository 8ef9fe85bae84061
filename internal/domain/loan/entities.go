package loan

import (
	"errors"
	"time"

	"fundo-backend/internal/domain/apperr"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaid   Status = "paid"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrVersionConflict is returned by Save when the row changed since it was read.
	ErrVersionConflict = errors.New("loan version conflict")

	ErrAlreadyPaid = apperr.BadRequest("This loan has already been paid off")
)

type Loan struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	CurrentBalance decimal.Decimal `gorm:"column:current_balance;type:decimal(18,2);not null" json:"current_balance"`
	ApplicantName  string          `gorm:"column:applicant_name;size:200;not null" json:"applicant_name"`
	Status         Status          `gorm:"column:status;size:50;not null;index:idx_loans_status" json:"status"`
	Version        uint64          `gorm:"column:version;not null" json:"-"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// New builds an unpaid loan whose balance equals the principal.
func New(amount decimal.Decimal, applicantName string) *Loan {
	return &Loan{
		Amount:         amount,
		CurrentBalance: amount,
		ApplicantName:  applicantName,
		Status:         StatusActive,
		Version:        1,
	}
}

func (l *Loan) IsPaid() bool { return l.Status == StatusPaid }
