package loan

import (
	domain "fundo-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	Amount        decimal.Decimal `json:"amount" validate:"required,dgt=0,dlte=10000000,dec2"`
	ApplicantName string          `json:"applicant_name" validate:"required,min=2,max=200,applicant_name"`
}

type PaymentInput struct {
	Amount decimal.Decimal `json:"amount" validate:"required,dgt=0,dlte=10000000,dec2"`
}

type LoanDTO struct {
	ID             uint64          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	ApplicantName  string          `json:"applicant_name"`
	Status         string          `json:"status"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		ID:             l.ID,
		Amount:         l.Amount,
		CurrentBalance: l.CurrentBalance,
		ApplicantName:  l.ApplicantName,
		Status:         string(l.Status),
	}
}
