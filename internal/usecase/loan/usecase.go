package loan

import (
	"context"
	"errors"
	"strings"

	"fundo-backend/internal/domain/apperr"
	domain "fundo-backend/internal/domain/loan"
	"fundo-backend/internal/domain/uow"

	"github.com/rs/zerolog"
)

// MaxPaymentAttempts bounds how often a payment is re-run after losing a
// version race.
const MaxPaymentAttempts = 3

var errConcurrentUpdate = apperr.Conflict("Loan was modified concurrently, please retry")

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  zerolog.Logger
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{repo: r, uow: tx, log: log}
}

func notFound(id uint64) error {
	return apperr.NotFoundf("Loan with ID %d not found", id)
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if strings.TrimSpace(in.ApplicantName) == "" {
		return nil, apperr.BadRequest("Applicant name is required")
	}
	if !in.Amount.IsPositive() {
		return nil, apperr.BadRequest("Loan amount must be greater than 0")
	}
	if !domain.HasCents(in.Amount) {
		return nil, apperr.BadRequest("Loan amount must have at most 2 decimal places")
	}

	l := domain.New(in.Amount, in.ApplicantName)
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	u.log.Info().Uint64("loan_id", l.ID).Str("amount", l.Amount.StringFixed(2)).Msg("loan created")
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out, nil
}

// MakePayment applies amount to the loan under a row lock. The write is
// version-checked; a lost race re-runs the whole read-evaluate-write, so
// the business rules always see the latest balance.
func (u *Usecase) MakePayment(ctx context.Context, id uint64, in PaymentInput) (*LoanDTO, error) {
	for attempt := 1; attempt <= MaxPaymentAttempts; attempt++ {
		var dto *LoanDTO
		err := u.uow.WithinLoanTx(ctx, id, func(r uow.Repos, l *domain.Loan) error {
			if err := l.ApplyPayment(in.Amount); err != nil {
				return err
			}
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			dto = toDTO(l)
			return nil
		})

		switch {
		case err == nil:
			u.log.Info().Uint64("loan_id", id).Str("amount", in.Amount.StringFixed(2)).
				Str("status", dto.Status).Msg("payment applied")
			return dto, nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, notFound(id)
		case errors.Is(err, domain.ErrVersionConflict):
			u.log.Debug().Uint64("loan_id", id).Int("attempt", attempt).Msg("payment version conflict")
			continue
		default:
			return nil, err
		}
	}
	u.log.Warn().Uint64("loan_id", id).Msg("payment gave up after repeated version conflicts")
	return nil, errConcurrentUpdate
}
