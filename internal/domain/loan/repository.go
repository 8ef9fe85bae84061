package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	// Save persists balance and status, bumping Version. It returns
	// ErrVersionConflict if the stored version no longer matches l.Version.
	Save(ctx context.Context, l *Loan) error
}
