package db

import (
	"context"
	"fmt"

	"fundo-backend/internal/domain/loan"
	"fundo-backend/internal/domain/user"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&user.User{}, &loan.Loan{})
}

type seedUser struct {
	username, email, password string
	role                      user.Role
}

var seedUsers = []seedUser{
	{"admin", "admin@fundo.local", "Admin@123", user.RoleAdmin},
	{"demo", "demo@fundo.local", "Demo@123", user.RoleUser},
}

type seedLoan struct {
	name            string
	amount, balance string
}

var seedLoans = []seedLoan{
	{"John Doe", "10000", "8500"},
	{"Jane Smith", "25000", "25000"},
	{"Bob Johnson", "15000", "0"},
	{"Alice Williams", "50000", "42000"},
	{"Charlie Brown", "7500", "3200"},
}

// Seed fills empty users/loans tables with demo data. Tables that already
// hold rows are left alone.
func Seed(ctx context.Context, db *gorm.DB, hasher PasswordHasher, log zerolog.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedUserRows(tx, hasher, log); err != nil {
			return err
		}
		return seedLoanRows(tx, log)
	})
}

func seedUserRows(tx *gorm.DB, hasher PasswordHasher, log zerolog.Logger) error {
	var n int64
	if err := tx.Model(&user.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, su := range seedUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", su.username, err)
		}
		u := &user.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: hash,
			Role:         su.role,
			IsActive:     true,
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(seedUsers)).Msg("seeded users")
	return nil
}

func seedLoanRows(tx *gorm.DB, log zerolog.Logger) error {
	var n int64
	if err := tx.Model(&loan.Loan{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, sl := range seedLoans {
		l := loan.New(decimal.RequireFromString(sl.amount), sl.name)
		l.CurrentBalance = decimal.RequireFromString(sl.balance)
		if l.CurrentBalance.IsZero() {
			l.Status = loan.StatusPaid
		}
		if err := tx.Create(l).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(seedLoans)).Msg("seeded loans")
	return nil
}
