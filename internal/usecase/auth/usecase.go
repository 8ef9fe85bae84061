// Package auth verifies credentials and issues access tokens.
package auth

import (
	"context"
	"errors"
	"time"

	"fundo-backend/internal/domain/apperr"
	"fundo-backend/internal/domain/uow"
	"fundo-backend/internal/domain/user"

	"github.com/rs/zerolog"
)

var (
	errInvalidCredentials = apperr.BadRequest("Invalid username or password")
	errAccountDisabled    = apperr.BadRequest("User account is disabled")
)

type TokenSigner interface {
	Sign(username, role string) (string, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type Usecase struct {
	users      user.Repository
	tx         uow.UnitOfWork
	signer     TokenSigner
	hasher     PasswordHasher
	expMinutes int
	now        func() time.Time
	log        zerolog.Logger
}

func NewUsecase(users user.Repository, tx uow.UnitOfWork, signer TokenSigner, hasher PasswordHasher, expMinutes int, log zerolog.Logger) *Usecase {
	return &Usecase{
		users:      users,
		tx:         tx,
		signer:     signer,
		hasher:     hasher,
		expMinutes: expMinutes,
		now:        time.Now,
		log:        log,
	}
}

// Login never reports whether the username exists: unknown users and wrong
// passwords share one message. A disabled account is checked before the
// password, and nothing is written unless every check passes.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginDTO, error) {
	usr, err := u.users.GetByUsername(ctx, in.Username)
	if errors.Is(err, user.ErrNotFound) {
		u.log.Warn().Str("username", in.Username).Msg("login failed: unknown user")
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !usr.IsActive {
		u.log.Warn().Str("username", in.Username).Msg("login failed: account disabled")
		return nil, errAccountDisabled
	}
	if !u.hasher.Verify(in.Password, usr.PasswordHash) {
		u.log.Warn().Str("username", in.Username).Msg("login failed: bad password")
		return nil, errInvalidCredentials
	}

	now := u.now().UTC()
	usr.LastLoginAt = &now
	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		return r.Users.Save(ctx, usr)
	})
	if err != nil {
		return nil, err
	}

	tok, err := u.signer.Sign(usr.Username, string(usr.Role))
	if err != nil {
		return nil, err
	}
	u.log.Info().Str("username", usr.Username).Msg("login succeeded")
	return &LoginDTO{Token: tok, ExpiresIn: u.expMinutes * 60}, nil
}

func (u *Usecase) HashPassword(plain string) (string, error) {
	return u.hasher.Hash(plain)
}

func (u *Usecase) VerifyPassword(plain, hash string) bool {
	return u.hasher.Verify(plain, hash)
}
