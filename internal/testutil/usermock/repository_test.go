package usermock

import (
	"context"
	"errors"
	"testing"

	domain "fundo-backend/internal/domain/user"
)

func TestRepo_DefaultsAndForwarding(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if _, err := m.GetByUsername(ctx, "x"); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByUsername default: %v", err)
	}

	m.GetByUsernameFn = func(_ context.Context, username string) (*domain.User, error) {
		if username != "demo" {
			return nil, domain.ErrNotFound
		}
		return &domain.User{Username: "demo"}, nil
	}
	if u, err := m.GetByUsername(ctx, "demo"); err != nil || u.Username != "demo" {
		t.Fatalf("GetByUsername: u=%v err=%v", u, err)
	}
	if _, err := m.GetByUsername(ctx, "Demo"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByUsername: want ErrNotFound, got %v", err)
	}

	_ = m.Save(ctx, &domain.User{})
	_ = m.Save(ctx, &domain.User{})
	if m.SaveCalls != 2 {
		t.Fatalf("SaveCalls = %d, want 2", m.SaveCalls)
	}
}
