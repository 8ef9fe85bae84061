package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns exactly 32 lowercase hex characters. Used for request ids.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// IsID32 reports whether s has the NewID32 shape.
func IsID32(s string) bool { return reHex32.MatchString(s) }

// NewTokenID returns a random UUID string for the jti claim.
func NewTokenID() string { return uuid.NewString() }
