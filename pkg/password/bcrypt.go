// Package password hashes and verifies user secrets with bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// MinCost is the lowest work factor the service accepts.
const MinCost = 12

type Bcrypt struct{ cost int }

// NewBcrypt clamps cost to [MinCost, bcrypt.MaxCost].
func NewBcrypt(cost int) Bcrypt {
	if cost < MinCost {
		cost = MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return Bcrypt{cost: cost}
}

func (b Bcrypt) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compares in constant time; a malformed hash is a mismatch.
func (b Bcrypt) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
