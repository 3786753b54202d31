// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt reads at most 72 bytes of input; longer passwords are truncated
// explicitly so Hash and Verify stay consistent with each other.
const maxPasswordBytes = 72

// passwordHasher is the private bcrypt-backed implementation of
// [PasswordHasher].
type passwordHasher struct {
	// cost is the bcrypt cost factor. Stored in the struct so it can be
	// raised per deployment without touching call sites.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt cost
// factor. A cost of zero selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &passwordHasher{cost: cost}
}

// Hash implements [PasswordHasher]. Each call generates a fresh random salt,
// so hashing the same password twice produces different strings.
func (p *passwordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher]. Any comparison failure, including a
// malformed stored hash, is reported as a mismatch.
func (p *passwordHasher) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
