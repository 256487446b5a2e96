package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for password hashing. bcrypt embeds a fresh
// random salt in every digest, so hashing the same password twice yields
// different digests.
const BcryptCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt digest of plaintext. The plaintext is
// never stored; a hashing failure is an error, not a fallback.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the bcrypt digest.
// bcrypt recomputes with the salt embedded in the digest and compares in
// constant time.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
