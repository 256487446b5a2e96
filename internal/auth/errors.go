package auth

import "errors"

var (
	// ErrDuplicateCredential means the username or email is already taken.
	ErrDuplicateCredential = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password. Callers must not distinguish the two cases in any
	// client-facing message.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken means the token signature, payload, or expiry is bad.
	ErrInvalidToken = errors.New("invalid token")
)
