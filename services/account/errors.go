package account

import "errors"

var (
	// ErrDuplicateEmail signals a registration against an email already used
	// by an account of the same role.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrInvalidCredentials signals wrong email or password. The same error
	// covers unknown email so the two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound signals that no account matches the lookup.
	ErrNotFound = errors.New("account not found")
)
