package service

import "errors"

// Domain errors. Handlers map them to HTTP statuses; anything else is a store failure.
var (
	ErrDuplicateIdentity  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidPassword    = errors.New("password must be non-blank and at most 72 bytes")
)
