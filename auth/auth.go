package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned for unknown emails and wrong passwords
// alike, so callers cannot probe which emails exist.
var ErrUnauthenticated = errors.New("invalid email or password")

var ErrCredentialNotFound = errors.New("credential not found")

//go:generate go tool mockgen -source=./auth.go -destination=./test/mock_auth.go -package test

// Credential is read-only from the gateway's perspective.
type Credential struct {
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
	Role         string `bson:"role"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Credential, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Validate(token string) (*Claims, error)
}
