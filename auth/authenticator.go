package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pm-platform/registry/config"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type authenticator struct {
	repo     Repository
	secret   []byte
	duration time.Duration
	logger   *zap.SugaredLogger
}

var _ Authenticator = &authenticator{}

func NewAuthenticator(repo Repository, cfg *config.Config, logger *zap.SugaredLogger) (Authenticator, error) {
	return &authenticator{
		repo:     repo,
		secret:   []byte(cfg.JwtSecret),
		duration: cfg.TokenDuration,
		logger:   logger,
	}, nil
}

// Authenticate looks the credential up, then compares the password against
// the stored bcrypt hash. Both the missing-credential and wrong-password
// paths return ErrUnauthenticated with no distinguishing signal.
func (a *authenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	credential, err := a.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrCredentialNotFound) {
			return "", ErrUnauthenticated
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return "", ErrUnauthenticated
	}

	a.logger.Infow("issuing token", "subject", credential.Email)
	return a.sign(credential)
}

func (a *authenticator) sign(credential *Credential) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: credential.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   credential.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.duration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return token, nil
}

// Validate checks the signature and expiry of a previously issued token.
// Tokens are self-verifying; there is no server-side session state.
func (a *authenticator) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrUnauthenticated
	}

	return claims, nil
}
