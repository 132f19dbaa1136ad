package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type AuthKey string

var AuthContextKey = AuthKey("auth")

const authorizationHeaderKey = "Authorization"
const bearerPrefix = "Bearer "

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
}

func NewAuthMiddleware(authenticator Authenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Allow skipping authentication for certain routes (e.g. login, readiness probe)
			if opts.Skipper != nil {
				if opts.Skipper(c) {
					return next(c)
				}
			}

			header := c.Request().Header.Get(authorizationHeaderKey)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token is missing")
			}

			claims, err := authenticator.Validate(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "bearer token is invalid",
					Internal: err,
				}
			}

			SetClaims(c, claims)
			return next(c)
		}
	}
}

func GetClaims(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(AuthContextKey).(*Claims); ok {
		return claims
	}

	return nil
}

func SetClaims(ec echo.Context, claims *Claims) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, claims)
	ec.SetRequest(ec.Request().WithContext(ctx))
}
