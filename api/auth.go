package api

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pm-platform/registry/auth"
	"github.com/pm-platform/registry/errors"
)

// (POST /login)
func (h *Handler) Login(ec echo.Context) error {
	ctx := ec.Request().Context()

	dto := LoginRequestDto{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	token, err := h.authenticator.Authenticate(ctx, dto.Email, dto.Password)
	if err != nil {
		if stderrors.Is(err, auth.ErrUnauthenticated) {
			return errors.Unauthorized
		}
		return err
	}

	return ec.JSON(http.StatusOK, LoginResponseDto{Token: token})
}

// (GET /validate)
func (h *Handler) ValidateToken(ec echo.Context) error {
	// The auth middleware has already validated the bearer token by the time
	// this handler runs.
	return ec.NoContent(http.StatusOK)
}
