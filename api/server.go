package api

import (
	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/pm-platform/registry/auth"
	"github.com/pm-platform/registry/errors"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, authenticator auth.Authenticator, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip auth for the readiness probe and the login endpoint itself
	skipper := RouteSkipper([]string{"/ready", "/login"})
	authMiddleware := auth.NewAuthMiddleware(authenticator, auth.AuthMiddlewareOpts{
		Skipper: skipper,
	})

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(logger))
	e.Use(authMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

func RegisterHandlers(e *echo.Echo, handler *Handler) {
	e.POST("/login", handler.Login)
	e.GET("/validate", handler.ValidateToken)

	e.GET("/patients", handler.ListPatients)
	e.POST("/patients", handler.CreatePatient)
	e.PUT("/patients/:patientId", func(ec echo.Context) error {
		return handler.UpdatePatient(ec, ec.Param("patientId"))
	})
	e.DELETE("/patients/:patientId", func(ec echo.Context) error {
		return handler.DeletePatient(ec, ec.Param("patientId"))
	})
}
