package api

import (
	"go.uber.org/fx"

	"github.com/pm-platform/registry/auth"
	"github.com/pm-platform/registry/patients"
)

type Handler struct {
	patients      patients.Service
	authenticator auth.Authenticator
}

type Params struct {
	fx.In

	Patients      patients.Service
	Authenticator auth.Authenticator
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients:      p.Patients,
		authenticator: p.Authenticator,
	}
}
