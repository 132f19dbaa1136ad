package api

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pm-platform/registry/errors"
	"github.com/pm-platform/registry/patients"
)

// (GET /patients)
func (h *Handler) ListPatients(ec echo.Context) error {
	ctx := ec.Request().Context()
	list, err := h.patients.List(ctx)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, NewPatientsDto(list))
}

// (POST /patients)
func (h *Handler) CreatePatient(ec echo.Context) error {
	ctx := ec.Request().Context()

	dto := PatientRequestDto{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	created, err := h.patients.Create(ctx, NewPatient(dto))
	if err != nil {
		return translatePatientError(err)
	}

	return ec.JSON(http.StatusCreated, NewPatientDto(created))
}

// (PUT /patients/{patientId})
func (h *Handler) UpdatePatient(ec echo.Context, patientId string) error {
	ctx := ec.Request().Context()

	dto := PatientRequestDto{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	updated, err := h.patients.Update(ctx, patientId, NewPatient(dto))
	if err != nil {
		return translatePatientError(err)
	}

	return ec.JSON(http.StatusOK, NewPatientDto(updated))
}

// (DELETE /patients/{patientId})
func (h *Handler) DeletePatient(ec echo.Context, patientId string) error {
	ctx := ec.Request().Context()
	if err := h.patients.Delete(ctx, patientId); err != nil {
		return err
	}

	return ec.NoContent(http.StatusNoContent)
}

func translatePatientError(err error) error {
	if stderrors.Is(err, patients.ErrEmailExists) {
		return errors.New(errors.Duplicate, err)
	}
	if stderrors.Is(err, patients.ErrNotFound) {
		return errors.New(errors.NotFound, err)
	}
	return err
}
