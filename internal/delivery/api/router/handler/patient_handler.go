package handler

import (
	"log/slog"

	"patientapp/internal/delivery/api/middleware"
	"patientapp/internal/delivery/api/response"
	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/errors"
	"patientapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PatientHandlerParams holds dependencies for PatientHandler, injected by Fx.
type PatientHandlerParams struct {
	fx.In

	PatientUC usecase.PatientUsecase
	Logger    *slog.Logger
}

// PatientHandler serves the /patients routes. Every route runs behind AuthMiddleware.
type PatientHandler struct {
	patientUC usecase.PatientUsecase
	logger    *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler.
func NewPatientHandler(params PatientHandlerParams) *PatientHandler {
	return &PatientHandler{
		patientUC: params.PatientUC,
		logger:    params.Logger,
	}
}

// ListPatients handles GET /patients/.
func (h *PatientHandler) ListPatients(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	patients, err := h.patientUC.ListPatients(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	out := make([]*PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}

	return response.OK(c, out)
}

// CreatePatient handles POST /patients/.
func (h *PatientHandler) CreatePatient(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreatePatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patient, err := h.patientUC.CreatePatient(c.Request().Context(), user.ID, &usecase.CreatePatientInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toPatientResponse(patient))
}

// GetPatient handles GET /patients/:id.
func (h *PatientHandler) GetPatient(c echo.Context) error {
	user, patientID, err := ownerAndPatientID(c)
	if err != nil {
		return err
	}

	patient, err := h.patientUC.GetPatient(c.Request().Context(), user.ID, patientID)
	if err != nil {
		return err
	}

	return response.OK(c, toPatientResponse(patient))
}

// UpdatePatient handles PUT /patients/:id.
func (h *PatientHandler) UpdatePatient(c echo.Context) error {
	user, patientID, err := ownerAndPatientID(c)
	if err != nil {
		return err
	}

	var req UpdatePatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patient, err := h.patientUC.UpdatePatient(c.Request().Context(), user.ID, patientID, &usecase.UpdatePatientInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		return err
	}

	return response.OK(c, toPatientResponse(patient))
}

// DeletePatient handles DELETE /patients/:id.
func (h *PatientHandler) DeletePatient(c echo.Context) error {
	user, patientID, err := ownerAndPatientID(c)
	if err != nil {
		return err
	}

	if err := h.patientUC.DeletePatient(c.Request().Context(), user.ID, patientID); err != nil {
		return err
	}

	return response.Message(c, "Patient deleted successfully")
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return user, nil
}

// ownerAndPatientID resolves the caller and the :id parameter. An id that is not a
// UUID cannot name any record, so it is reported as not found.
func ownerAndPatientID(c echo.Context) (*entity.User, uuid.UUID, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, uuid.Nil, err
	}

	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, uuid.Nil, errors.Wrap(domainerrors.ErrPatientNotFound, "malformed patient id")
	}

	return user, patientID, nil
}
