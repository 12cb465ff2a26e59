package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "patientapp/internal/delivery/context"
	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/repository"
	"patientapp/internal/errors"
	"patientapp/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// patientService implements the PatientUsecase interface. Every repository call
// carries the caller's id, so ownership is enforced by the query itself.
type patientService struct {
	txManager   repository.TransactionManager
	patientRepo repository.PatientRepository
	logger      *slog.Logger
	now         func() time.Time
}

// PatientServiceParams holds dependencies for PatientService, injected by Fx.
type PatientServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PatientRepo repository.PatientRepository
	Logger      *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(params PatientServiceParams) usecase.PatientUsecase {
	return &patientService{
		txManager:   params.TxManager,
		patientRepo: params.PatientRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *patientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *patientService) ListPatients(ctx context.Context, ownerID uuid.UUID) ([]*entity.Patient, error) {
	patients, err := srv.patientRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	return patients, nil
}

func (srv *patientService) CreatePatient(ctx context.Context, ownerID uuid.UUID, input *usecase.CreatePatientInput) (*entity.Patient, error) {
	now := srv.now().UTC()
	patient := &entity.Patient{
		OwnerID:        ownerID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		DateOfBirth:    input.DateOfBirth,
		Gender:         input.Gender,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		MedicalHistory: input.MedicalHistory,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.patientRepo.Create(ctx, patient); err != nil {
		return nil, errors.Wrap(err, "failed to create patient")
	}

	srv.log(ctx).Info("Patient created", slog.Any("patientID", patient.ID), slog.Any("ownerID", ownerID))

	return patient, nil
}

func (srv *patientService) GetPatient(ctx context.Context, ownerID, patientID uuid.UUID) (*entity.Patient, error) {
	patient, err := srv.patientRepo.FindByIDAndOwner(ctx, patientID, ownerID)
	if err != nil {
		return nil, mapPatientError(err, "failed to find patient")
	}

	return patient, nil
}

// UpdatePatient reads and writes the record in one transaction. UpdatedAt moves
// forward even when the patch is empty.
func (srv *patientService) UpdatePatient(ctx context.Context, ownerID, patientID uuid.UUID, input *usecase.UpdatePatientInput) (*entity.Patient, error) {
	var updated *entity.Patient

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patientRepo := repoFactory.PatientRepo()

		patient, err := patientRepo.FindByIDAndOwner(ctx, patientID, ownerID)
		if err != nil {
			return err
		}

		applyPatientUpdates(patient, input)
		patient.UpdatedAt = srv.now().UTC()

		if err := patientRepo.Update(ctx, patient); err != nil {
			return err
		}
		updated = patient

		return nil
	})
	if err != nil {
		return nil, mapPatientError(err, "failed to update patient")
	}

	srv.log(ctx).Info("Patient updated", slog.Any("patientID", patientID), slog.Any("ownerID", ownerID))

	return updated, nil
}

func (srv *patientService) DeletePatient(ctx context.Context, ownerID, patientID uuid.UUID) error {
	if err := srv.patientRepo.Delete(ctx, patientID, ownerID); err != nil {
		return mapPatientError(err, "failed to delete patient")
	}

	srv.log(ctx).Info("Patient deleted", slog.Any("patientID", patientID), slog.Any("ownerID", ownerID))

	return nil
}

// applyPatientUpdates copies every non-nil field of input onto patient.
func applyPatientUpdates(patient *entity.Patient, input *usecase.UpdatePatientInput) {
	if input == nil {
		return
	}
	if input.FirstName != nil {
		patient.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		patient.LastName = *input.LastName
	}
	if input.DateOfBirth != nil {
		patient.DateOfBirth = *input.DateOfBirth
	}
	if input.Gender != nil {
		patient.Gender = *input.Gender
	}
	if input.Email != nil {
		patient.Email = *input.Email
	}
	if input.Phone != nil {
		patient.Phone = *input.Phone
	}
	if input.Address != nil {
		patient.Address = *input.Address
	}
	if input.MedicalHistory != nil {
		history := *input.MedicalHistory
		patient.MedicalHistory = &history
	}
}

func mapPatientError(err error, msg string) error {
	if errors.Is(err, repository.ErrPatientNotFound) {
		return errors.Wrap(domainerrors.ErrPatientNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
