package usecase

import (
	"context"

	"patientapp/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePatientInput holds the fields of a new record. The owner is never part of it.
type CreatePatientInput struct {
	FirstName      string
	LastName       string
	DateOfBirth    string
	Gender         string
	Email          string
	Phone          string
	Address        string
	MedicalHistory *string
}

// UpdatePatientInput is a partial update; nil fields are left untouched.
type UpdatePatientInput struct {
	FirstName      *string
	LastName       *string
	DateOfBirth    *string
	Gender         *string
	Email          *string
	Phone          *string
	Address        *string
	MedicalHistory *string
}

// PatientUsecase manages the records of one owner. A record owned by someone else
// is reported exactly like a missing one.
type PatientUsecase interface {
	ListPatients(ctx context.Context, ownerID uuid.UUID) ([]*entity.Patient, error)
	CreatePatient(ctx context.Context, ownerID uuid.UUID, input *CreatePatientInput) (*entity.Patient, error)
	GetPatient(ctx context.Context, ownerID, patientID uuid.UUID) (*entity.Patient, error)
	UpdatePatient(ctx context.Context, ownerID, patientID uuid.UUID, input *UpdatePatientInput) (*entity.Patient, error)
	DeletePatient(ctx context.Context, ownerID, patientID uuid.UUID) error
}
