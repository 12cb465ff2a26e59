package repository

import (
	"context"
	"errors"

	"patientapp/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPatientNotFound is returned when no record matches both the id and the owner.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository persists patient records. Every lookup and mutation is scoped
// by owner, so a record owned by someone else behaves exactly like a missing one.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error

	// FindByOwner lists the owner's records, oldest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Patient, error)

	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Patient, error)

	// Update overwrites the mutable fields of the record matching patient.ID and patient.OwnerID.
	Update(ctx context.Context, patient *entity.Patient) error

	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
