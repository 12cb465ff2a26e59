package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"patientapp/internal/domain/entity"
	"patientapp/internal/domain/repository"
	"patientapp/internal/errors"

	"github.com/google/uuid"
)

type patientRepository struct {
	store *Store
	undo  *undoLog
}

// NewPatientRepository returns an owner-scoped patient store over s.
func NewPatientRepository(s *Store) repository.PatientRepository {
	return &patientRepository{store: s}
}

func (repo *patientRepository) Create(_ context.Context, patient *entity.Patient) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[patient.OwnerID]; !ok {
		return errors.Wrap(repository.ErrUserNotFound, "owner does not exist")
	}

	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	now := time.Now().UTC()
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = now
	}
	if patient.UpdatedAt.IsZero() {
		patient.UpdatedAt = patient.CreatedAt
	}

	id := patient.ID
	s.patients[id] = copyPatient(patient)
	repo.undo.record(func(s *Store) { delete(s.patients, id) })

	return nil
}

func (repo *patientRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Patient, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]*entity.Patient, 0)
	for _, p := range s.patients {
		if p.OwnerID == ownerID {
			patients = append(patients, copyPatient(p))
		}
	}

	slices.SortFunc(patients, func(a, b *entity.Patient) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return patients, nil
}

func (repo *patientRepository) FindByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*entity.Patient, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok || !p.IsOwnedBy(ownerID) {
		return nil, repository.ErrPatientNotFound
	}

	return copyPatient(p), nil
}

// Update replaces the mutable fields. OwnerID and CreatedAt keep their stored values.
func (repo *patientRepository) Update(_ context.Context, patient *entity.Patient) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.patients[patient.ID]
	if !ok || !prev.IsOwnedBy(patient.OwnerID) {
		return repository.ErrPatientNotFound
	}

	next := copyPatient(patient)
	next.OwnerID = prev.OwnerID
	next.CreatedAt = prev.CreatedAt
	s.patients[patient.ID] = next
	repo.undo.record(func(s *Store) { s.patients[prev.ID] = prev })

	return nil
}

func (repo *patientRepository) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.patients[id]
	if !ok || !prev.IsOwnedBy(ownerID) {
		return repository.ErrPatientNotFound
	}

	delete(s.patients, id)
	repo.undo.record(func(s *Store) { s.patients[prev.ID] = prev })

	return nil
}
