package postgres

import (
	"context"

	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/repository"
	"patientapp/internal/errors"
	"patientapp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ownedPatientClause = "id = ? AND owner_id = ?"

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository returns an owner-scoped patient store backed by the given connection or transaction.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

func (repo *patientRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Patient, error) {
	var rows []model.PatientModel

	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(rows))
	for i := range rows {
		patients = append(patients, toPatientDomain(&rows[i]))
	}

	return patients, nil
}

func (repo *patientRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Patient, error) {
	var patientM model.PatientModel

	err := repo.db.WithContext(ctx).Where(ownedPatientClause, id, ownerID).Take(&patientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient")
	}

	return toPatientDomain(&patientM), nil
}

// Update writes every mutable column. OwnerID and CreatedAt are never part of the SET list.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where(ownedPatientClause, patient.ID, patient.OwnerID).
		Updates(map[string]any{
			"first_name":      patient.FirstName,
			"last_name":       patient.LastName,
			"date_of_birth":   patient.DateOfBirth,
			"gender":          patient.Gender,
			"email":           patient.Email,
			"phone":           patient.Phone,
			"address":         patient.Address,
			"medical_history": patient.MedicalHistory,
			"updated_at":      patient.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

func (repo *patientRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where(ownedPatientClause, id, ownerID).Delete(&model.PatientModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		DateOfBirth:    data.DateOfBirth,
		Gender:         data.Gender,
		Email:          data.Email,
		Phone:          data.Phone,
		Address:        data.Address,
		MedicalHistory: data.MedicalHistory,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		DateOfBirth:    data.DateOfBirth,
		Gender:         data.Gender,
		Email:          data.Email,
		Phone:          data.Phone,
		Address:        data.Address,
		MedicalHistory: data.MedicalHistory,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
