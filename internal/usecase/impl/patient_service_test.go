package impl

import (
	"context"
	"testing"
	"time"

	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/repository"
	"patientapp/internal/errors"
	mockRepo "patientapp/internal/mocks/repository"
	"patientapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type patientServiceFixtures struct {
	service     *patientService
	txManager   *mockRepo.MockTransactionManager
	patientRepo *mockRepo.MockPatientRepository
	clock       time.Time
}

func createTestPatientService(t *testing.T) *patientServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	patientRepo := mockRepo.NewMockPatientRepository(t)

	fx := &patientServiceFixtures{
		txManager:   txManager,
		patientRepo: patientRepo,
		clock:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	svc := NewPatientService(PatientServiceParams{
		TxManager:   txManager,
		PatientRepo: patientRepo,
		Logger:      newDiscardLogger(),
	}).(*patientService)
	svc.now = func() time.Time { return fx.clock }
	fx.service = svc

	return fx
}

func samplePatient(owner uuid.UUID) *entity.Patient {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return &entity.Patient{
		ID:          uuid.New(),
		OwnerID:     owner,
		FirstName:   "Bob",
		LastName:    "Smith",
		DateOfBirth: "1980-02-03",
		Gender:      "male",
		Email:       "bob@x.com",
		Phone:       "555-0100",
		Address:     "1 Main St",
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestPatientService_CreatePatient_ForcesOwner(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.patientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Patient")).
		Run(func(_ context.Context, p *entity.Patient) {
			p.ID = uuid.New()
		}).
		Return(nil)

	patient, err := fx.service.CreatePatient(ctx, owner, &usecase.CreatePatientInput{
		FirstName:      "Bob",
		LastName:       "Smith",
		MedicalHistory: strPtr("asthma"),
	})

	require.NoError(t, err)
	assert.Equal(t, owner, patient.OwnerID)
	assert.True(t, patient.IsOwnedBy(owner))
	assert.Equal(t, fx.clock, patient.CreatedAt)
	assert.Equal(t, fx.clock, patient.UpdatedAt)
	require.NotNil(t, patient.MedicalHistory)
	assert.Equal(t, "asthma", *patient.MedicalHistory)
}

func TestPatientService_ListPatients(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()
	owner := uuid.New()
	records := []*entity.Patient{samplePatient(owner), samplePatient(owner)}

	fx.patientRepo.EXPECT().FindByOwner(ctx, owner).Return(records, nil)

	list, err := fx.service.ListPatients(ctx, owner)

	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, p := range list {
		assert.True(t, p.IsOwnedBy(owner))
	}
}

func TestPatientService_GetPatient(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owned record", func(t *testing.T) {
		fx := createTestPatientService(t)
		record := samplePatient(owner)
		fx.patientRepo.EXPECT().FindByIDAndOwner(ctx, record.ID, owner).Return(record, nil)

		got, err := fx.service.GetPatient(ctx, owner, record.ID)

		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("foreign or missing record is not found", func(t *testing.T) {
		fx := createTestPatientService(t)
		id := uuid.New()
		fx.patientRepo.EXPECT().FindByIDAndOwner(ctx, id, owner).Return(nil, repository.ErrPatientNotFound)

		_, err := fx.service.GetPatient(ctx, owner, id)

		assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})
}

func TestPatientService_UpdatePatient_PartialPatch(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()
	owner := uuid.New()
	record := samplePatient(owner)

	expectTx(t, fx.txManager, nil, fx.patientRepo)
	fx.patientRepo.EXPECT().FindByIDAndOwner(ctx, record.ID, owner).Return(record, nil)
	fx.patientRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Patient) bool {
			return p.ID == record.ID && p.OwnerID == owner
		})).
		Return(nil)

	updated, err := fx.service.UpdatePatient(ctx, owner, record.ID, &usecase.UpdatePatientInput{
		Phone:          strPtr("555-0199"),
		MedicalHistory: strPtr("none"),
	})

	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	require.NotNil(t, updated.MedicalHistory)
	assert.Equal(t, "none", *updated.MedicalHistory)
	assert.Equal(t, "Bob", updated.FirstName)
	assert.Equal(t, "1 Main St", updated.Address)
	assert.Equal(t, owner, updated.OwnerID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), updated.CreatedAt)
	assert.Equal(t, fx.clock, updated.UpdatedAt)
}

func TestPatientService_UpdatePatient_EmptyPatchBumpsTimestamp(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()
	owner := uuid.New()
	record := samplePatient(owner)
	before := *record

	expectTx(t, fx.txManager, nil, fx.patientRepo)
	fx.patientRepo.EXPECT().FindByIDAndOwner(ctx, record.ID, owner).Return(record, nil)
	fx.patientRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.UpdatePatient(ctx, owner, record.ID, &usecase.UpdatePatientInput{})

	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
	updated.UpdatedAt = before.UpdatedAt
	assert.Equal(t, before, *updated)
}

func TestPatientService_UpdatePatient_ForeignRecord(t *testing.T) {
	fx := createTestPatientService(t)
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()

	expectTx(t, fx.txManager, nil, fx.patientRepo)
	fx.patientRepo.EXPECT().FindByIDAndOwner(ctx, id, owner).Return(nil, repository.ErrPatientNotFound)

	_, err := fx.service.UpdatePatient(ctx, owner, id, &usecase.UpdatePatientInput{FirstName: strPtr("Mallory")})

	assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	fx.patientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPatientService_DeletePatient(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owned record", func(t *testing.T) {
		fx := createTestPatientService(t)
		id := uuid.New()
		fx.patientRepo.EXPECT().Delete(ctx, id, owner).Return(nil)

		assert.NoError(t, fx.service.DeletePatient(ctx, owner, id))
	})

	t.Run("foreign record", func(t *testing.T) {
		fx := createTestPatientService(t)
		id := uuid.New()
		fx.patientRepo.EXPECT().Delete(ctx, id, owner).Return(repository.ErrPatientNotFound)

		err := fx.service.DeletePatient(ctx, owner, id)
		assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestPatientService(t)
		id := uuid.New()
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to delete patient")
		fx.patientRepo.EXPECT().Delete(ctx, id, owner).Return(dbErr)

		err := fx.service.DeletePatient(ctx, owner, id)
		assert.False(t, errors.Is(err, domainerrors.ErrPatientNotFound))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestApplyPatientUpdates_NilInput(t *testing.T) {
	owner := uuid.New()
	record := samplePatient(owner)
	before := *record

	applyPatientUpdates(record, nil)

	assert.Equal(t, before, *record)
}
