package impl

import (
	"context"
	"testing"
	"time"

	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/repository"
	"patientapp/internal/domain/service"
	"patientapp/internal/errors"
	mockRepo "patientapp/internal/mocks/repository"
	mockSvc "patientapp/internal/mocks/service"
	"patientapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockUserRepository, *mockSvc.MockTokenService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewSessionService(SessionServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, userRepo, tokenService
}

func TestSessionService_ResolveSession_Success(t *testing.T) {
	svc, userRepo, tokenService := createTestSessionService(t)
	ctx := context.Background()
	alice := &entity.User{ID: uuid.New(), Username: "alice"}

	tokenService.EXPECT().Validate("good").Return(&service.Claims{Subject: "alice", ExpiresAt: time.Now().Add(time.Minute)}, nil)
	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)

	user, err := svc.ResolveSession(ctx, "good")

	require.NoError(t, err)
	assert.Equal(t, alice, user)
}

func TestSessionService_ResolveSession_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		svc, _, _ := createTestSessionService(t)

		_, err := svc.ResolveSession(ctx, "")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, _, tokenService := createTestSessionService(t)
		tokenService.EXPECT().Validate("forged").Return(nil, service.ErrInvalidToken)

		_, err := svc.ResolveSession(ctx, "forged")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		svc, userRepo, tokenService := createTestSessionService(t)
		tokenService.EXPECT().Validate("orphan").Return(&service.Claims{Subject: "gone"}, nil)
		userRepo.EXPECT().FindByUsername(ctx, "gone").Return(nil, repository.ErrUserNotFound)

		_, err := svc.ResolveSession(ctx, "orphan")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("store failure is internal", func(t *testing.T) {
		svc, userRepo, tokenService := createTestSessionService(t)
		dbErr := errors.New("connection reset")
		tokenService.EXPECT().Validate("good").Return(&service.Claims{Subject: "alice"}, nil)
		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, dbErr)

		_, err := svc.ResolveSession(ctx, "good")
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
