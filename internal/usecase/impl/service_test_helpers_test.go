package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"patientapp/internal/domain/repository"
	mockRepo "patientapp/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// expectTx makes txManager run its callback against a factory that hands out the
// given repositories, and return whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo repository.UserRepository, patientRepo repository.PatientRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if userRepo != nil {
				factory.EXPECT().UserRepo().Return(userRepo).Maybe()
			}
			if patientRepo != nil {
				factory.EXPECT().PatientRepo().Return(patientRepo).Maybe()
			}

			return fn(factory)
		})
}
