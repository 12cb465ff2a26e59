package memory

import (
	"context"
	"time"

	"patientapp/internal/domain/entity"
	domainerrors "patientapp/internal/domain/errors"
	"patientapp/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	undo  *undoLog
}

// NewUserRepository returns a credential store over s.
func NewUserRepository(s *Store) repository.UserRepository {
	return &userRepository{store: s}
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Username is checked before email, matching the order signup reports conflicts in.
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id := user.ID
	s.users[id] = copyUser(user)
	repo.undo.record(func(s *Store) { delete(s.users, id) })

	return nil
}

func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool { return u.ID == id })
}

func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool { return u.Username == username })
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return repo.find(func(u *entity.User) bool { return u.Email == email })
}

func (repo *userRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return copyUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}
