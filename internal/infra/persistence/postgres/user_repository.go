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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a credential store backed by the given connection or transaction.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and copies the generated ID and timestamp back onto it.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return mapUserWriteError(err)
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", "id = ?", id)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by username", "username = ?", username)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by email", "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, failMsg, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, failMsg)
	}

	return toUserDomain(&userM), nil
}

// mapUserWriteError turns driver errors from an insert into domain errors. The
// constraint name decides which field collided.
func mapUserWriteError(err error) error {
	if isUniqueConstraintViolation(err) {
		switch uniqueConstraintName(err) {
		case model.UniqueUsersEmail:
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		default:
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
