// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email. Emails are compared case-insensitively,
// matching the unique index on LOWER(email).
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their exact username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// ExistsByID reports whether a user with the given ID exists.
func (repo *userRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create persists a new user entity to the database. Unique constraint
// violations are translated to the matching domain conflict error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if conflictErr := translateUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if conflictErr := translateUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// DeleteByID permanently removes a user. There is no soft delete.
func (repo *userRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CountByRole returns the number of users holding the given role.
func (repo *userRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", role.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}

// FindByRole lists all users holding the given role.
func (repo *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("created_at").
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by role")
	}

	return toUserDomains(userModels), nil
}

// Search lists users whose email, username, first or last name contains the term,
// case-insensitively.
func (repo *userRepository) Search(ctx context.Context, term string) ([]*entity.User, error) {
	pattern := "%" + term + "%"

	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email ILIKE ? OR username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("created_at").
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return toUserDomains(userModels), nil
}

// translateUniqueViolation maps a unique constraint violation to the domain
// conflict error for the violated column. Returns nil when err is not a
// unique violation.
func translateUniqueViolation(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}

	email, username := violatedConstraintTargets(err)
	switch {
	case email:
		return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	case username:
		return domainerrors.ErrUsernameTaken.WrapMessage("username already taken")
	default:
		return domainerrors.ErrConflict.WrapMessage("unique constraint violated")
	}
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		Role:         entity.RoleFromString(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toUserDomains converts a slice of GORM UserModels to domain User entities.
func toUserDomains(data []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(data))
	for _, userM := range data {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Phone:        data.Phone,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
