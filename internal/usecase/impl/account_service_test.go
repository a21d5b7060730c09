package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	mockService "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	service := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username:  "newuser",
		Email:     "new@example.com",
		Password:  "password123",
		FirstName: "New",
		LastName:  "User",
	}
	newID := uuid.New()

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().FindByUsername(ctx, "newuser").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, user *entity.User) error {
					user.ID = newID

					return nil
				})

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "newuser", output.User.Username)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "newuser",
		Email:    "taken@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				FindByEmail(ctx, "taken@example.com").
				Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "takenname",
		Email:    "new@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				FindByUsername(ctx, "takenname").
				Return(&entity.User{ID: uuid.New(), Username: "takenname"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash("password123").Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{
		ID:           userID,
		Username:     "someone",
		Email:        "someone@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "someone@example.com").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "someone@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "someone", output.User.Username)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Account existence must not leak through the error type.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "someone@example.com",
		PasswordHash: "stored-hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "someone@example.com").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "someone@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
