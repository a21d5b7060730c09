package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthzService(t *testing.T) (usecase.AuthzUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewAuthzService(AuthzServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return service, userRepo
}

func TestAuthzService_ResolveCurrentUser_Success(t *testing.T) {
	service, userRepo := createTestAuthzService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByEmail(ctx, "someone@example.com").
		Return(&entity.User{ID: userID, Email: "someone@example.com"}, nil)

	resolved, err := service.ResolveCurrentUser(ctx, "someone@example.com")

	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestAuthzService_ResolveCurrentUser_EmptyPrincipal(t *testing.T) {
	service, _ := createTestAuthzService(t)

	resolved, err := service.ResolveCurrentUser(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, uuid.Nil, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthzService_ResolveCurrentUser_UnknownPrincipal(t *testing.T) {
	service, userRepo := createTestAuthzService(t)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	resolved, err := service.ResolveCurrentUser(ctx, "ghost@example.com")

	require.Error(t, err)
	assert.Equal(t, uuid.Nil, resolved)
	// A deleted account invalidates outstanding tokens.
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
