package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T) (usecase.AdminUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewAdminService(AdminServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return service, userRepo
}

func TestAdminService_ListUsersByRole(t *testing.T) {
	service, userRepo := createTestAdminService(t)

	ctx := context.Background()
	stored := []*entity.User{
		{ID: uuid.New(), Username: "alpha", PasswordHash: "secret-hash", Role: entity.RoleUser},
		{ID: uuid.New(), Username: "beta", PasswordHash: "secret-hash", Role: entity.RoleUser},
	}

	userRepo.EXPECT().FindByRole(ctx, entity.RoleUser).Return(stored, nil)

	users, err := service.ListUsersByRole(ctx, entity.RoleUser)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, stored[0].ID, users[0].ID)
	assert.Equal(t, "alpha", users[0].Username)
}

func TestAdminService_ListUsersByRole_RepoError(t *testing.T) {
	service, userRepo := createTestAdminService(t)

	ctx := context.Background()

	userRepo.EXPECT().FindByRole(ctx, entity.RoleAdmin).Return(nil, errors.New("connection reset"))

	users, err := service.ListUsersByRole(ctx, entity.RoleAdmin)

	require.Error(t, err)
	assert.Nil(t, users)
}

func TestAdminService_SearchUsers(t *testing.T) {
	service, userRepo := createTestAdminService(t)

	ctx := context.Background()
	stored := []*entity.User{
		{ID: uuid.New(), Username: "charlie", Email: "charlie@example.com", PasswordHash: "secret-hash"},
	}

	userRepo.EXPECT().Search(ctx, "charlie").Return(stored, nil)

	users, err := service.SearchUsers(ctx, "charlie")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "charlie@example.com", users[0].Email)
}

func TestAdminService_CountByRole(t *testing.T) {
	service, userRepo := createTestAdminService(t)

	ctx := context.Background()

	userRepo.EXPECT().CountByRole(ctx, entity.RoleAdmin).Return(int64(3), nil)

	count, err := service.CountByRole(ctx, entity.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestAdminService_CountByRole_RepoError(t *testing.T) {
	service, userRepo := createTestAdminService(t)

	ctx := context.Background()

	userRepo.EXPECT().CountByRole(ctx, entity.RoleUser).Return(int64(0), errors.New("connection reset"))

	count, err := service.CountByRole(ctx, entity.RoleUser)

	require.Error(t, err)
	assert.Zero(t, count)
}
