package impl

import (
	"context"
	"testing"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/infra/auth"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestAccountLifecycle walks one account through its whole life against the
// in-memory repository and a real bcrypt hasher: register, login, profile
// update, password change, deletion.
func TestAccountLifecycle(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepo()
	txManager := &fakeTxManager{repo: repo}
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	accountSvc := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		UserRepo:  repo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})
	profileSvc := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  repo,
		Hasher:    hasher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	authzSvc := NewAuthzService(AuthzServiceParams{
		UserRepo: repo,
		Logger:   newDiscardLogger(),
	})

	// Register.
	registered, err := accountSvc.Register(ctx, &usecase.RegisterInput{
		Username:  "traveler",
		Email:     "traveler@example.com",
		Password:  "initial-password",
		FirstName: "Ada",
		LastName:  "Liu",
	})
	require.NoError(t, err)
	userID := registered.User.ID

	// A second registration with the same email conflicts, case-insensitively.
	_, err = accountSvc.Register(ctx, &usecase.RegisterInput{
		Username: "othername",
		Email:    "TRAVELER@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	// Same username, different email.
	_, err = accountSvc.Register(ctx, &usecase.RegisterInput{
		Username: "traveler",
		Email:    "other@example.com",
		Password: "another-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	// Login with the initial password.
	loggedIn, err := accountSvc.Login(ctx, &usecase.LoginInput{
		Email:    "traveler@example.com",
		Password: "initial-password",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, loggedIn.User.ID)

	// The token principal resolves back to the account.
	resolved, err := authzSvc.ResolveCurrentUser(ctx, "traveler@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)

	// Update the profile, keeping the username.
	updated, err := profileSvc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Username:  "traveler",
		Email:     "traveler@example.com",
		FirstName: "Ada",
		LastName:  "Chen",
		Phone:     "0987654321",
	})
	require.NoError(t, err)
	assert.Equal(t, "Chen", updated.LastName)
	assert.Equal(t, "0987654321", updated.Phone)

	// Change the password.
	err = profileSvc.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "initial-password",
		NewPassword:     "rotated-password",
		ConfirmPassword: "rotated-password",
	})
	require.NoError(t, err)

	// The old password no longer works, the new one does.
	_, err = accountSvc.Login(ctx, &usecase.LoginInput{
		Email:    "traveler@example.com",
		Password: "initial-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = accountSvc.Login(ctx, &usecase.LoginInput{
		Email:    "traveler@example.com",
		Password: "rotated-password",
	})
	require.NoError(t, err)

	// Delete the account.
	err = profileSvc.DeleteUser(ctx, userID)
	require.NoError(t, err)

	// Deletion frees the identifiers and invalidates credentials and principals.
	_, err = accountSvc.Login(ctx, &usecase.LoginInput{
		Email:    "traveler@example.com",
		Password: "rotated-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = authzSvc.ResolveCurrentUser(ctx, "traveler@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = accountSvc.Register(ctx, &usecase.RegisterInput{
		Username: "traveler",
		Email:    "traveler@example.com",
		Password: "fresh-password",
	})
	require.NoError(t, err)
}
