package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"reactivities/internal/models/request_models"
	"reactivities/internal/repositories"
	"reactivities/pkg/utils"
)

func newAccountService(t *testing.T) AccountServiceInterface {
	t.Setenv("JWT_SECRET", "test-secret")
	return NewAccountService(repositories.NewAccountRepository())
}

func signUpBob() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Username:    "bob",
		DisplayName: "Bob",
		Email:       "bob@example.com",
		Password:    "Pa$$w0rd",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	service := newAccountService(t)

	user, err := service.Register(context.Background(), signUpBob())
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
	require.Equal(t, "Bob", user.DisplayName)
	require.NotEmpty(t, user.Token)

	claims, err := utils.ValidateToken(user.Token)
	require.NoError(t, err)
	require.Equal(t, "bob", claims.Username)
}

func TestRegisterRejectsDuplicateEmailAndUsername(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, signUpBob())
	require.NoError(t, err)

	dup := signUpBob()
	dup.Username = "other"
	_, err = service.Register(ctx, dup)
	require.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	dup = signUpBob()
	dup.Email = "other@example.com"
	_, err = service.Register(ctx, dup)
	require.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestLoginReturnsUserWithToken(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, signUpBob())
	require.NoError(t, err)

	user, err := service.Login(ctx, request_models.LoginRequest{
		Email:    "bob@example.com",
		Password: "Pa$$w0rd",
	})
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
	require.NotEmpty(t, user.Token)
}

func TestLoginHidesWhichCredentialWasWrong(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, signUpBob())
	require.NoError(t, err)

	_, err = service.Login(ctx, request_models.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = service.Login(ctx, request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Pa$$w0rd",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetCurrentReturnsProfileWithoutToken(t *testing.T) {
	service := newAccountService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, signUpBob())
	require.NoError(t, err)

	user, err := service.GetCurrent(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "Bob", user.DisplayName)
	require.Empty(t, user.Token)

	_, err = service.GetCurrent(ctx, "nobody")
	require.ErrorIs(t, err, utils.ErrAccountNotFound)
}
