package impl

import (
	"context"
	"testing"
	"time"

	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/domain/repository"
	mockRepo "explorer/internal/mocks/repository"
	mockSvc "explorer/internal/mocks/service"
	"explorer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockRepo.MockRefreshTokenRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return service, txManager, userRepo, refreshRepo, hasher, tokenService
}

func TestUserService_Register_Success(t *testing.T) {
	service, txManager, _, _, hasher, _ := newUserService(t)
	ctx := context.Background()

	hasher.EXPECT().ValidatePasswordStrength("str0ngpass").Return(nil)
	hasher.EXPECT().Hash("str0ngpass").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "str0ngpass"})

	require.NoError(t, err)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "hashed", output.User.PasswordHash)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	service, _, _, _, hasher, _ := newUserService(t)

	hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(domainerrors.ErrPasswordStrength)

	_, err := service.Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: "short"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	service, txManager, _, _, hasher, _ := newUserService(t)
	ctx := context.Background()

	hasher.EXPECT().ValidatePasswordStrength("str0ngpass").Return(nil)
	hasher.EXPECT().Hash("str0ngpass").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "str0ngpass"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	service, txManager, userRepo, _, hasher, tokenService := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "hashed"}

	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	hasher.EXPECT().Check("str0ngpass", "hashed").Return(true)
	tokenService.EXPECT().GenerateTokens(userID, "alice").Return("access", "refresh", nil)
	tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(_ context.Context, token *entity.RefreshToken) {
					assert.Equal(t, userID, token.UserID)
					assert.NotEqual(t, "refresh", token.TokenHash)
					assert.Len(t, token.TokenHash, 64)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "str0ngpass"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	service, _, userRepo, _, _, _ := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, _, userRepo, _, hasher, _ := newUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}

	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout_RevokesPresentedToken(t *testing.T) {
	service, _, _, refreshRepo, _, _ := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	refreshRepo.EXPECT().
		DeleteByHash(ctx, mock.AnythingOfType("string")).
		Return(nil)

	err := service.Logout(ctx, usecase.LogoutInput{UserID: userID, RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestUserService_Logout_AbsentTokenIsIdempotent(t *testing.T) {
	service, _, _, refreshRepo, _, _ := newUserService(t)
	ctx := context.Background()

	refreshRepo.EXPECT().
		DeleteByHash(ctx, mock.AnythingOfType("string")).
		Return(repository.ErrRefreshTokenNotFound)

	err := service.Logout(ctx, usecase.LogoutInput{UserID: uuid.New(), RefreshToken: "stale"})

	require.NoError(t, err)
}

func TestUserService_Logout_AllSessionsWhenNoToken(t *testing.T) {
	service, _, _, refreshRepo, _, _ := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	refreshRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	err := service.Logout(ctx, usecase.LogoutInput{UserID: userID})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	service, _, userRepo, _, hasher, _ := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	hasher.EXPECT().ValidatePasswordStrength("newpass12").Return(nil)
	hasher.EXPECT().Hash("newpass12").Return("newhash", nil)
	userRepo.EXPECT().UpdatePassword(ctx, userID, "newhash").Return(nil)

	err := service.ChangePassword(ctx, usecase.ChangePasswordInput{UserID: userID, NewPassword: "newpass12"})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_UserGone(t *testing.T) {
	service, _, userRepo, _, hasher, _ := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	hasher.EXPECT().ValidatePasswordStrength("newpass12").Return(nil)
	hasher.EXPECT().Hash("newpass12").Return("newhash", nil)
	userRepo.EXPECT().UpdatePassword(ctx, userID, "newhash").Return(repository.ErrUserNotFound)

	err := service.ChangePassword(ctx, usecase.ChangePasswordInput{UserID: userID, NewPassword: "newpass12"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ResetUsers(t *testing.T) {
	service, _, userRepo, _, _, _ := newUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().Reset(ctx).Return(nil)

	require.NoError(t, service.ResetUsers(ctx))
}
