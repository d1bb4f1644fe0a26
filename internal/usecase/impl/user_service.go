// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/domain/repository"
	"explorer/internal/domain/service"
	"explorer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// hashRefreshToken derives the stored lookup key for a refresh token.
// Only the digest touches the database.
func hashRefreshToken(token string) string {
	digest := sha256.Sum256([]byte(token))

	return hex.EncodeToString(digest[:])
}

// Register creates a new account. The username unique constraint settles
// concurrent registrations of the same name.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", slog.String("username", input.Username))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.logger.Warn("Password validation failed during registration",
			slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and opens a session. Authentication failures
// are reported uniformly so a caller cannot probe which part was wrong.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Username)
	if err != nil {
		srv.logger.Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate session tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RefreshTokenRepo().Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout revokes the presented refresh token, or all of the user's
// sessions when none is supplied. Revoking an already-absent token is an
// idempotent success.
func (srv *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	if input.RefreshToken == "" {
		if err := srv.refreshTokenRepo.DeleteByUserID(ctx, input.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		srv.logger.Info("All sessions revoked", slog.Any("userID", input.UserID))

		return nil
	}

	err := srv.refreshTokenRepo.DeleteByHash(ctx, hashRefreshToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke session")
	}

	srv.logger.Info("Session revoked", slog.Any("userID", input.UserID))

	return nil
}

// ChangePassword validates and stores a new password for the
// authenticated user.
func (srv *userService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.logger.Error("Failed to hash password during password change", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	err = srv.userRepo.UpdatePassword(ctx, input.UserID, hashedPassword)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.logger.Info("Password changed", slog.Any("userID", input.UserID))

	return nil
}

// ResetUsers drops and recreates the account storage.
func (srv *userService) ResetUsers(ctx context.Context) error {
	if err := srv.userRepo.Reset(ctx); err != nil {
		return err
	}

	srv.logger.Warn("Users storage reset")

	return nil
}
