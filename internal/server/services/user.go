// Package services contains server-side business logic: accounts and tokens,
// the catalog, the entitlement ledger and the purchase flow built on top of it.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/gerich15/TemplateHub/internal/cryptox"
	"github.com/gerich15/TemplateHub/internal/logging"
	"github.com/gerich15/TemplateHub/internal/server/auth"
	"github.com/gerich15/TemplateHub/internal/server/config"
	"github.com/gerich15/TemplateHub/internal/server/models"
	"github.com/gerich15/TemplateHub/internal/server/repositories/repomanager"
	"github.com/gerich15/TemplateHub/internal/server/session"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	UserName string `validate:"required,min=3,max=80"`
	Email    string `validate:"required,email,max=120"`
	Password string `validate:"required,min=6,max=72"`
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - Profile: the current user
type UserService struct {
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		repomanager:                  m,
		logger:                       logger.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register validates the input and creates the account. A taken username or
// email is reported as common.ErrAlreadyExists naming the field.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.UserName = strings.TrimSpace(in.UserName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return nil, common.ErrInternal
	}

	u, err := s.repomanager.Users().Create(ctx, &models.User{UserName: in.UserName, Email: in.Email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login accepts either the email or the username and, on success, returns a
// new TokenPair.
func (s *UserService) Login(ctx context.Context, login, password string) (*TokenPair, error) {
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password are required", common.ErrValidation)
	}

	user, err := s.repomanager.Users().GetByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}
	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}

	return s.generateTokenPair(ctx, user.ID)
}

// RefreshToken validates a refresh token, rotates it atomically, and returns
// a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens()

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		_ = repo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	next, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrInternal
	}

	rotated, err := repo.Rotate(ctx, refreshToken, next, s.refreshTokenValidityDuration)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// lost a race with a concurrent refresh of the same token
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error rotating refresh token: %w", err)
	}

	access, err := s.generateAccessToken(rotated.UserID)
	if err != nil {
		return nil, common.ErrInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: next}, nil
}

// Logout revokes the refresh token. Unknown tokens are ignored.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return s.repomanager.RefreshTokens().Delete(ctx, refreshToken)
}

// Profile returns the authenticated caller's account.
func (s *UserService) Profile(ctx context.Context, caller session.Caller) (*models.User, error) {
	userID, ok := caller.UserID()
	if !ok {
		return nil, common.ErrUnauthenticated
	}
	u, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// token outlived its account
			return nil, common.ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}

// Authenticate resolves an access token into a caller.
func (s *UserService) Authenticate(token string) (session.Caller, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return session.Anonymous(), err
	}
	return session.User(userID), nil
}

func (s *UserService) generateAccessToken(userID int64) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID int64) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrInternal
	}
	if err := s.repomanager.RefreshTokens().Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		s.logger.Error(ctx, "store refresh token", "user_id", userID, "error", err)
		return nil, common.ErrInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
