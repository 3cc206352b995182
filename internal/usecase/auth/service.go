package auth

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/entities"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/domain/repositories"
	"github.com/jayantelango/ai-driven-meeting-summarizer/pkg/jwt"
)

// Service handles user registration and password based login
type Service struct {
	users  repositories.UserRepository
	tokens *jwt.Manager
	logger *zap.Logger
}

// NewService creates a new auth service
func NewService(users repositories.UserRepository, tokens *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// TokenPair carries the issued tokens and the authenticated user
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	User         *entities.User
}

// Register creates a new user account and issues a token pair
func (s *Service) Register(ctx context.Context, email, name, password string) (*TokenPair, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, errors.ErrUserAlreadyExists(email)
	} else if !stderrors.Is(err, entities.ErrUserNotFound) {
		return nil, errors.ErrDBQueryFailed(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	user := entities.NewUser(email, name)
	user.PasswordHash = string(hash)
	if err := user.Validate(); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("✅ User registered",
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email))
	}

	return s.issueTokens(user)
}

// Login verifies credentials and issues a token pair
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, entities.ErrUserNotFound) {
			return nil, errors.ErrInvalidCredentials()
		}
		return nil, errors.ErrDBQueryFailed(err)
	}

	if !user.IsActive {
		return nil, errors.ErrInvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials()
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to record login time", zap.Error(err))
	}

	if s.logger != nil {
		s.logger.Info("✅ User logged in", zap.String("user_id", user.ID.String()))
	}

	return s.issueTokens(user)
}

// Refresh exchanges a refresh token for a new token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.ErrInvalidToken()
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.ErrInvalidToken()
	}
	if !user.IsActive {
		return nil, errors.ErrInvalidToken()
	}

	return s.issueTokens(user)
}

func (s *Service) issueTokens(user *entities.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
