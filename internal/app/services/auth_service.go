package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/auth"
)

// AuthService handles registration, login and session user resolution
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
	ResolveUser(ctx context.Context, userID int64) (*models.User, error)
}

type authServiceImpl struct {
	userRepo   repositories.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService. A non-positive bcryptCost uses auth.BcryptCost.
func NewAuthService(userRepo repositories.UserRepository, bcryptCost int, logger zerolog.Logger) AuthService {
	if bcryptCost <= 0 {
		bcryptCost = auth.BcryptCost
	}
	return &authServiceImpl{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a user with a hashed password.
// The role is stored as given; only the home greeting depends on it.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	name := req.Name
	if name == "" || req.Password == "" {
		return nil, apperrors.ErrCredentialsRequired
	}

	exists, err := s.userRepo.NameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error checking user name: %w", err)
	}
	if exists {
		s.logger.Info().Str("name", name).Msg("Registration rejected, name taken")
		return nil, apperrors.ErrUserAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Password: hash,
		RoleType: models.RoleType(req.Role),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("name", user.Name).Str("role", string(user.RoleType)).Msg("User registered")
	return user, nil
}

// Login checks the name and password pair
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	name := req.Name
	if name == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Info().Str("name", name).Msg("Login failed, unknown user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Info().Str("name", name).Msg("Login failed, wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// ResolveUser loads the user a session points at
func (s *authServiceImpl) ResolveUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error resolving session user: %w", err)
	}
	return user, nil
}
