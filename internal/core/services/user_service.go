package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/utils"
)

const invalidCredentialsMsg = "invalid email or password"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := newValidator().Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("User already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewPersistenceError("failed to hash password", err)
	}

	user := s.newUser(req.Email, req.Name, hash)
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User created successfully", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) FindOrCreateExternalUser(ctx context.Context, email, name string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationFailedError("email is required")
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up external user: %w", err)
	}

	user := s.newUser(email, strings.TrimSpace(name), "")
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost a race with a concurrent sign-in for the same email.
			return s.userRepo.FindUserByEmail(ctx, email)
		}
		return nil, fmt.Errorf("failed to create external user: %w", err)
	}

	s.LogInfo(ctx, "External user created", slog.String("user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser returns ErrUnauthorized for unknown emails, wrong passwords
// and password-less (external) accounts alike.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(invalidCredentialsMsg)
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Failed login attempt", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError(invalidCredentialsMsg)
	}
	return user, nil
}

func (s *userService) newUser(email, name, passwordHash string) domain.User {
	now := time.Now().UTC()
	userID := uuid.NewString()
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return domain.User{
		UserID:       userID,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
