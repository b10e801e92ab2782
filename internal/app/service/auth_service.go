package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newgen_backend/internal/common"
	"newgen_backend/internal/common/security"
	"newgen_backend/internal/domain/model"
	"newgen_backend/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	notifier WelcomeNotifier
}

func NewAuthService(userRepo repository.UserRepository, hasher security.PasswordHasher, notifier WelcomeNotifier) *AuthService {
	return &AuthService{userRepo: userRepo, hasher: hasher, notifier: notifier}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string            `json:"message"`
	User    model.UserSummary `json:"user"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	// Friendly pre-check; the unique index on email is the actual guarantee.
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.ErrConflict
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a lost race.
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Fire-and-forget: signup has already succeeded, a notification failure
	// only gets logged. Detached context so the response does not wait.
	go func(email, name string) {
		enqueueCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.notifier.EnqueueWelcome(enqueueCtx, email, name); err != nil {
			logger.Error().Err(err).Str("email", email).Msg("failed to enqueue welcome notification")
		}
	}(user.Email, user.Name)

	user.HashedPassword = ""
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.FindByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same error as a wrong password; no hint which field was off.
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}

	return &LoginResponse{
		Message: "Login successful",
		User:    user.Summary(),
	}, nil
}
