package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"confcentral/internal/domain"
)

const tokenExpiry = 24 * time.Hour

var teeShirtSizes = map[string]struct{}{
	domain.TeeShirtSizeNotSpecified: {},
	"XS": {}, "S": {}, "M": {}, "L": {}, "XL": {}, "XXL": {},
}

type userService struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	issuer   domain.TokenIssuer
}

// NewUserService creates the UserService handling signup, login, and profile.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer) domain.UserService {
	return &userService{userRepo: userRepo, hasher: hasher, issuer: issuer}
}

func (s *userService) SignUp(ctx context.Context, email, password, displayName string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return "", nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, displayName, now, now)
	if err := s.userRepo.Create(ctx, user, hash, salt); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return "", nil, domain.ErrConflict
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issuer.Issue(user.ID, user.Email, tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	creds, err := s.userRepo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrForbidden
		}
		return "", nil, fmt.Errorf("get credentials: %w", err)
	}
	if err := s.hasher.Compare(creds.PasswordHash, creds.Salt, password); err != nil {
		return "", nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, creds.UserID)
	if err != nil {
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	token, err := s.issuer.Issue(user.ID, user.Email, tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, displayName, teeShirtSize *string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if displayName != nil {
		user.DisplayName = *displayName
	}
	if teeShirtSize != nil {
		size := strings.ToUpper(*teeShirtSize)
		if _, ok := teeShirtSizes[size]; !ok {
			return nil, fmt.Errorf("%w: unknown tee shirt size %q", domain.ErrInvalidInput, *teeShirtSize)
		}
		user.TeeShirtSize = size
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
