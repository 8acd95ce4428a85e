package domain

import (
	"context"
	"time"
)

// TeeShirtSize values accepted on the profile. Stored as text.
const TeeShirtSizeNotSpecified = "NOT_SPECIFIED"

// User is a registered user and their conference profile.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	TeeShirtSize string    `json:"tee_shirt_size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(email, displayName string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		DisplayName:  displayName,
		TeeShirtSize: TeeShirtSizeNotSpecified,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Credentials holds a user's password verifier material.
type Credentials struct {
	UserID       string
	PasswordHash string
	Salt         string
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the storage surface for users and their credentials.
type UserRepository interface {
	Create(ctx context.Context, user *User, passwordHash, salt string) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
	Update(ctx context.Context, user *User) error
}

// UserService defines signup, login, and profile management.
type UserService interface {
	SignUp(ctx context.Context, email, password, displayName string) (token string, user *User, err error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	// UpdateProfile applies the non-nil fields and returns the updated profile.
	UpdateProfile(ctx context.Context, userID string, displayName, teeShirtSize *string) (*User, error)
}
