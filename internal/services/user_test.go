package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"confcentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHasher derives deterministic fake hashes so Compare can verify them.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return fmt.Sprintf("h(%s|%s)", salt, password), nil
}

func (f fakeHasher) Compare(hash, salt, password string) error {
	want, _ := f.Hash(salt, password)
	if hash != want {
		return domain.ErrForbidden
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func newUserFixture() (*fakeUserRepo, domain.UserService) {
	users := newFakeUserRepo()
	return users, NewUserService(users, fakeHasher{}, fakeIssuer{})
}

func TestSignUpAndLogin(t *testing.T) {
	ctx := context.Background()
	_, svc := newUserFixture()

	token, user, err := svc.SignUp(ctx, "Alice@Example.com", "s3cret", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email, "email is normalized")
	assert.Equal(t, domain.TeeShirtSizeNotSpecified, user.TeeShirtSize)
	assert.Equal(t, "token-for-"+user.ID, token)

	token, logged, err := svc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token)
}

func TestSignUpDuplicateEmailIsConflict(t *testing.T) {
	ctx := context.Background()
	_, svc := newUserFixture()

	_, _, err := svc.SignUp(ctx, "alice@example.com", "s3cret", "Alice")
	require.NoError(t, err)

	_, _, err = svc.SignUp(ctx, "alice@example.com", "other", "Alice Again")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	_, svc := newUserFixture()

	_, _, err := svc.SignUp(ctx, "alice@example.com", "s3cret", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// An unknown account looks the same as a bad password.
	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProfileAppliesPartialFields(t *testing.T) {
	ctx := context.Background()
	_, svc := newUserFixture()

	_, user, err := svc.SignUp(ctx, "alice@example.com", "s3cret", "Alice")
	require.NoError(t, err)

	size := "xl"
	updated, err := svc.UpdateProfile(ctx, user.ID, nil, &size)
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.DisplayName, "nil fields are untouched")
	assert.Equal(t, "XL", updated.TeeShirtSize)

	name := "Alice L."
	updated, err = svc.UpdateProfile(ctx, user.ID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice L.", updated.DisplayName)
	assert.Equal(t, "XL", updated.TeeShirtSize)
}

func TestUpdateProfileRejectsUnknownSize(t *testing.T) {
	ctx := context.Background()
	_, svc := newUserFixture()

	_, user, err := svc.SignUp(ctx, "alice@example.com", "s3cret", "Alice")
	require.NoError(t, err)

	size := "HUGE"
	_, err = svc.UpdateProfile(ctx, user.ID, nil, &size)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetProfileUnknownUser(t *testing.T) {
	_, svc := newUserFixture()
	_, err := svc.GetProfile(context.Background(), "user-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
