package domain

import "context"

// WishlistRepository maintains the per-user set of session references. Add and
// Remove are idempotent at the storage level.
type WishlistRepository interface {
	Add(ctx context.Context, userID, sessionID string) error
	// Remove reports false when no entry existed.
	Remove(ctx context.Context, userID, sessionID string) (bool, error)
	ListSessionIDs(ctx context.Context, userID string) ([]string, error)
}

// WishlistService manages the sessions a user is interested in attending.
type WishlistService interface {
	// AddSession adds the session to the user's wishlist. Adding a session
	// already present is a no-op; a nonexistent session is ErrNotFound.
	AddSession(ctx context.Context, userID, sessionID string) error
	// RemoveSession removes the session if present; absent is a no-op.
	RemoveSession(ctx context.Context, userID, sessionID string) error
	// ListWishlist resolves the wishlisted sessions, skipping references
	// whose session has since been deleted.
	ListWishlist(ctx context.Context, userID string) ([]*Session, error)
}
