package services

import (
	"context"
	"errors"
	"fmt"

	"confcentral/internal/domain"
)

type wishlistService struct {
	wishlistRepo domain.WishlistRepository
	sessionRepo  domain.SessionRepository
}

// NewWishlistService creates the WishlistService.
func NewWishlistService(wishlistRepo domain.WishlistRepository, sessionRepo domain.SessionRepository) domain.WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, sessionRepo: sessionRepo}
}

func (s *wishlistService) AddSession(ctx context.Context, userID, sessionID string) error {
	// Only a genuinely nonexistent session is an error; re-adding is a no-op.
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
		}
		return fmt.Errorf("get session: %w", err)
	}
	if err := s.wishlistRepo.Add(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (s *wishlistService) RemoveSession(ctx context.Context, userID, sessionID string) error {
	// Removing an absent entry is a no-op, not an error.
	if _, err := s.wishlistRepo.Remove(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

func (s *wishlistService) ListWishlist(ctx context.Context, userID string) ([]*domain.Session, error) {
	ids, err := s.wishlistRepo.ListSessionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	// GetMulti silently skips references whose session was deleted after
	// being wishlisted.
	sessions, err := s.sessionRepo.GetMulti(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve wishlist sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}
