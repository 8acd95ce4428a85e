package services

import (
	"context"
	"testing"

	"confcentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistFixture() (*fakeWishlistRepo, *fakeSessionRepo, domain.WishlistService) {
	wishlists := newFakeWishlistRepo()
	sessions := newFakeSessionRepo()
	return wishlists, sessions, NewWishlistService(wishlists, sessions)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	wishlists, sessions, svc := newWishlistFixture()
	sess := addSession(t, sessions, "conf-1", "Compilers")

	require.NoError(t, svc.AddSession(ctx, "user-1", sess.ID))
	require.NoError(t, svc.AddSession(ctx, "user-1", sess.ID))

	ids, err := wishlists.ListSessionIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{sess.ID}, ids)
}

func TestWishlistAddUnknownSession(t *testing.T) {
	_, _, svc := newWishlistFixture()
	err := svc.AddSession(context.Background(), "user-1", "sess-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWishlistRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	_, sessions, svc := newWishlistFixture()
	sess := addSession(t, sessions, "conf-1", "Compilers")

	require.NoError(t, svc.AddSession(ctx, "user-1", sess.ID))
	require.NoError(t, svc.RemoveSession(ctx, "user-1", sess.ID))
	require.NoError(t, svc.RemoveSession(ctx, "user-1", sess.ID))

	got, err := svc.ListWishlist(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListWishlistSkipsDeletedSessions(t *testing.T) {
	ctx := context.Background()
	_, sessions, svc := newWishlistFixture()
	kept := addSession(t, sessions, "conf-1", "Compilers")
	doomed := addSession(t, sessions, "conf-1", "Cancelled talk")

	require.NoError(t, svc.AddSession(ctx, "user-1", kept.ID))
	require.NoError(t, svc.AddSession(ctx, "user-1", doomed.ID))
	require.NoError(t, sessions.Delete(ctx, doomed.ID))

	got, err := svc.ListWishlist(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, kept.ID, got[0].ID)
}

func TestListWishlistEmptyIsNotNil(t *testing.T) {
	_, _, svc := newWishlistFixture()
	got, err := svc.ListWishlist(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
