package services

import (
	"context"
	"testing"

	"confcentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpeakerRequiresName(t *testing.T) {
	svc := NewSpeakerService(newFakeSpeakerRepo())
	err := svc.CreateSpeaker(context.Background(), &domain.Speaker{Bio: "anonymous"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListSpeakers(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSpeakerRepo()
	svc := NewSpeakerService(repo)

	require.NoError(t, svc.CreateSpeaker(ctx, &domain.Speaker{Name: "Grace Hopper"}))
	require.NoError(t, svc.CreateSpeaker(ctx, &domain.Speaker{Name: "Alan Kay"}))

	got, err := svc.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	empty, err := NewSpeakerService(newFakeSpeakerRepo()).ListSpeakers(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}
