package domain

import (
	"context"
	"time"
)

// Speaker is a top-level entity referenced from sessions across conferences.
// swagger:model Speaker
type Speaker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is set by the repository on create.
func NewSpeaker(name, bio string, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		Name:      name,
		Bio:       bio,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// SpeakerRepository defines the storage surface for speakers.
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	GetMulti(ctx context.Context, ids []string) ([]*Speaker, error)
	List(ctx context.Context) ([]*Speaker, error)
}

// SpeakerService defines speaker management.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, speaker *Speaker) error
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
}
