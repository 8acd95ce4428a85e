package services

import (
	"context"
	"fmt"
	"time"

	"confcentral/internal/domain"
)

type speakerService struct {
	speakerRepo domain.SpeakerRepository
}

// NewSpeakerService creates the SpeakerService.
func NewSpeakerService(speakerRepo domain.SpeakerRepository) domain.SpeakerService {
	return &speakerService{speakerRepo: speakerRepo}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, speaker *domain.Speaker) error {
	if speaker.Name == "" {
		return fmt.Errorf("%w: speaker name is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	speaker.CreatedAt = now
	speaker.UpdatedAt = now
	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return fmt.Errorf("create speaker: %w", err)
	}
	return nil
}

func (s *speakerService) ListSpeakers(ctx context.Context) ([]*domain.Speaker, error) {
	speakers, err := s.speakerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	return speakers, nil
}
