package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"confcentral/internal/cache"
	"confcentral/internal/dispatch"
	"confcentral/internal/domain"

	jsoniter "github.com/json-iterator/go"
)

// snapshotJSON sorts map keys like encoding/json, so recomputing over
// unchanged data republishes byte-identical snapshots.
var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type featuredSpeakerService struct {
	sessionRepo domain.SessionRepository
	speakerRepo domain.SpeakerRepository
	cache       cache.Cache
	dispatcher  dispatch.Dispatcher
	logger      *slog.Logger
}

// NewFeaturedSpeakerService creates the service maintaining the
// featured-speaker view: speakers appearing in two or more sessions of a
// conference, recomputed asynchronously after session writes and served from
// the cache.
func NewFeaturedSpeakerService(
	sessionRepo domain.SessionRepository,
	speakerRepo domain.SpeakerRepository,
	c cache.Cache,
	dispatcher dispatch.Dispatcher,
	logger *slog.Logger,
) domain.FeaturedSpeakerService {
	return &featuredSpeakerService{
		sessionRepo: sessionRepo,
		speakerRepo: speakerRepo,
		cache:       c,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// ScheduleRecompute enqueues a full recompute for the conference. Each call
// enqueues independently; duplicates are harmless because Recompute rebuilds
// from persisted state and publishes with a single overwrite.
func (s *featuredSpeakerService) ScheduleRecompute(conferenceID string) {
	s.dispatcher.Enqueue(dispatch.Task{
		Name: "featured-speakers",
		Run: func(ctx context.Context) error {
			return s.Recompute(ctx, conferenceID)
		},
	})
}

// Recompute loads the conference's sessions, selects speakers appearing in at
// least two of them, and publishes the resulting snapshot wholesale. With no
// qualifying speaker the cache entry is cleared, so a miss is the canonical
// "none featured" state.
func (s *featuredSpeakerService) Recompute(ctx context.Context, conferenceID string) error {
	sessions, err := s.sessionRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	sessionsBySpeaker := make(map[string]map[string]string)
	for _, sess := range sessions {
		for _, speakerID := range sess.SpeakerIDs {
			if sessionsBySpeaker[speakerID] == nil {
				sessionsBySpeaker[speakerID] = make(map[string]string)
			}
			sessionsBySpeaker[speakerID][sess.ID] = sess.Name
		}
	}

	var featuredIDs []string
	for speakerID, sessionNames := range sessionsBySpeaker {
		if len(sessionNames) >= 2 {
			featuredIDs = append(featuredIDs, speakerID)
		}
	}

	key := domain.FeaturedSpeakerKey(conferenceID)
	if len(featuredIDs) == 0 {
		if err := s.cache.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}
		s.logger.Debug("featured speakers cleared", "conference_id", conferenceID)
		return nil
	}

	speakers, err := s.speakerRepo.GetMulti(ctx, featuredIDs)
	if err != nil {
		return fmt.Errorf("load speakers: %w", err)
	}
	namesByID := make(map[string]string, len(speakers))
	for _, speaker := range speakers {
		namesByID[speaker.ID] = speaker.Name
	}

	snapshot := domain.FeaturedSpeakers{}
	for _, speakerID := range featuredIDs {
		name, ok := namesByID[speakerID]
		if !ok {
			// Speaker record deleted while still referenced; leave it out.
			continue
		}
		snapshot[speakerID] = domain.SpeakerSchedule{
			Name:     name,
			Sessions: sessionsBySpeaker[speakerID],
		}
	}
	if len(snapshot) == 0 {
		if err := s.cache.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}
		return nil
	}

	payload, err := snapshotJSON.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	s.logger.Debug("featured speakers published", "conference_id", conferenceID, "speakers", len(snapshot))
	return nil
}

// GetFeaturedSpeakers reads the last published snapshot. A cache miss is a
// normal "none featured yet" result, never an error, and no computation is
// triggered on the read path.
func (s *featuredSpeakerService) GetFeaturedSpeakers(ctx context.Context, conferenceID string) (domain.FeaturedSpeakers, error) {
	raw, err := s.cache.Get(ctx, domain.FeaturedSpeakerKey(conferenceID))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return domain.FeaturedSpeakers{}, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snapshot domain.FeaturedSpeakers
	if err := snapshotJSON.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snapshot == nil {
		snapshot = domain.FeaturedSpeakers{}
	}
	return snapshot, nil
}
