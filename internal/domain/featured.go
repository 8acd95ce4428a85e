package domain

import "context"

// FeaturedSpeakerKeyPrefix is the cache key prefix for featured-speaker
// snapshots. The full key is the prefix followed by the conference ID; the
// format is fixed for compatibility with existing consumers.
const FeaturedSpeakerKeyPrefix = "FEATURED_SPEAKER_"

// FeaturedSpeakerKey returns the cache key for a conference's snapshot.
func FeaturedSpeakerKey(conferenceID string) string {
	return FeaturedSpeakerKeyPrefix + conferenceID
}

// SpeakerSchedule is one featured speaker's entry in a snapshot: the speaker's
// name and the sessions (key -> name) they appear in within the conference.
type SpeakerSchedule struct {
	Name     string            `json:"name"`
	Sessions map[string]string `json:"sessions"`
}

// FeaturedSpeakers maps speaker ID to schedule for every speaker appearing in
// two or more sessions of a conference. Published wholesale; never merged.
type FeaturedSpeakers map[string]SpeakerSchedule

// FeaturedSpeakerService recomputes and serves the featured-speaker view.
type FeaturedSpeakerService interface {
	// ScheduleRecompute enqueues an asynchronous full recompute for the
	// conference. Fire-and-forget: the caller never observes the outcome.
	ScheduleRecompute(conferenceID string)
	// Recompute rebuilds the snapshot from stored sessions and publishes it.
	Recompute(ctx context.Context, conferenceID string) error
	// GetFeaturedSpeakers returns the last published snapshot, or an empty
	// mapping when none has been published. Never computes synchronously.
	GetFeaturedSpeakers(ctx context.Context, conferenceID string) (FeaturedSpeakers, error)
}
