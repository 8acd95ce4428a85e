package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"confcentral/internal/cache"
	"confcentral/internal/dispatch"
	"confcentral/internal/domain"
	"confcentral/internal/query"
)

// A conference is "nearly sold out" with this many seats or fewer left.
const nearlySoldOutSeats = 5

type announcementService struct {
	conferenceRepo domain.ConferenceRepository
	cache          cache.Cache
	dispatcher     dispatch.Dispatcher
	logger         *slog.Logger
}

// NewAnnouncementService creates the service maintaining the nearly-sold-out
// announcement, recomputed asynchronously after registration changes.
func NewAnnouncementService(
	conferenceRepo domain.ConferenceRepository,
	c cache.Cache,
	dispatcher dispatch.Dispatcher,
	logger *slog.Logger,
) domain.AnnouncementService {
	return &announcementService{
		conferenceRepo: conferenceRepo,
		cache:          c,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (s *announcementService) ScheduleRecompute() {
	s.dispatcher.Enqueue(dispatch.Task{
		Name: "announcement",
		Run:  s.Recompute,
	})
}

// Recompute finds conferences with 0 < seats <= 5 and publishes the
// announcement, or clears it when none qualify. Both bounds land on the same
// attribute; the intersection degenerates to the tighter range and stays
// within the backend's single-inequality-attribute limit.
func (s *announcementService) Recompute(ctx context.Context) error {
	confs, err := query.Intersect[*domain.Conference](ctx, s.conferenceRepo,
		domain.Filter{Attribute: "seats_available", Op: domain.OpLte, Value: nearlySoldOutSeats},
		domain.Filter{Attribute: "seats_available", Op: domain.OpGt, Value: 0},
	)
	if err != nil {
		return fmt.Errorf("find nearly sold out conferences: %w", err)
	}

	if len(confs) == 0 {
		if err := s.cache.Delete(ctx, domain.AnnouncementsKey); err != nil {
			return fmt.Errorf("clear announcement: %w", err)
		}
		return nil
	}

	names := make([]string, 0, len(confs))
	for _, conf := range confs {
		names = append(names, conf.Name)
	}
	announcement := fmt.Sprintf(domain.AnnouncementTemplate, strings.Join(names, ", "))
	if err := s.cache.Set(ctx, domain.AnnouncementsKey, []byte(announcement)); err != nil {
		return fmt.Errorf("publish announcement: %w", err)
	}
	s.logger.Debug("announcement published", "conferences", len(confs))
	return nil
}

// GetAnnouncement is a pure cache read; a miss is "no announcement".
func (s *announcementService) GetAnnouncement(ctx context.Context) (string, error) {
	raw, err := s.cache.Get(ctx, domain.AnnouncementsKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return "", nil
		}
		return "", fmt.Errorf("read announcement: %w", err)
	}
	return string(raw), nil
}
