package domain

import "context"

// AnnouncementsKey is the cache key for the nearly-sold-out announcement.
const AnnouncementsKey = "RECENT_ANNOUNCEMENTS"

// AnnouncementTemplate formats the announcement; the verb takes the
// comma-joined names of nearly-sold-out conferences.
const AnnouncementTemplate = "Last chance to attend! The following conferences are nearly sold out: %s"

// AnnouncementService recomputes and serves the sold-out announcement.
type AnnouncementService interface {
	// ScheduleRecompute enqueues an asynchronous recompute. Fire-and-forget.
	ScheduleRecompute()
	// Recompute rebuilds the announcement from conference seat counts and
	// publishes it, or clears it when no conference qualifies.
	Recompute(ctx context.Context) error
	// GetAnnouncement returns the cached announcement, or "" when none.
	GetAnnouncement(ctx context.Context) (string, error)
}
