package domain

import (
	"context"
	"time"
)

// Defaults applied when a conference is created without these fields.
const (
	DefaultCity = "Default City"
)

// Conference represents a conference. Sessions reference their conference by
// ID; all sessions of a conference are enumerable with a scan on that key.
// swagger:model Conference
type Conference struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	City            string     `json:"city"`
	Topics          []string   `json:"topics"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Month           int        `json:"month"`
	MaxAttendees    int        `json:"max_attendees"`
	SeatsAvailable  int        `json:"seats_available"`
	OrganizerUserID string     `json:"organizer_user_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewConference returns a new Conference with the given fields. ID is set by the repository on create.
func NewConference(name, city string, topics []string, startDate, endDate *time.Time, maxAttendees int, organizerUserID string, createdAt, updatedAt time.Time) *Conference {
	return &Conference{
		Name:            name,
		City:            city,
		Topics:          topics,
		StartDate:       startDate,
		EndDate:         endDate,
		MaxAttendees:    maxAttendees,
		OrganizerUserID: organizerUserID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// ConferenceUpdate carries optional field updates; nil fields are unchanged.
type ConferenceUpdate struct {
	Name         *string
	City         *string
	Topics       []string
	StartDate    *time.Time
	EndDate      *time.Time
	MaxAttendees *int
}

// ConferenceRepository defines the storage surface for conferences. Query and
// QueryKeys are restricted to the backend's native forms: QueryKeys runs one
// single-attribute comparison and returns keys only; Query accepts several
// filters but rejects inequality on more than one attribute.
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	Update(ctx context.Context, conf *Conference) error
	ListByOrganizerID(ctx context.Context, userID string) ([]*Conference, error)
	Query(ctx context.Context, filters []Filter) ([]*Conference, error)
	QueryKeys(ctx context.Context, f Filter) ([]string, error)
	GetMulti(ctx context.Context, ids []string) ([]*Conference, error)
}

// RegistrationRepository manages conference attendance with seat accounting.
type RegistrationRepository interface {
	// Register atomically records the registration and decrements the seat
	// count. Returns ErrConflict when already registered or sold out.
	Register(ctx context.Context, conferenceID, userID string) error
	// Unregister removes the registration and returns the seat. The returned
	// bool is false when no registration existed.
	Unregister(ctx context.Context, conferenceID, userID string) (bool, error)
	ListConferenceIDsByUser(ctx context.Context, userID string) ([]string, error)
}

// ConferenceService defines conference management, querying, and attendance.
type ConferenceService interface {
	CreateConference(ctx context.Context, userID string, conf *Conference) error
	UpdateConference(ctx context.Context, userID, conferenceID string, update ConferenceUpdate) (*Conference, error)
	GetConference(ctx context.Context, conferenceID string) (*Conference, error)
	ListConferencesCreated(ctx context.Context, userID string) ([]*Conference, error)
	// QueryConferences runs caller-supplied filters (field code, operator
	// code, value). Invalid codes or a second inequality attribute surface as
	// a *QueryError.
	QueryConferences(ctx context.Context, filters []ConferenceQueryFilter) ([]*Conference, error)
	// UpcomingConferences lists conferences overlapping the next three months.
	UpcomingConferences(ctx context.Context) ([]*Conference, error)
	RegisterForConference(ctx context.Context, conferenceID, userID string) error
	UnregisterFromConference(ctx context.Context, conferenceID, userID string) (bool, error)
	ConferencesToAttend(ctx context.Context, userID string) ([]*Conference, error)
}

// ConferenceQueryFilter is one caller-supplied filter for QueryConferences,
// using wire-level field and operator codes (e.g. CITY EQ London).
type ConferenceQueryFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}
