package domain

import (
	"context"
	"time"
)

// SessionType enumerates the kinds of session. Stored as text.
type SessionType string

const (
	SessionTypeNotSpecified SessionType = "NOT_SPECIFIED"
	SessionTypeWorkshop     SessionType = "WORKSHOP"
	SessionTypeLecture      SessionType = "LECTURE"
	SessionTypeKeynote      SessionType = "KEYNOTE"
)

var sessionTypes = map[SessionType]struct{}{
	SessionTypeNotSpecified: {},
	SessionTypeWorkshop:     {},
	SessionTypeLecture:      {},
	SessionTypeKeynote:      {},
}

// ParseSessionType resolves a session type string. Empty input defaults to
// NOT_SPECIFIED; anything outside the enum is ErrInvalidInput.
func ParseSessionType(s string) (SessionType, error) {
	if s == "" {
		return SessionTypeNotSpecified, nil
	}
	t := SessionType(s)
	if _, ok := sessionTypes[t]; !ok {
		return "", ErrInvalidInput
	}
	return t, nil
}

// Session default values applied on create.
const DefaultSessionDuration = 30 // minutes

// Session represents a talk within exactly one conference. SpeakerIDs is a
// set: a speaker appears at most once, enforced on write.
// swagger:model Session
type Session struct {
	ID           string      `json:"id"`
	ConferenceID string      `json:"conference_id"`
	Name         string      `json:"name"`
	Highlights   string      `json:"highlights"`
	Duration     int         `json:"duration"`
	Type         SessionType `json:"type_of_session"`
	Date         *time.Time  `json:"date"`
	StartTime    string      `json:"start_time"` // HH:MM, 24h
	SpeakerIDs   []string    `json:"speaker_ids"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewSession returns a new Session with the given fields. ID is set by the repository on create.
func NewSession(conferenceID, name, highlights string, duration int, sessionType SessionType, date *time.Time, startTime string, speakerIDs []string, createdAt, updatedAt time.Time) *Session {
	return &Session{
		ConferenceID: conferenceID,
		Name:         name,
		Highlights:   highlights,
		Duration:     duration,
		Type:         sessionType,
		Date:         date,
		StartTime:    startTime,
		SpeakerIDs:   speakerIDs,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// SessionRepository defines the storage surface for sessions. QueryKeys runs a
// single-attribute comparison over all sessions and returns keys only; the
// scan and membership lookups are the backend's other native forms.
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceIDAndType(ctx context.Context, conferenceID string, t SessionType) ([]*Session, error)
	ListBySpeakerID(ctx context.Context, speakerID string) ([]*Session, error)
	QueryKeys(ctx context.Context, f Filter) ([]string, error)
	GetMulti(ctx context.Context, ids []string) ([]*Session, error)
	// AddSpeaker and RemoveSpeaker keep the speaker set free of duplicates;
	// both are no-ops when the membership is already in the desired state.
	AddSpeaker(ctx context.Context, sessionID, speakerID string) error
	RemoveSpeaker(ctx context.Context, sessionID, speakerID string) error
}

// SessionService defines session creation, speaker membership, and the filter
// queries that need more than one attribute predicate.
type SessionService interface {
	CreateSession(ctx context.Context, userID string, sess *Session) (*Session, error)
	AddSpeakerToSession(ctx context.Context, sessionID, speakerID string) (*Session, error)
	RemoveSpeakerFromSession(ctx context.Context, sessionID, speakerID string) (*Session, error)
	SessionsForConference(ctx context.Context, conferenceID string) ([]*Session, error)
	SessionsForConferenceByType(ctx context.Context, conferenceID string, t SessionType) ([]*Session, error)
	SessionsBySpeaker(ctx context.Context, speakerID string) ([]*Session, error)
	// SessionsExcludingTypeBeforeTime answers the two-inequality query
	// (type != excluded AND start_time < cutoff) across all conferences.
	SessionsExcludingTypeBeforeTime(ctx context.Context, excluded SessionType, cutoff string) ([]*Session, error)
}
