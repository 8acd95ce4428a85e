package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"confcentral/internal/dispatch"
	"confcentral/internal/domain"
	"confcentral/internal/query"
)

var startTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type sessionService struct {
	conferenceRepo domain.ConferenceRepository
	sessionRepo    domain.SessionRepository
	speakerRepo    domain.SpeakerRepository
	userRepo       domain.UserRepository
	featured       domain.FeaturedSpeakerService
	emailService   domain.EmailService
	dispatcher     dispatch.Dispatcher
	logger         *slog.Logger
}

// NewSessionService creates the SessionService. Session writes that change
// speaker membership schedule a featured-speaker recompute through the
// featured service; session creation also queues a confirmation email.
func NewSessionService(
	conferenceRepo domain.ConferenceRepository,
	sessionRepo domain.SessionRepository,
	speakerRepo domain.SpeakerRepository,
	userRepo domain.UserRepository,
	featured domain.FeaturedSpeakerService,
	emailService domain.EmailService,
	dispatcher dispatch.Dispatcher,
	logger *slog.Logger,
) domain.SessionService {
	return &sessionService{
		conferenceRepo: conferenceRepo,
		sessionRepo:    sessionRepo,
		speakerRepo:    speakerRepo,
		userRepo:       userRepo,
		featured:       featured,
		emailService:   emailService,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID string, sess *domain.Session) (*domain.Session, error) {
	conf, err := s.conferenceRepo.GetByID(ctx, sess.ConferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerUserID != userID {
		return nil, domain.ErrForbidden
	}
	if sess.Name == "" {
		return nil, fmt.Errorf("%w: session name is required", domain.ErrInvalidInput)
	}
	if sess.StartTime != "" && !startTimeRegex.MatchString(sess.StartTime) {
		return nil, fmt.Errorf("%w: start_time must be HH:MM", domain.ErrInvalidInput)
	}
	if sess.Duration == 0 {
		sess.Duration = domain.DefaultSessionDuration
	}
	if sess.Type == "" {
		sess.Type = domain.SessionTypeNotSpecified
	}
	for _, speakerID := range sess.SpeakerIDs {
		if _, err := s.speakerRepo.GetByID(ctx, speakerID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: speaker %s", domain.ErrNotFound, speakerID)
			}
			return nil, fmt.Errorf("get speaker: %w", err)
		}
	}

	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// The write path returns immediately; the derived view catches up out of band.
	s.featured.ScheduleRecompute(sess.ConferenceID)
	s.queueConfirmationEmail(userID, sess.Name, conf.Name)

	return s.sessionRepo.GetByID(ctx, sess.ID)
}

func (s *sessionService) AddSpeakerToSession(ctx context.Context, sessionID, speakerID string) (*domain.Session, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if _, err := s.speakerRepo.GetByID(ctx, speakerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: speaker %s", domain.ErrNotFound, speakerID)
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	if err := s.sessionRepo.AddSpeaker(ctx, sessionID, speakerID); err != nil {
		return nil, fmt.Errorf("add speaker: %w", err)
	}
	s.featured.ScheduleRecompute(sess.ConferenceID)
	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *sessionService) RemoveSpeakerFromSession(ctx context.Context, sessionID, speakerID string) (*domain.Session, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := s.sessionRepo.RemoveSpeaker(ctx, sessionID, speakerID); err != nil {
		return nil, fmt.Errorf("remove speaker: %w", err)
	}
	s.featured.ScheduleRecompute(sess.ConferenceID)
	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *sessionService) SessionsForConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	if err := s.requireConference(ctx, conferenceID); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) SessionsForConferenceByType(ctx context.Context, conferenceID string, t domain.SessionType) ([]*domain.Session, error) {
	if err := s.requireConference(ctx, conferenceID); err != nil {
		return nil, err
	}
	// Scan plus equality is natively combinable; no intersection needed.
	sessions, err := s.sessionRepo.ListByConferenceIDAndType(ctx, conferenceID, t)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) SessionsBySpeaker(ctx context.Context, speakerID string) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListBySpeakerID(ctx, speakerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	return sessions, nil
}

// SessionsExcludingTypeBeforeTime needs inequality comparisons on two
// attributes, which the backend refuses in one query; the answer is composed
// from two key-only queries intersected client-side.
func (s *sessionService) SessionsExcludingTypeBeforeTime(ctx context.Context, excluded domain.SessionType, cutoff string) ([]*domain.Session, error) {
	if !startTimeRegex.MatchString(cutoff) {
		return nil, fmt.Errorf("%w: cutoff must be HH:MM", domain.ErrInvalidInput)
	}
	sessions, err := query.Intersect[*domain.Session](ctx, s.sessionRepo,
		domain.Filter{Attribute: "type_of_session", Op: domain.OpNe, Value: string(excluded)},
		domain.Filter{Attribute: "start_time", Op: domain.OpLt, Value: cutoff},
	)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *sessionService) requireConference(ctx context.Context, conferenceID string) error {
	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: conference %s", domain.ErrNotFound, conferenceID)
		}
		return fmt.Errorf("get conference: %w", err)
	}
	return nil
}

func (s *sessionService) queueConfirmationEmail(userID, sessionName, conferenceName string) {
	s.dispatcher.Enqueue(dispatch.Task{
		Name: "session-confirmation-email",
		Run: func(ctx context.Context) error {
			user, err := s.userRepo.GetByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("get user: %w", err)
			}
			return s.emailService.SendSessionConfirmation(ctx, &domain.SessionConfirmationEmailData{
				Email:          user.Email,
				SessionName:    sessionName,
				ConferenceName: conferenceName,
			})
		},
	})
}
