package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"confcentral/internal/dispatch"
	"confcentral/internal/domain"
	"confcentral/internal/query"
)

// queryFields maps client-supplied field codes to filterable attributes.
var queryFields = map[string]string{
	"CITY":          "city",
	"TOPIC":         "topics",
	"MONTH":         "month",
	"MAX_ATTENDEES": "max_attendees",
}

// upcomingWindow is how far ahead UpcomingConferences looks.
const upcomingWindow = 3 * 31 * 24 * time.Hour

type conferenceService struct {
	conferenceRepo   domain.ConferenceRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	announcements    domain.AnnouncementService
	emailService     domain.EmailService
	dispatcher       dispatch.Dispatcher
	logger           *slog.Logger
}

// NewConferenceService creates the ConferenceService. Registration changes
// schedule an announcement recompute; conference creation queues a
// confirmation email.
func NewConferenceService(
	conferenceRepo domain.ConferenceRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	announcements domain.AnnouncementService,
	emailService domain.EmailService,
	dispatcher dispatch.Dispatcher,
	logger *slog.Logger,
) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo:   conferenceRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		announcements:    announcements,
		emailService:     emailService,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

func (s *conferenceService) CreateConference(ctx context.Context, userID string, conf *domain.Conference) error {
	if conf.Name == "" {
		return fmt.Errorf("%w: conference name is required", domain.ErrInvalidInput)
	}
	if conf.City == "" {
		conf.City = domain.DefaultCity
	}
	if conf.StartDate != nil {
		conf.Month = int(conf.StartDate.Month())
	}
	if conf.SeatsAvailable == 0 && conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}
	conf.OrganizerUserID = userID

	now := time.Now()
	conf.CreatedAt = now
	conf.UpdatedAt = now
	if err := s.conferenceRepo.Create(ctx, conf); err != nil {
		return fmt.Errorf("create conference: %w", err)
	}

	s.queueConfirmationEmail(userID, conf.Name, conf.City)
	return nil
}

func (s *conferenceService) UpdateConference(ctx context.Context, userID, conferenceID string, update domain.ConferenceUpdate) (*domain.Conference, error) {
	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerUserID != userID {
		return nil, domain.ErrForbidden
	}

	if update.Name != nil {
		conf.Name = *update.Name
	}
	if update.City != nil {
		conf.City = *update.City
	}
	if update.Topics != nil {
		conf.Topics = update.Topics
	}
	if update.StartDate != nil {
		conf.StartDate = update.StartDate
		conf.Month = int(update.StartDate.Month())
	}
	if update.EndDate != nil {
		conf.EndDate = update.EndDate
	}
	if update.MaxAttendees != nil {
		conf.MaxAttendees = *update.MaxAttendees
	}
	if err := s.conferenceRepo.Update(ctx, conf); err != nil {
		return nil, fmt.Errorf("update conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) GetConference(ctx context.Context, conferenceID string) (*domain.Conference, error) {
	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) ListConferencesCreated(ctx context.Context, userID string) ([]*domain.Conference, error) {
	confs, err := s.conferenceRepo.ListByOrganizerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	if confs == nil {
		confs = []*domain.Conference{}
	}
	return confs, nil
}

// QueryConferences translates the caller's field/operator codes into the
// backend's native multi-filter form. The repository enforces the
// one-inequality-attribute rule; invalid codes are rejected here.
func (s *conferenceService) QueryConferences(ctx context.Context, filters []domain.ConferenceQueryFilter) ([]*domain.Conference, error) {
	parsed := make([]domain.Filter, 0, len(filters))
	for _, f := range filters {
		attr, ok := queryFields[f.Field]
		if !ok {
			return nil, domain.NewQueryError("invalid field %q", f.Field)
		}
		op, err := domain.ParseOperator(f.Operator)
		if err != nil {
			return nil, err
		}
		var value any = f.Value
		if attr == "month" || attr == "max_attendees" {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return nil, domain.NewQueryError("field %s needs a numeric value, got %q", f.Field, f.Value)
			}
			value = n
		}
		parsed = append(parsed, domain.Filter{Attribute: attr, Op: op, Value: value})
	}
	confs, err := s.conferenceRepo.Query(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if confs == nil {
		confs = []*domain.Conference{}
	}
	return confs, nil
}

// UpcomingConferences lists conferences overlapping the next three months.
// The window needs inequalities on both start and end date, so it is composed
// from two key-only queries intersected client-side.
func (s *conferenceService) UpcomingConferences(ctx context.Context) ([]*domain.Conference, error) {
	today := time.Now().Truncate(24 * time.Hour)
	until := today.Add(upcomingWindow)

	confs, err := query.Intersect[*domain.Conference](ctx, s.conferenceRepo,
		domain.Filter{Attribute: "end_date", Op: domain.OpGte, Value: today},
		domain.Filter{Attribute: "start_date", Op: domain.OpLte, Value: until},
	)
	if err != nil {
		return nil, err
	}
	if confs == nil {
		confs = []*domain.Conference{}
	}
	return confs, nil
}

func (s *conferenceService) RegisterForConference(ctx context.Context, conferenceID, userID string) error {
	if err := s.registrationRepo.Register(ctx, conferenceID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return domain.ErrNotFound
		case errors.Is(err, domain.ErrConflict):
			return domain.ErrConflict
		}
		return fmt.Errorf("register: %w", err)
	}
	s.announcements.ScheduleRecompute()
	return nil
}

func (s *conferenceService) UnregisterFromConference(ctx context.Context, conferenceID, userID string) (bool, error) {
	removed, err := s.registrationRepo.Unregister(ctx, conferenceID, userID)
	if err != nil {
		return false, fmt.Errorf("unregister: %w", err)
	}
	if removed {
		s.announcements.ScheduleRecompute()
	}
	return removed, nil
}

func (s *conferenceService) ConferencesToAttend(ctx context.Context, userID string) ([]*domain.Conference, error) {
	ids, err := s.registrationRepo.ListConferenceIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	confs, err := s.conferenceRepo.GetMulti(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve conferences: %w", err)
	}
	if confs == nil {
		confs = []*domain.Conference{}
	}
	return confs, nil
}

func (s *conferenceService) queueConfirmationEmail(userID, conferenceName, city string) {
	s.dispatcher.Enqueue(dispatch.Task{
		Name: "conference-confirmation-email",
		Run: func(ctx context.Context) error {
			user, err := s.userRepo.GetByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("get user: %w", err)
			}
			return s.emailService.SendConferenceConfirmation(ctx, &domain.ConferenceConfirmationEmailData{
				Email:          user.Email,
				ConferenceName: conferenceName,
				City:           city,
			})
		},
	})
}
