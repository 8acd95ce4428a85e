package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"confcentral/internal/dispatch"
	"confcentral/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// syncDispatcher records enqueued tasks and, when run is set, executes them
// inline so tests observe the effect without a worker pool.
type syncDispatcher struct {
	names []string
	run   bool
}

func (d *syncDispatcher) Enqueue(t dispatch.Task) {
	d.names = append(d.names, t.Name)
	if d.run {
		_ = t.Run(context.Background())
	}
}

func compareStrings(have, want string, op domain.Operator) bool {
	switch op {
	case domain.OpEq:
		return have == want
	case domain.OpNe:
		return have != want
	case domain.OpGt:
		return have > want
	case domain.OpGte:
		return have >= want
	case domain.OpLt:
		return have < want
	case domain.OpLte:
		return have <= want
	}
	return false
}

func compareInts(have, want int, op domain.Operator) bool {
	switch op {
	case domain.OpEq:
		return have == want
	case domain.OpNe:
		return have != want
	case domain.OpGt:
		return have > want
	case domain.OpGte:
		return have >= want
	case domain.OpLt:
		return have < want
	case domain.OpLte:
		return have <= want
	}
	return false
}

// fakeConferenceRepo is an in-memory ConferenceRepository for tests.
type fakeConferenceRepo struct {
	byID   map[string]*domain.Conference
	nextID int
}

func newFakeConferenceRepo() *fakeConferenceRepo {
	return &fakeConferenceRepo{byID: make(map[string]*domain.Conference), nextID: 1}
}

func (f *fakeConferenceRepo) Create(ctx context.Context, conf *domain.Conference) error {
	conf.ID = fmt.Sprintf("conf-%d", f.nextID)
	f.nextID++
	f.byID[conf.ID] = conf
	return nil
}

func (f *fakeConferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConferenceRepo) Update(ctx context.Context, conf *domain.Conference) error {
	if _, ok := f.byID[conf.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[conf.ID] = conf
	return nil
}

func (f *fakeConferenceRepo) ListByOrganizerID(ctx context.Context, userID string) ([]*domain.Conference, error) {
	var out []*domain.Conference
	for _, c := range f.byID {
		if c.OrganizerUserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConferenceRepo) Query(ctx context.Context, filters []domain.Filter) ([]*domain.Conference, error) {
	if err := domain.ValidateInequalityRule(filters); err != nil {
		return nil, err
	}
	var out []*domain.Conference
	for _, c := range f.byID {
		ok := true
		for _, flt := range filters {
			if !f.matches(c, flt) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeConferenceRepo) QueryKeys(ctx context.Context, flt domain.Filter) ([]string, error) {
	var keys []string
	for id, c := range f.byID {
		if f.matches(c, flt) {
			keys = append(keys, id)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *fakeConferenceRepo) matches(c *domain.Conference, flt domain.Filter) bool {
	switch flt.Attribute {
	case "city":
		return compareStrings(c.City, flt.Value.(string), flt.Op)
	case "topics":
		for _, t := range c.Topics {
			if t == flt.Value.(string) {
				return true
			}
		}
		return false
	case "month":
		return compareInts(c.Month, flt.Value.(int), flt.Op)
	case "max_attendees":
		return compareInts(c.MaxAttendees, flt.Value.(int), flt.Op)
	case "seats_available":
		return compareInts(c.SeatsAvailable, flt.Value.(int), flt.Op)
	case "start_date":
		if c.StartDate == nil {
			return false
		}
		return compareTime(*c.StartDate, flt.Value.(time.Time), flt.Op)
	case "end_date":
		if c.EndDate == nil {
			return false
		}
		return compareTime(*c.EndDate, flt.Value.(time.Time), flt.Op)
	}
	return false
}

func compareTime(have, want time.Time, op domain.Operator) bool {
	switch op {
	case domain.OpEq:
		return have.Equal(want)
	case domain.OpNe:
		return !have.Equal(want)
	case domain.OpGt:
		return have.After(want)
	case domain.OpGte:
		return !have.Before(want)
	case domain.OpLt:
		return have.Before(want)
	case domain.OpLte:
		return !have.After(want)
	}
	return false
}

func (f *fakeConferenceRepo) GetMulti(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	var out []*domain.Conference
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	byID   map[string]*domain.Session
	nextID int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session), nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	s.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionRepo) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		if s.ConferenceID == conferenceID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSessionRepo) ListByConferenceIDAndType(ctx context.Context, conferenceID string, t domain.SessionType) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		if s.ConferenceID == conferenceID && s.Type == t {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSessionRepo) ListBySpeakerID(ctx context.Context, speakerID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, s := range f.byID {
		for _, id := range s.SpeakerIDs {
			if id == speakerID {
				out = append(out, s)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSessionRepo) QueryKeys(ctx context.Context, flt domain.Filter) ([]string, error) {
	want, ok := flt.Value.(string)
	if !ok {
		return nil, domain.NewQueryError("value for %s must be a string", flt.Attribute)
	}
	var keys []string
	for id, s := range f.byID {
		var have string
		switch flt.Attribute {
		case "type_of_session":
			have = string(s.Type)
		case "start_time":
			if s.StartTime == "" {
				continue
			}
			have = s.StartTime
		default:
			return nil, domain.NewQueryError("attribute %q is not filterable", flt.Attribute)
		}
		if compareStrings(have, want, flt.Op) {
			keys = append(keys, id)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *fakeSessionRepo) GetMulti(ctx context.Context, ids []string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, id := range ids {
		if s, ok := f.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) AddSpeaker(ctx context.Context, sessionID, speakerID string) error {
	s, ok := f.byID[sessionID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, id := range s.SpeakerIDs {
		if id == speakerID {
			return nil
		}
	}
	s.SpeakerIDs = append(s.SpeakerIDs, speakerID)
	return nil
}

func (f *fakeSessionRepo) RemoveSpeaker(ctx context.Context, sessionID, speakerID string) error {
	s, ok := f.byID[sessionID]
	if !ok {
		return domain.ErrNotFound
	}
	out := s.SpeakerIDs[:0]
	for _, id := range s.SpeakerIDs {
		if id != speakerID {
			out = append(out, id)
		}
	}
	s.SpeakerIDs = out
	return nil
}

// fakeSpeakerRepo is an in-memory SpeakerRepository for tests.
type fakeSpeakerRepo struct {
	byID   map[string]*domain.Speaker
	nextID int
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{byID: make(map[string]*domain.Speaker), nextID: 1}
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, sp *domain.Speaker) error {
	sp.ID = fmt.Sprintf("spk-%d", f.nextID)
	f.nextID++
	f.byID[sp.ID] = sp
	return nil
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	if sp, ok := f.byID[id]; ok {
		return sp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSpeakerRepo) GetMulti(ctx context.Context, ids []string) ([]*domain.Speaker, error) {
	var out []*domain.Speaker
	for _, id := range ids {
		if sp, ok := f.byID[id]; ok {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (f *fakeSpeakerRepo) List(ctx context.Context) ([]*domain.Speaker, error) {
	var out []*domain.Speaker
	for _, sp := range f.byID {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.Credentials
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.Credentials),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User, passwordHash, salt string) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrConflict
	}
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byID[user.ID] = user
	f.byEmail[user.Email] = &domain.Credentials{UserID: user.ID, PasswordHash: passwordHash, Salt: salt}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if creds, ok := f.byEmail[email]; ok {
		return f.byID[creds.UserID], nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetCredentialsByEmail(ctx context.Context, email string) (*domain.Credentials, error) {
	if creds, ok := f.byEmail[email]; ok {
		return creds, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[user.ID] = user
	return nil
}

// fakeWishlistRepo is an in-memory WishlistRepository for tests.
type fakeWishlistRepo struct {
	entries map[string][]string // userID -> session IDs in insertion order
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: make(map[string][]string)}
}

func (f *fakeWishlistRepo) Add(ctx context.Context, userID, sessionID string) error {
	for _, id := range f.entries[userID] {
		if id == sessionID {
			return nil
		}
	}
	f.entries[userID] = append(f.entries[userID], sessionID)
	return nil
}

func (f *fakeWishlistRepo) Remove(ctx context.Context, userID, sessionID string) (bool, error) {
	ids := f.entries[userID]
	for i, id := range ids {
		if id == sessionID {
			f.entries[userID] = append(ids[:i], ids[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepo) ListSessionIDs(ctx context.Context, userID string) ([]string, error) {
	return f.entries[userID], nil
}

// fakeRegistrationRepo is an in-memory RegistrationRepository with seat
// accounting against a fakeConferenceRepo.
type fakeRegistrationRepo struct {
	confs  *fakeConferenceRepo
	byUser map[string][]string // userID -> conference IDs
}

func newFakeRegistrationRepo(confs *fakeConferenceRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{confs: confs, byUser: make(map[string][]string)}
}

func (f *fakeRegistrationRepo) Register(ctx context.Context, conferenceID, userID string) error {
	conf, ok := f.confs.byID[conferenceID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, id := range f.byUser[userID] {
		if id == conferenceID {
			return domain.ErrConflict
		}
	}
	if conf.SeatsAvailable <= 0 {
		return domain.ErrConflict
	}
	conf.SeatsAvailable--
	f.byUser[userID] = append(f.byUser[userID], conferenceID)
	return nil
}

func (f *fakeRegistrationRepo) Unregister(ctx context.Context, conferenceID, userID string) (bool, error) {
	ids := f.byUser[userID]
	for i, id := range ids {
		if id == conferenceID {
			f.byUser[userID] = append(ids[:i], ids[i+1:]...)
			if conf, ok := f.confs.byID[conferenceID]; ok {
				conf.SeatsAvailable++
			}
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistrationRepo) ListConferenceIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return f.byUser[userID], nil
}

// recordingFeatured records recompute scheduling without doing any work.
type recordingFeatured struct {
	scheduled []string
}

func (r *recordingFeatured) ScheduleRecompute(conferenceID string) {
	r.scheduled = append(r.scheduled, conferenceID)
}

func (r *recordingFeatured) Recompute(ctx context.Context, conferenceID string) error { return nil }

func (r *recordingFeatured) GetFeaturedSpeakers(ctx context.Context, conferenceID string) (domain.FeaturedSpeakers, error) {
	return domain.FeaturedSpeakers{}, nil
}

// recordingAnnouncements records recompute scheduling.
type recordingAnnouncements struct {
	scheduled int
}

func (r *recordingAnnouncements) ScheduleRecompute() { r.scheduled++ }

func (r *recordingAnnouncements) Recompute(ctx context.Context) error { return nil }

func (r *recordingAnnouncements) GetAnnouncement(ctx context.Context) (string, error) {
	return "", nil
}

// recordingEmails records confirmation sends.
type recordingEmails struct {
	conference []*domain.ConferenceConfirmationEmailData
	session    []*domain.SessionConfirmationEmailData
}

func (r *recordingEmails) SendConferenceConfirmation(ctx context.Context, data *domain.ConferenceConfirmationEmailData) error {
	r.conference = append(r.conference, data)
	return nil
}

func (r *recordingEmails) SendSessionConfirmation(ctx context.Context, data *domain.SessionConfirmationEmailData) error {
	r.session = append(r.session, data)
	return nil
}
