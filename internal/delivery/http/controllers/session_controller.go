package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "confcentral/internal/delivery/http/helpers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/domain"
)

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions.
type CreateSessionRequest struct {
	Name          string     `json:"name"`
	Highlights    string     `json:"highlights"`
	Duration      int        `json:"duration"`
	TypeOfSession string     `json:"type_of_session"`
	Date          *time.Time `json:"date"`
	StartTime     string     `json:"start_time"`
	SpeakerIDs    []string   `json:"speaker_ids"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Duration < 0 {
		errs = append(errs, "duration must not be negative")
	}
	if _, err := domain.ParseSessionType(c.TypeOfSession); err != nil {
		errs = append(errs, "invalid type_of_session")
	}
	return errs
}

type SessionController struct {
	Logger   *slog.Logger
	Service  domain.SessionService
	Featured domain.FeaturedSpeakerService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService, featured domain.FeaturedSpeakerService) *SessionController {
	return &SessionController{
		Logger:   logger,
		Service:  svc,
		Featured: featured,
	}
}

// CreateSession godoc
// @Summary Create a session in a conference
// @Description Only the conference organizer can add sessions. Duration defaults to 30 minutes, type to NOT_SPECIFIED; start_time is HH:MM 24h. Listed speakers must exist. Triggers an asynchronous featured-speaker recompute.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param body body CreateSessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (conference or speaker)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req CreateSessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessionType, _ := domain.ParseSessionType(req.TypeOfSession)
	now := time.Now()
	sess := domain.NewSession(conferenceID, req.Name, req.Highlights, req.Duration, sessionType, req.Date, req.StartTime, req.SpeakerIDs, now, now)
	created, err := c.Service.CreateSession(r.Context(), userID, sess)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, created)
}

// SessionsForConference godoc
// @Summary List all sessions of a conference
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) SessionsForConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	sessions, err := c.Service.SessionsForConference(r.Context(), conferenceID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// SessionsForConferenceByType godoc
// @Summary List sessions of a conference with a given type
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Param type path string true "Session type (NOT_SPECIFIED, WORKSHOP, LECTURE, KEYNOTE)"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown type)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions/type/{type} [get]
func (c *SessionController) SessionsForConferenceByType(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	sessionType, err := domain.ParseSessionType(r.PathValue("type"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid session type")
		return
	}
	sessions, err := c.Service.SessionsForConferenceByType(r.Context(), conferenceID, sessionType)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// SessionsBySpeaker godoc
// @Summary List sessions featuring a speaker, across all conferences
// @Tags sessions
// @Produce json
// @Param speakerID path string true "Speaker ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID}/sessions [get]
func (c *SessionController) SessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	speakerID := r.PathValue("speakerID")
	sessions, err := c.Service.SessionsBySpeaker(r.Context(), speakerID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// FilteredSessions godoc
// @Summary List sessions excluding a type and starting before a time
// @Description Answers the query "non-X sessions before HH:MM" across all conferences, composed from two single-attribute queries since the backend allows inequality on only one attribute per query.
// @Tags sessions
// @Produce json
// @Param exclude_type query string true "Session type to exclude (e.g. WORKSHOP)"
// @Param before query string true "Start time cutoff, HH:MM 24h (e.g. 19:00)"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/filtered [get]
func (c *SessionController) FilteredSessions(w http.ResponseWriter, r *http.Request) {
	excluded, err := domain.ParseSessionType(r.URL.Query().Get("exclude_type"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid exclude_type")
		return
	}
	cutoff := r.URL.Query().Get("before")
	sessions, err := c.Service.SessionsExcludingTypeBeforeTime(r.Context(), excluded, cutoff)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// AddSpeakerToSession godoc
// @Summary Add a speaker to a session
// @Description Idempotent: adding a speaker already on the session leaves it unchanged. Triggers an asynchronous featured-speaker recompute.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Param speakerID path string true "Speaker ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session or speaker)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/speakers/{speakerID} [put]
func (c *SessionController) AddSpeakerToSession(w http.ResponseWriter, r *http.Request) {
	sess, err := c.Service.AddSpeakerToSession(r.Context(), r.PathValue("sessionID"), r.PathValue("speakerID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sess)
}

// RemoveSpeakerFromSession godoc
// @Summary Remove a speaker from a session
// @Description Removing a speaker not on the session is a no-op. Triggers an asynchronous featured-speaker recompute.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID (UUID)"
// @Param speakerID path string true "Speaker ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID}/speakers/{speakerID} [delete]
func (c *SessionController) RemoveSpeakerFromSession(w http.ResponseWriter, r *http.Request) {
	sess, err := c.Service.RemoveSpeakerFromSession(r.Context(), r.PathValue("sessionID"), r.PathValue("speakerID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sess)
}

// GetFeaturedSpeakers godoc
// @Summary Get the featured speakers of a conference
// @Description Returns the last published featured-speaker snapshot (speakers with two or more sessions). An empty object means none are featured; the read never computes.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data maps speaker ID to {name, sessions}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/featured-speakers [get]
func (c *SessionController) GetFeaturedSpeakers(w http.ResponseWriter, r *http.Request) {
	featured, err := c.Featured.GetFeaturedSpeakers(r.Context(), r.PathValue("conferenceID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, featured)
}
