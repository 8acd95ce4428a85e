package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"confcentral/internal/delivery/http/controllers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	conferenceController *controllers.ConferenceController,
	sessionController *controllers.SessionController,
	speakerController *controllers.SpeakerController,
	profileController *controllers.ProfileController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Conferences
	mux.HandleFunc("POST /conferences", requireAuth(conferenceController.CreateConference))
	mux.HandleFunc("GET /conferences/created", requireAuth(conferenceController.ListConferencesCreated))
	mux.HandleFunc("GET /conferences/attending", requireAuth(conferenceController.ConferencesToAttend))
	mux.HandleFunc("GET /conferences/upcoming", conferenceController.UpcomingConferences)
	mux.HandleFunc("POST /conferences/query", conferenceController.QueryConferences)
	mux.HandleFunc("GET /conferences/{conferenceID}", conferenceController.GetConference)
	mux.HandleFunc("PATCH /conferences/{conferenceID}", requireAuth(conferenceController.UpdateConference))
	mux.HandleFunc("POST /conferences/{conferenceID}/registration", requireAuth(conferenceController.Register))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/registration", requireAuth(conferenceController.Unregister))
	mux.HandleFunc("GET /announcement", conferenceController.GetAnnouncement)

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", requireAuth(sessionController.CreateSession))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", sessionController.SessionsForConference)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/type/{type}", sessionController.SessionsForConferenceByType)
	mux.HandleFunc("GET /conferences/{conferenceID}/featured-speakers", sessionController.GetFeaturedSpeakers)
	mux.HandleFunc("GET /sessions/filtered", sessionController.FilteredSessions)
	mux.HandleFunc("PUT /sessions/{sessionID}/speakers/{speakerID}", requireAuth(sessionController.AddSpeakerToSession))
	mux.HandleFunc("DELETE /sessions/{sessionID}/speakers/{speakerID}", requireAuth(sessionController.RemoveSpeakerFromSession))

	// Speakers
	mux.HandleFunc("POST /speakers", requireAuth(speakerController.CreateSpeaker))
	mux.HandleFunc("GET /speakers", speakerController.ListSpeakers)
	mux.HandleFunc("GET /speakers/{speakerID}/sessions", sessionController.SessionsBySpeaker)

	// Profile and wishlist
	mux.HandleFunc("GET /profile", requireAuth(profileController.GetProfile))
	mux.HandleFunc("PATCH /profile", requireAuth(profileController.UpdateProfile))
	mux.HandleFunc("GET /profile/wishlist", requireAuth(profileController.ListWishlist))
	mux.HandleFunc("POST /profile/wishlist/{sessionID}", requireAuth(profileController.AddToWishlist))
	mux.HandleFunc("DELETE /profile/wishlist/{sessionID}", requireAuth(profileController.RemoveFromWishlist))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
