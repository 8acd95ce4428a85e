package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"confcentral/config"
	_ "confcentral/docs"
	"confcentral/internal/adapters/auth"
	"confcentral/internal/adapters/email"
	"confcentral/internal/cache"
	deliveryhttp "confcentral/internal/delivery/http"
	"confcentral/internal/delivery/http/controllers"
	"confcentral/internal/delivery/http/middleware"
	"confcentral/internal/dispatch"
	"confcentral/internal/repository/postgres"
	"confcentral/internal/services"
)

// @title Conference Central API
// @version 1.0
// @description Conference organization backend: conferences, sessions, speakers, wishlists, and featured speakers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	// Redis carries the derived views (featured speakers, announcement); the
	// in-memory cache is the local-development fallback.
	var store cache.Cache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("ping redis", "addr", cfg.RedisAddr, "err", err)
			os.Exit(1)
		}
		store = cache.NewRedis(client)
	} else {
		logger.Warn("REDIS_ADDR not set, using in-memory cache")
		store = cache.NewMemory()
	}

	pool := dispatch.NewPool(cfg.Workers, 256, logger)
	defer pool.Close()

	conferenceRepo := postgres.NewConferenceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	userRepo := postgres.NewUserRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	hasher := auth.NewBcryptHasher(12)
	jwt := auth.NewJWT(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	featuredService := services.NewFeaturedSpeakerService(sessionRepo, speakerRepo, store, pool, logger)
	announcementService := services.NewAnnouncementService(conferenceRepo, store, pool, logger)
	conferenceService := services.NewConferenceService(conferenceRepo, registrationRepo, userRepo, announcementService, emailService, pool, logger)
	sessionService := services.NewSessionService(conferenceRepo, sessionRepo, speakerRepo, userRepo, featuredService, emailService, pool, logger)
	speakerService := services.NewSpeakerService(speakerRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, sessionRepo)
	userService := services.NewUserService(userRepo, hasher, jwt)

	mux := deliveryhttp.NewRouter(
		logger,
		jwt,
		controllers.NewAuthController(logger, userService),
		controllers.NewConferenceController(logger, conferenceService, announcementService),
		controllers.NewSessionController(logger, sessionService, featuredService),
		controllers.NewSpeakerController(logger, speakerService),
		controllers.NewProfileController(logger, userService, wishlistService),
	)

	handler := middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	// Pool.Close (deferred) drains queued recomputes before exit.
}
