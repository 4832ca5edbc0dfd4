package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "acedating-api/docs" // swagger docs

	"acedating-api/internal/cache"
	"acedating-api/internal/config"
	"acedating-api/internal/db"
	"acedating-api/internal/handler"
	"acedating-api/internal/logging"
	"acedating-api/internal/media"
	"acedating-api/internal/repository"
	"acedating-api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title AceDating API
// @version 1.0
// @description Accounts, profile feed, likes and introduction letters
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "api stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	// Mongo
	client, database, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn(dctx, "mongo disconnect", "error", err)
		}
	}()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		return err
	}

	// Redis and S3 are optional
	sessions, err := cache.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer sessions.Close()
	if sessions == nil {
		log.Info(ctx, "REDIS_ADDR not set, session cache disabled")
	}

	var objects service.ObjectStore
	s3Store, err := media.New(ctx, cfg)
	if err != nil {
		return err
	}
	if s3Store != nil {
		objects = s3Store
	} else {
		log.Info(ctx, "S3_BUCKET_NAME not set, media endpoints disabled")
	}

	// repos
	userRepo := repository.NewUserRepository(database)
	letterRepo := repository.NewLetterRepository(database)

	// services
	authSvc := service.NewAuthService(userRepo, sessions, log, cfg.SecretKey, cfg.SessionTTL)
	profileSvc := service.NewProfileService(userRepo)
	likeSvc := service.NewLikeService(userRepo)
	letterSvc := service.NewLetterService(userRepo, letterRepo)
	mediaSvc := service.NewMediaService(objects)

	// handlers
	hs := handler.Handlers{
		Auth:    handler.NewAuthHandler(authSvc, log),
		Profile: handler.NewProfileHandler(profileSvc, log),
		Like:    handler.NewLikeHandler(likeSvc, log),
		Letter:  handler.NewLetterHandler(letterSvc, log),
		Media:   handler.NewMediaHandler(mediaSvc, log),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health(client))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(handler.Session(authSvc, log))
		handler.MountRoutes(r, hs)
		r.Route("/api", func(r chi.Router) {
			handler.MountRoutes(r, hs)
		})
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", handler.UserHeader},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           corsHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "http listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}
