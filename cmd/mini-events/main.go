package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"miniEvents/internal/config"
	"miniEvents/internal/http-server/handlers/event/cancelRsvp"
	"miniEvents/internal/http-server/handlers/event/createEvent"
	"miniEvents/internal/http-server/handlers/event/createRsvp"
	"miniEvents/internal/http-server/handlers/event/getAllEvents"
	"miniEvents/internal/http-server/handlers/event/getEvent"
	"miniEvents/internal/http-server/handlers/event/recordMetadata"
	"miniEvents/internal/http-server/middleware/mwlogger"
	"miniEvents/internal/lib/logger/handlers/slogpretty"
	"miniEvents/internal/lib/logger/sl"
	"miniEvents/internal/service"
	"miniEvents/internal/storage"
	"miniEvents/internal/storage/memory"
	"miniEvents/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting mini events", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))
	log.Debug("debug messages are enabled")

	store, closeStore, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	repo := service.NewRepository(store)
	coordinator := service.NewCoordinator(repo)
	reconciler := service.NewReconciler(log, repo)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, repo))
	router.Get("/events", getAllEvents.New(log, repo))
	router.Post("/events/metadata", recordMetadata.New(log, reconciler))
	router.Get("/events/{id}", getEvent.New(log, repo))
	router.Post("/events/{id}/rsvp", createRsvp.New(log, coordinator))
	router.Delete("/events/{id}/rsvp", cancelRsvp.New(log, coordinator))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if err = closeStore(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupStorage(cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		store, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		return store, store.Close, nil
	default:
		return memory.New(), func() error { return nil }, nil
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
