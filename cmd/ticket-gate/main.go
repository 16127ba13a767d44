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

	"ticketGate/internal/config"
	"ticketGate/internal/http-server/handlers/event/createEvent"
	"ticketGate/internal/http-server/handlers/event/deleteEvent"
	"ticketGate/internal/http-server/handlers/event/getAllEvents"
	"ticketGate/internal/http-server/handlers/event/getEventTickets"
	"ticketGate/internal/http-server/handlers/event/updateEvent"
	"ticketGate/internal/http-server/handlers/ticket/createTicket"
	"ticketGate/internal/http-server/handlers/ticket/deleteTicket"
	"ticketGate/internal/http-server/handlers/ticket/getAllTickets"
	"ticketGate/internal/http-server/handlers/ticket/getTicket"
	"ticketGate/internal/http-server/handlers/ticket/updateTicket"
	"ticketGate/internal/http-server/handlers/ticket/verifyTicket"
	"ticketGate/internal/http-server/handlers/user/login"
	"ticketGate/internal/http-server/handlers/user/signup"
	mwauth "ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/http-server/middleware/mwlogger"
	"ticketGate/internal/lib/logger/handlers/slogpretty"
	"ticketGate/internal/lib/logger/sl"
	"ticketGate/internal/storage/postgres"
	"ticketGate/internal/storage/s3"
	"ticketGate/internal/webhook"

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

	log.Info("Starting ticket gate", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	var uploader createTicket.Uploader
	if cfg.S3.Endpoint != "" {
		store, err := s3.New(cfg.S3)
		if err != nil {
			log.Error("failed to init object storage", sl.Err(err))
			os.Exit(1)
		}
		uploader = store

		log.Info("object storage enabled", slog.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("object storage disabled, tickets carry inline QR data only")
	}

	notifier := webhook.NewDispatcher(log, cfg.Webhook.Timeout)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/signup", signup.New(log, storage))
	router.Post("/login", login.New(log, storage, cfg.Auth.Secret, cfg.Auth.TokenTTL))

	// Unauthenticated scanning surface.
	router.Post("/ticket/verify", verifyTicket.New(log, storage, notifier))
	router.Post("/public/ticket", createTicket.New(log, storage, uploader, notifier, false))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, cfg.Auth.Secret))

		r.Post("/event", createEvent.New(log, storage))
		r.Post("/event/update/{eventId}", updateEvent.New(log, storage))
		r.Delete("/event/{eventId}", deleteEvent.New(log, storage))
		r.Get("/events", getAllEvents.New(log, storage))
		r.Get("/event/{eventId}/tickets", getEventTickets.New(log, storage))

		r.Post("/ticket", createTicket.New(log, storage, uploader, notifier, true))
		r.Post("/ticketUpdate/{ticketId}", updateTicket.New(log, storage))
		r.Get("/tickets", getAllTickets.New(log, storage))
		r.Get("/ticket/{ticketId}", getTicket.New(log, storage))
		r.Delete("/ticket/{ticketId}", deleteTicket.New(log, storage))
	})

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

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
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
