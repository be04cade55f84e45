package main

import (
	"chapterEvents/internal/config"
	"chapterEvents/internal/http-server/handlers/event/addGuest"
	"chapterEvents/internal/http-server/handlers/event/adminEvents"
	"chapterEvents/internal/http-server/handlers/event/attendanceSummary"
	"chapterEvents/internal/http-server/handlers/event/createEvent"
	"chapterEvents/internal/http-server/handlers/event/deleteEvent"
	"chapterEvents/internal/http-server/handlers/event/deleteGuest"
	"chapterEvents/internal/http-server/handlers/event/editEvent"
	"chapterEvents/internal/http-server/handlers/event/editGuest"
	"chapterEvents/internal/http-server/handlers/event/exportAttendance"
	"chapterEvents/internal/http-server/handlers/event/exportEvents"
	"chapterEvents/internal/http-server/handlers/event/exportGuests"
	"chapterEvents/internal/http-server/handlers/event/exportRegistrations"
	"chapterEvents/internal/http-server/handlers/event/getAllEvents"
	"chapterEvents/internal/http-server/handlers/event/getEventInfo"
	"chapterEvents/internal/http-server/handlers/event/listAttendance"
	"chapterEvents/internal/http-server/handlers/event/listRegistrations"
	"chapterEvents/internal/http-server/handlers/event/markAttendance"
	"chapterEvents/internal/http-server/handlers/event/register"
	"chapterEvents/internal/http-server/handlers/event/registeredEvents"
	"chapterEvents/internal/http-server/handlers/event/removeRegistration"
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/http-server/middleware/mwlogger"
	"chapterEvents/internal/lib/logger/handlers/slogpretty"
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/lib/metrics"
	"chapterEvents/internal/notify"
	"chapterEvents/internal/services/rsvp"
	"chapterEvents/internal/storage/postgres"
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting chapter events", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if cfg.Database.MigrateOnBoot {
		if err = storage.Migrate(); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	dispatcher := notify.NewDispatcher(log, setupTransport(log, cfg.Notifier), m, notify.Options{
		Workers:     cfg.Notifier.Workers,
		QueueSize:   cfg.Notifier.QueueSize,
		MaxAttempts: cfg.Notifier.MaxAttempts,
		BaseDelay:   cfg.Notifier.BaseDelay,
		MaxDelay:    cfg.Notifier.MaxDelay,
		Timeout:     cfg.Notifier.Timeout,
	})

	service := rsvp.New(log, storage, storage, dispatcher, m, rsvp.Options{
		MaxAttempts: cfg.Ledger.MaxAttempts,
		RetryDelay:  cfg.Ledger.RetryDelay,
	})

	verifier := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret))

	router := newRouter(log, service, verifier, storage)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	// requests are drained, so nothing can enqueue behind the flush
	if err = dispatcher.Close(ctx); err != nil {
		log.Error("notification queue not drained", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// newRouter mounts every endpoint. User ids may contain dots, so no URL
// format middleware is mounted.
func newRouter(log *slog.Logger, service *rsvp.Service, verifier auth.TokenVerifier, users auth.IdentityResolver) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(auth.New(log, verifier, users))

		r.Route("/events", func(r chi.Router) {
			r.Post("/", createEvent.New(log, service))
			r.Get("/", getAllEvents.New(log, service))
			r.Get("/export", exportEvents.New(log, service))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getEventInfo.New(log, service))
				r.Put("/", editEvent.New(log, service))
				r.Delete("/", deleteEvent.New(log, service))

				r.Post("/register", register.New(log, service))
				r.Delete("/register/{userId}", removeRegistration.New(log, service))

				r.Post("/guests", addGuest.New(log, service))
				r.Get("/guests/export", exportGuests.New(log, service))
				r.Put("/guests/{guestId}", editGuest.New(log, service))
				r.Delete("/guests/{guestId}", deleteGuest.New(log, service))

				r.Get("/registrations", listRegistrations.New(log, service))
				r.Get("/registrations/export", exportRegistrations.New(log, service))

				r.Get("/attendance", listAttendance.New(log, service))
				r.Get("/attendance/summary", attendanceSummary.New(log, service))
				r.Get("/attendance/export", exportAttendance.New(log, service))
				r.Post("/attendance/{userId}", markAttendance.New(log, service))
			})
		})

		r.Get("/admin/events", adminEvents.New(log, service))
		r.Get("/users/me/events", registeredEvents.New(log, service))
	})

	return router
}

func setupTransport(log *slog.Logger, cfg config.Notifier) notify.Transport {
	if cfg.PushURL == "" {
		log.Warn("push_url is not set, notifications are only logged")
		return notify.NewLogTransport(log)
	}

	return notify.NewHTTPTransport(cfg.PushURL, cfg.Timeout)
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
	default:
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
