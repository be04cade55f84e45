// Package rsvp implements event registration, guests and attendance on top
// of the event aggregate. Every mutation is a read-modify-write of one event
// that is serialized per event in-process and guarded across processes by
// the aggregate version.
package rsvp

import (
	"chapterEvents/internal/lib/keylock"
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/lib/metrics"
	"chapterEvents/internal/models"
	"chapterEvents/internal/notify"
	"chapterEvents/internal/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

type EventRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	GetEventsByRegistrant(ctx context.Context, userID string) ([]models.Event, error)
}

type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUsers(ctx context.Context, ids []string) (map[string]models.User, error)
	ActiveUserTokens(ctx context.Context, chapterIDs []string) ([]string, error)
}

type Notifier interface {
	EventCreated(tokens []string, msg notify.Message)
	SubscribeToEvent(token, eventID string)
}

type Options struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

type Service struct {
	log      *slog.Logger
	events   EventRepository
	users    UserDirectory
	notifier Notifier
	metrics  *metrics.Metrics
	locks    *keylock.Locker
	opts     Options
	now      func() time.Time
}

func New(
	log *slog.Logger,
	events EventRepository,
	users UserDirectory,
	notifier Notifier,
	m *metrics.Metrics,
	opts Options,
) *Service {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}

	return &Service{
		log:      log.With(slog.String("component", "services/rsvp")),
		events:   events,
		users:    users,
		notifier: notifier,
		metrics:  m,
		locks:    keylock.New(),
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// errUnchanged lets a mutation report success without a write.
var errUnchanged = errors.New("unchanged")

// mutate loads the event, applies fn to a private copy and stores it if the
// version did not move. A version conflict or a failed read reloads and
// reapplies fn. Other write errors are returned as is: the write may have
// committed, and reapplying fn would then report a conflict the caller never
// had. When fn fails nothing is written.
func (s *Service) mutate(ctx context.Context, eventID string, fn func(e *models.Event) error) (*models.Event, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	for attempt := 1; ; attempt++ {
		event, err := s.events.GetEvent(ctx, eventID)
		if err != nil {
			if !retryableRead(ctx, err) {
				return nil, err
			}
			if attempt >= s.opts.MaxAttempts {
				return nil, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
			}

			s.metrics.WriteRetry()
			s.log.Warn("event read failed, retrying",
				slog.String("event_id", eventID),
				slog.Int("attempt", attempt),
				sl.Err(err),
			)

			if err = s.backoff(ctx, attempt); err != nil {
				return nil, err
			}
			continue
		}

		if err = fn(event); err != nil {
			if errors.Is(err, errUnchanged) {
				return event, nil
			}
			return nil, err
		}

		// once issued, the write is allowed to finish even if the caller
		// goes away; the stored document is the source of truth
		err = s.events.UpdateEvent(context.WithoutCancel(ctx), event)
		if err == nil {
			return event, nil
		}

		if !errors.Is(err, storage.ErrVersionConflict) {
			return nil, err
		}

		if attempt >= s.opts.MaxAttempts {
			return nil, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
		}

		s.metrics.WriteRetry()
		s.log.Debug("event version conflict, retrying",
			slog.String("event_id", eventID),
			slog.Int("attempt", attempt),
		)

		if err = s.backoff(ctx, attempt); err != nil {
			return nil, err
		}
	}
}

func retryableRead(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	return !errors.Is(err, storage.ErrEventNotFound) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func (s *Service) backoff(ctx context.Context, attempt int) error {
	if s.opts.RetryDelay <= 0 {
		return nil
	}

	delay := s.opts.RetryDelay * time.Duration(attempt)
	delay += time.Duration(rand.Int64N(int64(s.opts.RetryDelay)))

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// profiles resolves user ids for display.
func (s *Service) profiles(ctx context.Context, ids []string) (map[string]models.User, error) {
	users, err := s.users.GetUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}

	return users, nil
}
