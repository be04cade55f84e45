package rsvp

import (
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/models"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Register admits actor to the event and returns the number of registrants
// afterwards. The registrant's device is subscribed to the event topic once
// the registration is stored; that step never fails the call.
func (s *Service) Register(ctx context.Context, eventID string, actor models.Actor) (int, error) {
	const op = "services.rsvp.Register"

	event, err := s.mutate(ctx, eventID, func(e *models.Event) error {
		if !e.CanRegister(actor.ChapterID) {
			return models.ErrNotEligible
		}

		return e.Register(actor.UserID, s.now())
	})
	if err != nil {
		s.metrics.Registration(KindOf(err).String())
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.Registration("ok")
	s.subscribe(ctx, eventID, actor.UserID)

	return event.RegisteredCount(), nil
}

func (s *Service) subscribe(ctx context.Context, eventID, userID string) {
	user, err := s.users.GetUser(context.WithoutCancel(ctx), userID)
	if err != nil {
		s.log.Warn("skipping topic subscription",
			slog.String("event_id", eventID),
			slog.String("user_id", userID),
			sl.Err(err),
		)
		return
	}

	s.notifier.SubscribeToEvent(user.FCMToken, eventID)
}

// RemoveRegistration drops target's RSVP from either representation. The
// actor must be the target, a coordinator of the event or an elevated role.
// Removing an absent registration succeeds without a write.
func (s *Service) RemoveRegistration(ctx context.Context, eventID string, actor models.Actor, targetUserID string) error {
	const op = "services.rsvp.RemoveRegistration"

	if targetUserID == "" {
		return fmt.Errorf("%s: %w: user id is required", op, ErrInvalidInput)
	}

	_, err := s.mutate(ctx, eventID, func(e *models.Event) error {
		if actor.UserID != targetUserID && !models.IsElevated(actor.Role) && !e.IsCoordinator(actor.UserID) {
			return ErrRemoveDenied
		}

		if !e.Unregister(targetUserID) {
			return errUnchanged
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type RegistrationFilter struct {
	ChapterID     string
	SortByChapter bool
}

// ListRegistrations returns the merged RSVP view of the event.
func (s *Service) ListRegistrations(ctx context.Context, eventID string, filter RegistrationFilter) ([]RegistrationRow, error) {
	const op = "services.rsvp.ListRegistrations"

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.registrationView(ctx, event, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (s *Service) registrationView(ctx context.Context, event *models.Event, filter RegistrationFilter) ([]RegistrationRow, error) {
	users, err := s.profiles(ctx, event.RegisteredUserIDs())
	if err != nil {
		return nil, err
	}

	rows := registrationRows(event, users)

	if filter.ChapterID != "" {
		rows = filterRows(rows, func(r RegistrationRow) bool { return r.ChapterID == filter.ChapterID })
	}

	if filter.SortByChapter {
		sortByChapter(rows, func(r RegistrationRow) (string, string) { return r.ChapterName, r.UserID })
	}

	return rows, nil
}

func filterRows[T any](rows []T, keep func(T) bool) []T {
	out := rows[:0:0]
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}

	return out
}

// sortByChapter orders rows case-insensitively by chapter name, then by id.
func sortByChapter[T any](rows []T, key func(T) (chapter, id string)) {
	sort.SliceStable(rows, func(i, j int) bool {
		ci, idi := key(rows[i])
		cj, idj := key(rows[j])

		ci, cj = strings.ToLower(ci), strings.ToLower(cj)
		if ci != cj {
			return ci < cj
		}

		return idi < idj
	})
}
