package rsvp

import (
	"chapterEvents/internal/models"
	"context"
	"fmt"
	"github.com/google/uuid"
	"strings"
)

type GuestInput struct {
	Name     string
	Contact  string
	Category string
}

// AddGuest records a guest brought by actor. The guest is owned by actor for
// its whole life.
func (s *Service) AddGuest(ctx context.Context, eventID string, actor models.Actor, in GuestInput) (models.Guest, error) {
	const op = "services.rsvp.AddGuest"

	guest := models.Guest{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Contact:   strings.TrimSpace(in.Contact),
		Category:  strings.TrimSpace(in.Category),
		AddedBy:   actor.UserID,
		CreatedAt: s.now(),
	}

	_, err := s.mutate(ctx, eventID, func(e *models.Event) error {
		return e.AddGuest(guest)
	})
	if err != nil {
		return models.Guest{}, fmt.Errorf("%s: %w", op, err)
	}

	return guest, nil
}

func (s *Service) EditGuest(ctx context.Context, eventID string, actor models.Actor, guestID string, patch models.GuestPatch) (models.Guest, error) {
	const op = "services.rsvp.EditGuest"

	var updated models.Guest

	_, err := s.mutate(ctx, eventID, func(e *models.Event) error {
		var err error
		updated, err = e.EditGuest(actor.UserID, guestID, patch, s.now())
		return err
	})
	if err != nil {
		return models.Guest{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// DeleteGuest removes a guest owned by actor. Unlike registration removal,
// an absent guest is an error.
func (s *Service) DeleteGuest(ctx context.Context, eventID string, actor models.Actor, guestID string) error {
	const op = "services.rsvp.DeleteGuest"

	_, err := s.mutate(ctx, eventID, func(e *models.Event) error {
		return e.DeleteGuest(actor.UserID, guestID)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
