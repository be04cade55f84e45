package rsvp

import (
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/models"
	"chapterEvents/internal/notify"
	"context"
	"fmt"
	"github.com/google/uuid"
	"log/slog"
	"strings"
	"time"
)

type EventInput struct {
	Name                   string
	Description            string
	Kind                   models.EventKind
	Image                  string
	StartsAt               time.Time
	EndsAt                 time.Time
	Venue                  string
	Platform               string
	Link                   string
	OrganiserName          string
	Speakers               []models.Speaker
	Status                 models.EventStatus
	Capacity               int
	AllUsers               bool
	ChapterIDs             []string
	AllowGuestRegistration bool
	Coordinators           []string
}

func (in EventInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.EndsAt.Before(in.StartsAt) {
		return fmt.Errorf("%w: event ends before it starts", ErrInvalidInput)
	}
	if !in.AllUsers && len(in.ChapterIDs) == 0 {
		return fmt.Errorf("%w: chapter-restricted event needs at least one chapter", ErrInvalidInput)
	}

	return models.ValidateCapacity(in.Capacity)
}

// CreateEvent stores a new event and announces it to every active user the
// event is open to.
func (s *Service) CreateEvent(ctx context.Context, actor models.Actor, in EventInput) (*models.Event, error) {
	const op = "services.rsvp.CreateEvent"

	if !models.IsElevated(actor.Role) {
		return nil, fmt.Errorf("%s: %w", op, ErrManageDenied)
	}

	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status := in.Status
	if status == "" {
		status = models.StatusPending
	}

	now := s.now()
	event := &models.Event{
		ID:                     uuid.NewString(),
		Name:                   strings.TrimSpace(in.Name),
		Description:            in.Description,
		Kind:                   in.Kind,
		Image:                  in.Image,
		StartsAt:               in.StartsAt,
		EndsAt:                 in.EndsAt,
		Venue:                  in.Venue,
		Platform:               in.Platform,
		Link:                   in.Link,
		OrganiserName:          in.OrganiserName,
		Speakers:               in.Speakers,
		Status:                 status,
		Capacity:               in.Capacity,
		AllUsers:               in.AllUsers,
		AllowGuestRegistration: in.AllowGuestRegistration,
		Coordinators:           in.Coordinators,
		Version:                1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if !in.AllUsers {
		event.ChapterIDs = in.ChapterIDs
	}

	if err := s.events.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.announce(ctx, event)

	return event, nil
}

func (s *Service) announce(ctx context.Context, event *models.Event) {
	var chapters []string
	if !event.AllUsers {
		chapters = event.ChapterIDs
	}

	tokens, err := s.users.ActiveUserTokens(context.WithoutCancel(ctx), chapters)
	if err != nil {
		s.log.Error("failed to collect notification tokens",
			slog.String("event_id", event.ID),
			sl.Err(err),
		)
		return
	}

	s.notifier.EventCreated(tokens, notify.Message{
		Title: event.Name,
		Body:  event.Description,
		Image: event.Image,
		Topic: notify.TopicForEvent(event.ID),
	})
}

// EventDetails is the single-event view.
type EventDetails struct {
	Event         *models.Event     `json:"event"`
	RSVPCount     int               `json:"rsvp_count"`
	RSVP          []RegistrationRow `json:"rsvp"`
	SeatsLeft     *int              `json:"seats_left"`
	GuestCount    int               `json:"guest_count"`
	Guests        []GuestRow        `json:"guests"`
	AttendedCount int               `json:"attended_count"`
	Attended      []Profile         `json:"attended"`
}

func (s *Service) GetEvent(ctx context.Context, eventID string) (*EventDetails, error) {
	const op = "services.rsvp.GetEvent"

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rsvp, err := s.registrationView(ctx, event, RegistrationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	guests, err := s.guestRows(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	attendees, err := s.profiles(ctx, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	details := &EventDetails{
		Event:         event,
		RSVPCount:     len(rsvp),
		RSVP:          rsvp,
		GuestCount:    len(guests),
		Guests:        guests,
		AttendedCount: len(event.Attendees),
		Attended:      make([]Profile, 0, len(event.Attendees)),
	}

	if !event.Unlimited() {
		left := event.SeatsLeft()
		details.SeatsLeft = &left
	}

	for _, id := range event.Attendees {
		details.Attended = append(details.Attended, profileOf(id, attendees))
	}

	return details, nil
}

// ListEvents returns the events visible to actor: all of them for elevated
// roles, otherwise those the actor's chapter may register for.
func (s *Service) ListEvents(ctx context.Context, actor models.Actor) ([]models.Event, error) {
	const op = "services.rsvp.ListEvents"

	events, err := s.events.GetAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if models.IsElevated(actor.Role) {
		return events, nil
	}

	return filterRows(events, func(e models.Event) bool { return e.CanRegister(actor.ChapterID) }), nil
}

// RegisteredEvents returns events userID holds an RSVP for in either
// representation.
func (s *Service) RegisteredEvents(ctx context.Context, userID string) ([]models.Event, error) {
	const op = "services.rsvp.RegisteredEvents"

	events, err := s.events.GetEventsByRegistrant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}
