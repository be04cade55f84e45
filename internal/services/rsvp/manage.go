package rsvp

import (
	"chapterEvents/internal/models"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

var eventStatuses = []models.EventStatus{
	models.StatusPending,
	models.StatusUpcoming,
	models.StatusLive,
	models.StatusCompleted,
	models.StatusCancelled,
}

// UpdateEvent replaces the descriptive fields and settings of an event.
// Registrations, attendance and guests are kept as they are. Lowering the
// capacity below the current count does not evict anyone; it only closes
// the event to new registrations. An empty Status keeps the current one.
func (s *Service) UpdateEvent(ctx context.Context, actor models.Actor, eventID string, in EventInput) (*models.Event, error) {
	const op = "services.rsvp.UpdateEvent"

	if !models.IsElevated(actor.Role) {
		return nil, fmt.Errorf("%s: %w", op, ErrManageDenied)
	}

	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event, err := s.mutate(ctx, eventID, func(e *models.Event) error {
		e.Name = strings.TrimSpace(in.Name)
		e.Description = in.Description
		e.Kind = in.Kind
		e.Image = in.Image
		e.StartsAt = in.StartsAt
		e.EndsAt = in.EndsAt
		e.Venue = in.Venue
		e.Platform = in.Platform
		e.Link = in.Link
		e.OrganiserName = in.OrganiserName
		e.Speakers = in.Speakers
		if in.Status != "" {
			e.Status = in.Status
		}
		e.Capacity = in.Capacity
		e.AllUsers = in.AllUsers
		e.ChapterIDs = nil
		if !in.AllUsers {
			e.ChapterIDs = in.ChapterIDs
		}
		e.AllowGuestRegistration = in.AllowGuestRegistration
		e.Coordinators = in.Coordinators

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if event.RegisteredCount() > event.Capacity && !event.Unlimited() {
		s.log.Info("capacity lowered below registered count",
			slog.String("event_id", event.ID),
			slog.Int("capacity", event.Capacity),
			slog.Int("registered", event.RegisteredCount()),
		)
	}

	return event, nil
}

// DeleteEvent removes an event with all of its registrations, attendance
// and guests.
func (s *Service) DeleteEvent(ctx context.Context, actor models.Actor, eventID string) error {
	const op = "services.rsvp.DeleteEvent"

	if !models.IsElevated(actor.Role) {
		return fmt.Errorf("%s: %w", op, ErrManageDenied)
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	if err := s.events.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AdminEventsQuery pages over all events, newest first. Status narrows to
// one lifecycle state; Search matches a case-insensitive substring of the
// name.
type AdminEventsQuery struct {
	Page   int
	Limit  int
	Status models.EventStatus
	Search string
}

type AdminEventRow struct {
	models.Event
	RSVPCount int `json:"rsvp_count"`
}

func (s *Service) AdminEventsPage(ctx context.Context, actor models.Actor, q AdminEventsQuery) (Page[AdminEventRow], error) {
	const op = "services.rsvp.AdminEventsPage"

	if !models.IsElevated(actor.Role) {
		return Page[AdminEventRow]{}, fmt.Errorf("%s: %w", op, ErrManageDenied)
	}

	p := PageRequest{Page: q.Page, Limit: q.Limit}
	if err := p.validate(); err != nil {
		return Page[AdminEventRow]{}, fmt.Errorf("%s: %w", op, err)
	}

	if q.Status != "" && !slices.Contains(eventStatuses, q.Status) {
		return Page[AdminEventRow]{}, fmt.Errorf("%s: %w: unknown status %q", op, ErrInvalidInput, q.Status)
	}

	events, err := s.events.GetAllEvents(ctx)
	if err != nil {
		return Page[AdminEventRow]{}, fmt.Errorf("%s: %w", op, err)
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))

	rows := make([]AdminEventRow, 0, len(events))
	for _, e := range events {
		if q.Status != "" && e.Status != q.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		rows = append(rows, AdminEventRow{Event: e, RSVPCount: e.RegisteredCount()})
	}

	slices.SortFunc(rows, func(a, b AdminEventRow) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return paginate(rows, p), nil
}

var eventColumns = []Column{
	{Header: "Title", Key: "title"},
	{Header: "Type", Key: "type"},
	{Header: "Date", Key: "date"},
	{Header: "Time", Key: "time"},
	{Header: "Location", Key: "location"},
	{Header: "Organizer", Key: "organizer_name"},
}

type EventRow struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	CreatedAt     string `json:"created_at"`
	OrganizerName string `json:"organizer_name"`
}

type EventExport struct {
	Headers []Column   `json:"headers"`
	Body    []EventRow `json:"body"`
}

// ExportEvents flattens every event into a table, newest first. Dates and
// times are UTC.
func (s *Service) ExportEvents(ctx context.Context, actor models.Actor) (EventExport, error) {
	const op = "services.rsvp.ExportEvents"

	if !models.IsElevated(actor.Role) {
		return EventExport{}, fmt.Errorf("%s: %w", op, ErrManageDenied)
	}

	events, err := s.events.GetAllEvents(ctx)
	if err != nil {
		return EventExport{}, fmt.Errorf("%s: %w", op, err)
	}

	slices.SortFunc(events, func(a, b models.Event) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	rows := make([]EventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, EventRow{
			ID:            e.ID,
			Title:         e.Name,
			Type:          string(e.Kind),
			Date:          e.StartsAt.UTC().Format("2006-01-02"),
			Time:          e.StartsAt.UTC().Format("15:04"),
			Location:      orDefault(orDefault(e.Venue, e.Platform), noValue),
			CreatedAt:     e.CreatedAt.UTC().Format("2006-01-02 15:04"),
			OrganizerName: orDefault(e.OrganiserName, unknownName),
		})
	}

	return EventExport{Headers: eventColumns, Body: rows}, nil
}
