package rsvp

import (
	"chapterEvents/internal/models"
	"context"
	"fmt"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageRequest is a 1-based offset/limit page with an optional chapter filter.
type PageRequest struct {
	Page      int
	Limit     int
	ChapterID string
}

func (p PageRequest) validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1", ErrInvalidInput)
	}
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxPageLimit)
	}

	return nil
}

type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func paginate[T any](rows []T, p PageRequest) Page[T] {
	// compare in pages so a huge page number cannot overflow the offset
	start := len(rows)
	if p.Page-1 < (len(rows)+p.Limit-1)/p.Limit {
		start = (p.Page - 1) * p.Limit
	}
	end := min(start+p.Limit, len(rows))

	items := rows[start:end]
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items: items,
		Total: len(rows),
	}
}

// RegistrationsPage pages over the merged RSVP view. Row order is fixed by
// the stored document (legacy ids, then registrations in insertion order),
// so page boundaries do not move between requests.
func (s *Service) RegistrationsPage(ctx context.Context, eventID string, p PageRequest) (Page[RegistrationRow], error) {
	const op = "services.rsvp.RegistrationsPage"

	if err := p.validate(); err != nil {
		return Page[RegistrationRow]{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.ListRegistrations(ctx, eventID, RegistrationFilter{ChapterID: p.ChapterID})
	if err != nil {
		return Page[RegistrationRow]{}, fmt.Errorf("%s: %w", op, err)
	}

	return paginate(rows, p), nil
}

func (s *Service) listAttendance(ctx context.Context, eventID, chapterID string) (*models.Event, []AttendanceRow, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	users, err := s.profiles(ctx, event.Attendees)
	if err != nil {
		return nil, nil, err
	}

	registeredAt := make(map[string]string)
	for _, id := range event.LegacyRSVP {
		registeredAt[id] = unknownDate
	}
	for _, r := range event.Registrations {
		at := r.RegisteredAt
		registeredAt[r.UserID] = formatDate(&at)
	}

	rows := make([]AttendanceRow, 0, len(event.Attendees))
	for _, id := range event.Attendees {
		date, registered := registeredAt[id]
		rows = append(rows, AttendanceRow{
			Profile:        profileOf(id, users),
			Registered:     registered,
			RegisteredDate: orDefault(date, noValue),
		})
	}

	if chapterID != "" {
		rows = filterRows(rows, func(r AttendanceRow) bool { return r.ChapterID == chapterID })
	}

	return event, rows, nil
}

// AttendancePage pages over attendees in check-in order.
func (s *Service) AttendancePage(ctx context.Context, eventID string, p PageRequest) (Page[AttendanceRow], error) {
	const op = "services.rsvp.AttendancePage"

	if err := p.validate(); err != nil {
		return Page[AttendanceRow]{}, fmt.Errorf("%s: %w", op, err)
	}

	_, rows, err := s.listAttendance(ctx, eventID, p.ChapterID)
	if err != nil {
		return Page[AttendanceRow]{}, fmt.Errorf("%s: %w", op, err)
	}

	return paginate(rows, p), nil
}

var (
	registrationColumns = []Column{
		{Header: "Name", Key: "name"},
		{Header: "Phone", Key: "phone"},
		{Header: "Chapter", Key: "chapter_name"},
		{Header: "Registration Date", Key: "registered_date"},
	}
	attendanceColumns = []Column{
		{Header: "Name", Key: "name"},
		{Header: "Phone", Key: "phone"},
		{Header: "Chapter", Key: "chapter_name"},
		{Header: "Registration Date", Key: "registered_date"},
	}
	guestColumns = []Column{
		{Header: "GuestName", Key: "name"},
		{Header: "Contact", Key: "contact"},
		{Header: "Category", Key: "category"},
		{Header: "C/O Member", Key: "added_by"},
		{Header: "Registration Date", Key: "registration_date"},
	}
)

// RegistrationExport is a flat RSVP table. RegisteredCount counts the
// exported rows; BalanceSeats is event-wide. TotalSeats and BalanceSeats are
// nil for events without a seat limit.
type RegistrationExport struct {
	Headers         []Column          `json:"headers"`
	Body            []RegistrationRow `json:"body"`
	TotalSeats      *int              `json:"total_seats"`
	RegisteredCount int               `json:"registered_count"`
	BalanceSeats    *int              `json:"balance_seats"`
}

func (s *Service) ExportRegistrations(ctx context.Context, eventID, chapterID string) (RegistrationExport, error) {
	const op = "services.rsvp.ExportRegistrations"

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return RegistrationExport{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.registrationView(ctx, event, RegistrationFilter{ChapterID: chapterID, SortByChapter: true})
	if err != nil {
		return RegistrationExport{}, fmt.Errorf("%s: %w", op, err)
	}

	export := RegistrationExport{
		Headers:         registrationColumns,
		Body:            rows,
		RegisteredCount: len(rows),
	}

	if !event.Unlimited() {
		total := event.Capacity
		balance := event.SeatsLeft()
		export.TotalSeats = &total
		export.BalanceSeats = &balance
	}

	return export, nil
}

type AttendanceExport struct {
	Headers       []Column        `json:"headers"`
	Body          []AttendanceRow `json:"body"`
	AttendedCount int             `json:"attended_count"`
	TotalSeats    *int            `json:"total_seats"`
}

func (s *Service) ExportAttendance(ctx context.Context, eventID, chapterID string) (AttendanceExport, error) {
	const op = "services.rsvp.ExportAttendance"

	event, rows, err := s.listAttendance(ctx, eventID, chapterID)
	if err != nil {
		return AttendanceExport{}, fmt.Errorf("%s: %w", op, err)
	}

	sortByChapter(rows, func(r AttendanceRow) (string, string) { return r.ChapterName, r.UserID })

	export := AttendanceExport{
		Headers:       attendanceColumns,
		Body:          rows,
		AttendedCount: len(rows),
	}

	if !event.Unlimited() {
		total := event.Capacity
		export.TotalSeats = &total
	}

	return export, nil
}

type GuestExport struct {
	Headers []Column   `json:"headers"`
	Body    []GuestRow `json:"body"`
}

func (s *Service) ExportGuests(ctx context.Context, eventID string) (GuestExport, error) {
	const op = "services.rsvp.ExportGuests"

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return GuestExport{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.guestRows(ctx, event)
	if err != nil {
		return GuestExport{}, fmt.Errorf("%s: %w", op, err)
	}

	return GuestExport{Headers: guestColumns, Body: rows}, nil
}

func (s *Service) guestRows(ctx context.Context, event *models.Event) ([]GuestRow, error) {
	adders := make([]string, 0, len(event.Guests))
	for _, g := range event.Guests {
		adders = append(adders, g.AddedBy)
	}

	users, err := s.profiles(ctx, adders)
	if err != nil {
		return nil, err
	}

	rows := make([]GuestRow, 0, len(event.Guests))
	for _, g := range event.Guests {
		at := g.CreatedAt
		date := formatDate(&at)
		if g.CreatedAt.IsZero() {
			date = noValue
		}

		rows = append(rows, GuestRow{
			ID:               g.ID,
			Name:             g.Name,
			Contact:          g.Contact,
			Category:         g.Category,
			AddedByID:        g.AddedBy,
			AddedBy:          profileOf(g.AddedBy, users).Name,
			CreatedAt:        g.CreatedAt,
			RegistrationDate: date,
		})
	}

	return rows, nil
}
