package models

import (
	"errors"
	"slices"
	"time"
)

type EventKind string

const (
	EventOnline  EventKind = "Online"
	EventOffline EventKind = "Offline"
)

type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusUpcoming  EventStatus = "upcoming"
	StatusLive      EventStatus = "live"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// CapacityUnlimited disables admission control. Zero is a real capacity of
// zero seats.
const CapacityUnlimited = -1

var ErrInvalidCapacity = errors.New("capacity must be a non-negative number of seats or -1 for unlimited")

type Speaker struct {
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Role        string `json:"role,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Registration is a timestamped RSVP record.
type Registration struct {
	UserID       string    `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Category  string    `json:"category,omitempty"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is the aggregate holding all registration and attendance state for
// one gathering. LegacyRSVP holds registrant ids written before registrations
// carried timestamps; it is only ever read or shrunk.
type Event struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Kind          EventKind   `json:"kind"`
	Image         string      `json:"image,omitempty"`
	StartsAt      time.Time   `json:"starts_at"`
	EndsAt        time.Time   `json:"ends_at"`
	Venue         string      `json:"venue,omitempty"`
	Platform      string      `json:"platform,omitempty"`
	Link          string      `json:"link,omitempty"`
	OrganiserName string      `json:"organiser_name,omitempty"`
	Speakers      []Speaker   `json:"speakers,omitempty"`
	Status        EventStatus `json:"status"`

	Capacity   int      `json:"capacity"`
	AllUsers   bool     `json:"all_users"`
	ChapterIDs []string `json:"chapter_ids,omitempty"`

	AllowGuestRegistration bool     `json:"allow_guest_registration"`
	Coordinators           []string `json:"coordinators,omitempty"`

	LegacyRSVP    []string       `json:"-"`
	Registrations []Registration `json:"-"`
	Attendees     []string       `json:"-"`
	Guests        []Guest        `json:"-"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidateCapacity(capacity int) error {
	if capacity < CapacityUnlimited {
		return ErrInvalidCapacity
	}

	return nil
}

func (e *Event) Unlimited() bool {
	return e.Capacity == CapacityUnlimited
}

// Open reports whether the event still accepts registrations.
func (e *Event) Open() bool {
	return e.Status != StatusCancelled && e.Status != StatusCompleted
}

func (e *Event) IsCoordinator(userID string) bool {
	return slices.Contains(e.Coordinators, userID)
}

// Clone returns a deep copy so a failed mutation never leaks into a cached
// or shared aggregate.
func (e *Event) Clone() *Event {
	c := *e
	c.Speakers = append([]Speaker(nil), e.Speakers...)
	c.ChapterIDs = append([]string(nil), e.ChapterIDs...)
	c.Coordinators = append([]string(nil), e.Coordinators...)
	c.LegacyRSVP = append([]string(nil), e.LegacyRSVP...)
	c.Registrations = append([]Registration(nil), e.Registrations...)
	c.Attendees = append([]string(nil), e.Attendees...)
	c.Guests = append([]Guest(nil), e.Guests...)

	return &c
}
