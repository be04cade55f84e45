package rsvp

import (
	"chapterEvents/internal/models"
	"time"
)

const (
	unknownDate = "unknown"
	noValue     = "-"
	unknownName = "Unknown"
)

// Profile is a user as shown in event views.
type Profile struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	MemberID    string `json:"member_id,omitempty"`
	ChapterID   string `json:"chapter_id,omitempty"`
	ChapterName string `json:"chapter_name"`
}

func profileOf(userID string, users map[string]models.User) Profile {
	u, ok := users[userID]
	if !ok {
		return Profile{UserID: userID, Name: unknownName, Phone: noValue, ChapterName: noValue}
	}

	return Profile{
		UserID:      userID,
		Name:        orDefault(u.Name, unknownName),
		Phone:       orDefault(u.Phone, noValue),
		Email:       u.Email,
		MemberID:    u.MemberID,
		ChapterID:   u.ChapterID,
		ChapterName: orDefault(u.ChapterName, noValue),
	}
}

// RegistrationRow is one registrant in the merged RSVP view. Legacy rows
// have no timestamp and report RegisteredDate as "unknown".
type RegistrationRow struct {
	Profile
	RegisteredAt   *time.Time `json:"-"`
	RegisteredDate string     `json:"registered_date"`
	Legacy         bool       `json:"legacy"`
}

type AttendanceRow struct {
	Profile
	Registered     bool   `json:"registered"`
	RegisteredDate string `json:"registered_date"`
}

type GuestRow struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Contact          string    `json:"contact"`
	Category         string    `json:"category"`
	AddedByID        string    `json:"added_by_id"`
	AddedBy          string    `json:"added_by"`
	CreatedAt        time.Time `json:"-"`
	RegistrationDate string    `json:"registration_date"`
}

// Column pairs a display header with the JSON key of the row field it shows.
type Column struct {
	Header string `json:"header"`
	Key    string `json:"key"`
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return unknownDate
	}

	return t.UTC().Format(time.RFC3339)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}

// registrationRows merges both RSVP representations, legacy first, then
// current records in insertion order. An id present in both keeps its
// timestamped record.
func registrationRows(e *models.Event, users map[string]models.User) []RegistrationRow {
	current := make(map[string]struct{}, len(e.Registrations))
	for _, r := range e.Registrations {
		current[r.UserID] = struct{}{}
	}

	rows := make([]RegistrationRow, 0, len(e.LegacyRSVP)+len(e.Registrations))
	seen := make(map[string]struct{}, cap(rows))

	for _, id := range e.LegacyRSVP {
		if _, ok := current[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		rows = append(rows, RegistrationRow{
			Profile:        profileOf(id, users),
			RegisteredDate: unknownDate,
			Legacy:         true,
		})
	}

	for _, r := range e.Registrations {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}

		at := r.RegisteredAt
		rows = append(rows, RegistrationRow{
			Profile:        profileOf(r.UserID, users),
			RegisteredAt:   &at,
			RegisteredDate: formatDate(&at),
		})
	}

	return rows
}
