package models

import (
	"slices"
	"strings"
	"time"
)

type GuestPatch struct {
	Name     *string
	Contact  *string
	Category *string
}

func (e *Event) FindGuest(guestID string) (*Guest, bool) {
	i := slices.IndexFunc(e.Guests, func(g Guest) bool { return g.ID == guestID })
	if i < 0 {
		return nil, false
	}

	return &e.Guests[i], true
}

func (e *Event) AddGuest(g Guest) error {
	if !e.AllowGuestRegistration {
		return ErrGuestRegistrationClosed
	}

	if strings.TrimSpace(g.Name) == "" {
		return ErrGuestNameRequired
	}

	e.Guests = append(e.Guests, g)

	return nil
}

// EditGuest applies patch to a guest owned by requesterID and resets its
// timestamp. Ownership never changes.
func (e *Event) EditGuest(requesterID, guestID string, patch GuestPatch, now time.Time) (Guest, error) {
	g, ok := e.FindGuest(guestID)
	if !ok {
		return Guest{}, ErrGuestNotFound
	}

	if g.AddedBy != requesterID {
		return Guest{}, ErrNotGuestOwner
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return Guest{}, ErrGuestNameRequired
	}

	if patch.Name != nil {
		g.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Contact != nil {
		g.Contact = strings.TrimSpace(*patch.Contact)
	}
	if patch.Category != nil {
		g.Category = strings.TrimSpace(*patch.Category)
	}
	g.CreatedAt = now

	return *g, nil
}

func (e *Event) DeleteGuest(requesterID, guestID string) error {
	g, ok := e.FindGuest(guestID)
	if !ok {
		return ErrGuestNotFound
	}

	if g.AddedBy != requesterID {
		return ErrNotGuestOwner
	}

	e.Guests = slices.DeleteFunc(e.Guests, func(g Guest) bool { return g.ID == guestID })

	return nil
}
