package models

import (
	"slices"
	"time"
)

// RegisteredCount counts registrants across both RSVP representations.
// An id present in both is counted once.
func (e *Event) RegisteredCount() int {
	return len(e.RegisteredUserIDs())
}

func (e *Event) IsRegistered(userID string) bool {
	if slices.Contains(e.LegacyRSVP, userID) {
		return true
	}

	return slices.ContainsFunc(e.Registrations, func(r Registration) bool {
		return r.UserID == userID
	})
}

// RegisteredUserIDs returns the normalized union of legacy and current
// registrants, legacy ids first, each id once.
func (e *Event) RegisteredUserIDs() []string {
	seen := make(map[string]struct{}, len(e.LegacyRSVP)+len(e.Registrations))
	ids := make([]string, 0, len(e.LegacyRSVP)+len(e.Registrations))

	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, id := range e.LegacyRSVP {
		add(id)
	}
	for _, r := range e.Registrations {
		add(r.UserID)
	}

	return ids
}

// Register admits userID if the event is open, has room and the user is
// not yet registered. Eligibility is checked by the caller, which knows the
// user's chapter. On error the event is left untouched.
func (e *Event) Register(userID string, now time.Time) error {
	if !e.Open() {
		return ErrEventClosed
	}

	if e.IsRegistered(userID) {
		return ErrAlreadyRegistered
	}

	if !e.Unlimited() && e.RegisteredCount() >= e.Capacity {
		return ErrCapacityExceeded
	}

	e.Registrations = append(e.Registrations, Registration{
		UserID:       userID,
		RegisteredAt: now,
	})

	return nil
}

// Unregister drops userID from both representations and reports whether
// anything was removed.
func (e *Event) Unregister(userID string) bool {
	before := len(e.LegacyRSVP) + len(e.Registrations)

	e.LegacyRSVP = slices.DeleteFunc(e.LegacyRSVP, func(id string) bool {
		return id == userID
	})
	e.Registrations = slices.DeleteFunc(e.Registrations, func(r Registration) bool {
		return r.UserID == userID
	})

	return len(e.LegacyRSVP)+len(e.Registrations) != before
}

// SeatsLeft returns the remaining seats, or -1 when unlimited. It never goes
// below zero even if capacity was lowered under the current count.
func (e *Event) SeatsLeft() int {
	if e.Unlimited() {
		return CapacityUnlimited
	}

	return max(e.Capacity-e.RegisteredCount(), 0)
}
