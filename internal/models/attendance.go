package models

import "slices"

func (e *Event) HasAttended(userID string) bool {
	return slices.Contains(e.Attendees, userID)
}

// MarkAttended records a check-in. It does not consult the registrations,
// so walk-ins are accepted.
func (e *Event) MarkAttended(userID string) error {
	if e.HasAttended(userID) {
		return ErrAlreadyAttended
	}

	e.Attendees = append(e.Attendees, userID)

	return nil
}

// WalkIns returns attendees with no registration in either representation,
// in check-in order.
func (e *Event) WalkIns() []string {
	registered := make(map[string]struct{})
	for _, id := range e.RegisteredUserIDs() {
		registered[id] = struct{}{}
	}

	var walkIns []string
	for _, id := range e.Attendees {
		if _, ok := registered[id]; !ok {
			walkIns = append(walkIns, id)
		}
	}

	return walkIns
}
