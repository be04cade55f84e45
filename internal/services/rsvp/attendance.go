package rsvp

import (
	"chapterEvents/internal/models"
	"context"
	"fmt"
)

// MarkAttended checks targetUserID in. Registration is not required; on an
// event restricted to chapters the target must belong to one of them.
func (s *Service) MarkAttended(ctx context.Context, eventID string, actor models.Actor, targetUserID string) (Profile, error) {
	const op = "services.rsvp.MarkAttended"

	if !models.CanCheckIn(actor.Role) {
		s.metrics.CheckIn(KindForbidden.String())
		return Profile{}, fmt.Errorf("%s: %w", op, ErrCheckInDenied)
	}

	if targetUserID == "" {
		return Profile{}, fmt.Errorf("%s: %w: user id is required", op, ErrInvalidInput)
	}

	target, err := s.users.GetUser(ctx, targetUserID)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.mutate(ctx, eventID, func(e *models.Event) error {
		if !e.CanRegister(target.ChapterID) {
			return models.ErrNotEligible
		}

		return e.MarkAttended(targetUserID)
	})
	if err != nil {
		s.metrics.CheckIn(KindOf(err).String())
		return Profile{}, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.CheckIn("ok")

	return profileOf(targetUserID, map[string]models.User{targetUserID: *target}), nil
}

type AttendanceSummary struct {
	RegisteredUsers []Profile `json:"registered_users"`
	AttendedUsers   []Profile `json:"attended_users"`
	// WalkInCount counts attendees without any registration. It is the
	// "new users" figure shown to operators, not the total attendance.
	WalkInCount int `json:"walk_in_count"`
}

func (s *Service) AttendanceSummary(ctx context.Context, eventID string) (AttendanceSummary, error) {
	const op = "services.rsvp.AttendanceSummary"

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return AttendanceSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	registered := event.RegisteredUserIDs()

	users, err := s.profiles(ctx, append(append([]string(nil), registered...), event.Attendees...))
	if err != nil {
		return AttendanceSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	summary := AttendanceSummary{
		RegisteredUsers: make([]Profile, 0, len(registered)),
		AttendedUsers:   make([]Profile, 0, len(event.Attendees)),
		WalkInCount:     len(event.WalkIns()),
	}

	for _, id := range registered {
		summary.RegisteredUsers = append(summary.RegisteredUsers, profileOf(id, users))
	}
	for _, id := range event.Attendees {
		summary.AttendedUsers = append(summary.AttendedUsers, profileOf(id, users))
	}

	return summary, nil
}
