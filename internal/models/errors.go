package models

import "errors"

var (
	ErrNotEligible             = errors.New("event is not available for your chapter")
	ErrEventClosed             = errors.New("event is not accepting registrations")
	ErrAlreadyRegistered       = errors.New("user has already registered for this event")
	ErrCapacityExceeded        = errors.New("event registration limit reached")
	ErrGuestRegistrationClosed = errors.New("guest registration is disabled for this event")
	ErrGuestNotFound           = errors.New("guest not found")
	ErrNotGuestOwner           = errors.New("guest was added by another member")
	ErrGuestNameRequired       = errors.New("guest name is required")
	ErrAlreadyAttended         = errors.New("user has already been marked as attended")
)
