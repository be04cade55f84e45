package rsvp

import (
	"chapterEvents/internal/models"
	"chapterEvents/internal/storage"
	"errors"
)

var (
	ErrCheckInDenied    = errors.New("role is not allowed to mark attendance")
	ErrRemoveDenied     = errors.New("not authorized to remove RSVP for this event")
	ErrManageDenied     = errors.New("not authorized to manage events")
	ErrInvalidInput     = errors.New("invalid input")
	ErrRetriesExhausted = errors.New("event is busy, retries exhausted")
)

// Kind is the client-facing class of a failure.
type Kind int

const (
	KindTransient Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindCapacityExceeded
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindValidation:
		return "validation"
	default:
		return "transient"
	}
}

// KindOf classifies err. Anything unrecognised is transient.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, storage.ErrEventNotFound),
		errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, models.ErrGuestNotFound):
		return KindNotFound
	case errors.Is(err, models.ErrNotEligible),
		errors.Is(err, models.ErrEventClosed),
		errors.Is(err, models.ErrGuestRegistrationClosed),
		errors.Is(err, models.ErrNotGuestOwner),
		errors.Is(err, ErrCheckInDenied),
		errors.Is(err, ErrRemoveDenied),
		errors.Is(err, ErrManageDenied):
		return KindForbidden
	case errors.Is(err, models.ErrAlreadyRegistered),
		errors.Is(err, models.ErrAlreadyAttended),
		errors.Is(err, storage.ErrEventExists):
		return KindConflict
	case errors.Is(err, models.ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, models.ErrGuestNameRequired),
		errors.Is(err, models.ErrInvalidCapacity),
		errors.Is(err, ErrInvalidInput):
		return KindValidation
	default:
		return KindTransient
	}
}
