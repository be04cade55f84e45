package storage

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEventExists     = errors.New("event already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrVersionConflict = errors.New("event was modified concurrently")
)
