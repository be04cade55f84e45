// Package memory is an in-process implementation of the event and user
// stores. It honours the same optimistic versioning contract as the
// postgres storage and is used by tests and local runs without a database.
package memory

import (
	"chapterEvents/internal/models"
	"chapterEvents/internal/storage"
	"context"
	"slices"
	"sort"
	"sync"
	"time"
)

type Storage struct {
	mu     sync.RWMutex
	events map[string]*models.Event
	users  map[string]models.User
}

func New() *Storage {
	return &Storage{
		events: make(map[string]*models.Event),
		users:  make(map[string]models.User),
	}
}

// PutUser seeds the user directory.
func (s *Storage) PutUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = user
}

// PutEvent stores event as-is, bypassing version checks. Used to seed
// historical data such as legacy RSVP lists.
func (s *Storage) PutEvent(event *models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[event.ID] = event.Clone()
}

func (s *Storage) CreateEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.Name == event.Name {
			return storage.ErrEventExists
		}
	}

	if _, ok := s.events[event.ID]; ok {
		return storage.ErrEventExists
	}

	s.events[event.ID] = event.Clone()

	return nil
}

func (s *Storage) GetEvent(_ context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, storage.ErrEventNotFound
	}

	return event.Clone(), nil
}

func (s *Storage) UpdateEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.events[event.ID]
	if !ok {
		return storage.ErrEventNotFound
	}

	if stored.Version != event.Version {
		return storage.ErrVersionConflict
	}

	for id, e := range s.events {
		if id != event.ID && e.Name == event.Name {
			return storage.ErrEventExists
		}
	}

	event.Version++
	event.UpdatedAt = time.Now().UTC()
	s.events[event.ID] = event.Clone()

	return nil
}

func (s *Storage) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return storage.ErrEventNotFound
	}

	delete(s.events, id)

	return nil
}

func (s *Storage) GetAllEvents(_ context.Context) ([]models.Event, error) {
	return s.filterEvents(func(*models.Event) bool { return true }), nil
}

func (s *Storage) GetEventsByRegistrant(_ context.Context, userID string) ([]models.Event, error) {
	return s.filterEvents(func(e *models.Event) bool { return e.IsRegistered(userID) }), nil
}

func (s *Storage) filterEvents(keep func(*models.Event) bool) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []models.Event
	for _, e := range s.events {
		if keep(e) {
			events = append(events, *e.Clone())
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].StartsAt.Equal(events[j].StartsAt) {
			return events[i].StartsAt.Before(events[j].StartsAt)
		}
		return events[i].ID < events[j].ID
	})

	return events
}

func (s *Storage) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	return &user, nil
}

func (s *Storage) GetUsers(_ context.Context, ids []string) (map[string]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make(map[string]models.User, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			users[id] = user
		}
	}

	return users, nil
}

func (s *Storage) ActiveUserTokens(_ context.Context, chapterIDs []string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tokens []string
	for _, user := range s.users {
		if !user.Active || user.FCMToken == "" {
			continue
		}
		if chapterIDs != nil && !slices.Contains(chapterIDs, user.ChapterID) {
			continue
		}
		tokens = append(tokens, user.FCMToken)
	}

	sort.Strings(tokens)

	return tokens, nil
}
