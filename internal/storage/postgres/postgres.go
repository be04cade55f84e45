package postgres

import (
	"chapterEvents/internal/config"
	"chapterEvents/internal/models"
	"chapterEvents/internal/storage"
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"time"
)

//go:embed migrations/*.sql
var migrations embed.FS

const uniqueViolation = "23505"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// Migrate applies the embedded schema migrations.
func (s *Storage) Migrate() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	driver, err := pgmigrate.WithInstance(s.DB, &pgmigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

const eventColumns = `
	id, name, description, kind, image, starts_at, ends_at, venue, platform, link,
	organiser_name, speakers, status, capacity, all_users, chapter_ids,
	allow_guest_registration, coordinators, legacy_rsvp, registrations,
	attendees, guests, version, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var event models.Event
	var speakers, registrations, guests []byte

	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Kind,
		&event.Image,
		&event.StartsAt,
		&event.EndsAt,
		&event.Venue,
		&event.Platform,
		&event.Link,
		&event.OrganiserName,
		&speakers,
		&event.Status,
		&event.Capacity,
		&event.AllUsers,
		pq.Array(&event.ChapterIDs),
		&event.AllowGuestRegistration,
		pq.Array(&event.Coordinators),
		pq.Array(&event.LegacyRSVP),
		&registrations,
		pq.Array(&event.Attendees),
		&guests,
		&event.Version,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(speakers, &event.Speakers); err != nil {
		return nil, fmt.Errorf("failed to decode speakers: %w", err)
	}
	if err = json.Unmarshal(registrations, &event.Registrations); err != nil {
		return nil, fmt.Errorf("failed to decode registrations: %w", err)
	}
	if err = json.Unmarshal(guests, &event.Guests); err != nil {
		return nil, fmt.Errorf("failed to decode guests: %w", err)
	}

	return &event, nil
}

type eventDocs struct {
	speakers, registrations, guests []byte
}

func encodeDocs(event *models.Event) (eventDocs, error) {
	var (
		docs eventDocs
		err  error
	)

	if docs.speakers, err = json.Marshal(nonNil(event.Speakers)); err != nil {
		return docs, fmt.Errorf("failed to encode speakers: %w", err)
	}
	if docs.registrations, err = json.Marshal(nonNil(event.Registrations)); err != nil {
		return docs, fmt.Errorf("failed to encode registrations: %w", err)
	}
	if docs.guests, err = json.Marshal(nonNil(event.Guests)); err != nil {
		return docs, fmt.Errorf("failed to encode guests: %w", err)
	}

	return docs, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	docs, err := encodeDocs(event)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25)`

	_, err = s.DB.ExecContext(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.Kind,
		event.Image,
		event.StartsAt,
		event.EndsAt,
		event.Venue,
		event.Platform,
		event.Link,
		event.OrganiserName,
		docs.speakers,
		event.Status,
		event.Capacity,
		event.AllUsers,
		pq.Array(nonNil(event.ChapterIDs)),
		event.AllowGuestRegistration,
		pq.Array(nonNil(event.Coordinators)),
		pq.Array(nonNil(event.LegacyRSVP)),
		docs.registrations,
		pq.Array(nonNil(event.Attendees)),
		docs.guests,
		event.Version,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return storage.ErrEventExists
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
			// not a uuid
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// UpdateEvent writes every field of the aggregate except its id and creation
// time if the stored version still equals event.Version, then bumps
// event.Version.
func (s *Storage) UpdateEvent(ctx context.Context, event *models.Event) error {
	docs, err := encodeDocs(event)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	query := `
		UPDATE events
		SET name = $1, description = $2, kind = $3, image = $4, starts_at = $5,
		    ends_at = $6, venue = $7, platform = $8, link = $9, organiser_name = $10,
		    speakers = $11, status = $12, capacity = $13, all_users = $14,
		    chapter_ids = $15, allow_guest_registration = $16, coordinators = $17,
		    legacy_rsvp = $18, registrations = $19, attendees = $20, guests = $21,
		    version = version + 1, updated_at = $22
		WHERE id = $23 AND version = $24`

	result, err := s.DB.ExecContext(ctx, query,
		event.Name,
		event.Description,
		event.Kind,
		event.Image,
		event.StartsAt,
		event.EndsAt,
		event.Venue,
		event.Platform,
		event.Link,
		event.OrganiserName,
		docs.speakers,
		event.Status,
		event.Capacity,
		event.AllUsers,
		pq.Array(nonNil(event.ChapterIDs)),
		event.AllowGuestRegistration,
		pq.Array(nonNil(event.Coordinators)),
		pq.Array(nonNil(event.LegacyRSVP)),
		docs.registrations,
		pq.Array(nonNil(event.Attendees)),
		docs.guests,
		now,
		event.ID,
		event.Version,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return storage.ErrEventExists
		}
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if rowsAffected == 0 {
		var exists bool
		err = s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, event.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check event: %w", err)
		}
		if !exists {
			return storage.ErrEventNotFound
		}
		return storage.ErrVersionConflict
	}

	event.Version++
	event.UpdatedAt = now

	return nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY starts_at ASC, id ASC`

	return s.queryEvents(ctx, query)
}

// GetEventsByRegistrant returns events holding userID in either RSVP
// representation.
func (s *Storage) GetEventsByRegistrant(ctx context.Context, userID string) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE $1 = ANY(legacy_rsvp)
		   OR registrations @> jsonb_build_array(jsonb_build_object('user_id', $1::text))
		ORDER BY starts_at ASC, id ASC`

	return s.queryEvents(ctx, query, userID)
}

func (s *Storage) queryEvents(ctx context.Context, query string, args ...any) ([]models.Event, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

const userColumns = `
	u.id, u.name, u.phone, u.email, u.member_id, COALESCE(u.chapter_id, ''),
	COALESCE(c.name, ''), u.fcm_token, u.status = 'active'`

func scanUser(row rowScanner) (models.User, error) {
	var user models.User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Phone,
		&user.Email,
		&user.MemberID,
		&user.ChapterID,
		&user.ChapterName,
		&user.FCMToken,
		&user.Active,
	)

	return user, err
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN chapters c ON c.id = u.chapter_id
		WHERE u.id = $1`

	user, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUsers resolves ids to users. Unknown ids are absent from the result.
func (s *Storage) GetUsers(ctx context.Context, ids []string) (map[string]models.User, error) {
	users := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN chapters c ON c.id = u.chapter_id
		WHERE u.id = ANY($1)`

	rows, err := s.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[user.ID] = user
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// ActiveUserTokens returns device tokens of active users, restricted to the
// given chapters unless chapterIDs is nil.
func (s *Storage) ActiveUserTokens(ctx context.Context, chapterIDs []string) ([]string, error) {
	query := `SELECT fcm_token FROM users WHERE status = 'active' AND fcm_token <> ''`
	var args []any

	if chapterIDs != nil {
		query += ` AND chapter_id = ANY($1)`
		args = append(args, pq.Array(chapterIDs))
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get user tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err = rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan user token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user tokens: %w", err)
	}

	return tokens, nil
}
