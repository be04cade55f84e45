package createEvent

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"time"
)

type EventRequest struct {
	Name          string             `json:"name" validate:"required"`
	Description   string             `json:"description"`
	Kind          models.EventKind   `json:"kind" validate:"required,oneof=Online Offline"`
	Image         string             `json:"image"`
	StartsAt      time.Time          `json:"starts_at" validate:"required"`
	EndsAt        time.Time          `json:"ends_at" validate:"required"`
	Venue         string             `json:"venue"`
	Platform      string             `json:"platform"`
	Link          string             `json:"link"`
	OrganiserName string             `json:"organiser_name"`
	Speakers      []models.Speaker   `json:"speakers"`
	Status        models.EventStatus `json:"status" validate:"omitempty,oneof=pending upcoming live completed cancelled"`

	// Capacity is required so that 0 seats is never confused with "not set".
	// Use -1 for unlimited.
	Capacity   *int     `json:"capacity" validate:"required,min=-1"`
	AllUsers   bool     `json:"all_users"`
	ChapterIDs []string `json:"chapter_ids"`

	AllowGuestRegistration bool     `json:"allow_guest_registration"`
	Coordinators           []string `json:"coordinators"`
}

type EventResponse struct {
	response.Response
	EventId string `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, actor models.Actor, in rsvp.EventInput) (*models.Event, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("name", req.Name))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		created, err := event.CreateEvent(r.Context(), actor, req.Input())
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to add event")
			return
		}

		log.Info("event added", slog.String("id", created.ID))

		responseOK(w, r, created.ID)
	}
}

// Input maps the request onto the service input. Capacity must have passed
// validation.
func (req EventRequest) Input() rsvp.EventInput {
	return rsvp.EventInput{
		Name:                   req.Name,
		Description:            req.Description,
		Kind:                   req.Kind,
		Image:                  req.Image,
		StartsAt:               req.StartsAt,
		EndsAt:                 req.EndsAt,
		Venue:                  req.Venue,
		Platform:               req.Platform,
		Link:                   req.Link,
		OrganiserName:          req.OrganiserName,
		Speakers:               req.Speakers,
		Status:                 req.Status,
		Capacity:               *req.Capacity,
		AllUsers:               req.AllUsers,
		ChapterIDs:             req.ChapterIDs,
		AllowGuestRegistration: req.AllowGuestRegistration,
		Coordinators:           req.Coordinators,
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId string) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventId:  eventId,
	})
}
