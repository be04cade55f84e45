package editEvent

import (
	"chapterEvents/internal/http-server/handlers/event/createEvent"
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
)

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventEditor
type EventEditor interface {
	UpdateEvent(ctx context.Context, actor models.Actor, eventID string, in rsvp.EventInput) (*models.Event, error)
}

// New replaces an event's details with the request body. The body has the
// same shape as the one used to create an event.
func New(log *slog.Logger, editor EventEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.editEvent.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		var req createEvent.EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log = log.With(slog.String("event_id", eventID))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		updated, err := editor.UpdateEvent(r.Context(), actor, eventID, req.Input())
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to update event")
			return
		}

		log.Info("event updated", slog.Int64("version", updated.Version))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    updated,
		})
	}
}
