package registeredEvents

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegisteredEventsGetter
type RegisteredEventsGetter interface {
	RegisteredEvents(ctx context.Context, userID string) ([]models.Event, error)
}

// New lists the events the caller holds an RSVP for.
func New(log *slog.Logger, getter RegisteredEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registeredEvents.New"

		log := log.With(slog.String("op", op))

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		log = log.With(slog.String("user_id", actor.UserID))

		events, err := getter.RegisteredEvents(r.Context(), actor.UserID)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to get registered events")
			return
		}

		if events == nil {
			events = []models.Event{}
		}

		log.Info("registered events retrieved", slog.Int("count", len(events)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
