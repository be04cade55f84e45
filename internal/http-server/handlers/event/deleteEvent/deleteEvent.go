package deleteEvent

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, actor models.Actor, eventID string) error
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("user_id", actor.UserID),
		)

		if err := deleter.DeleteEvent(r.Context(), actor, eventID); err != nil {
			eventerr.Render(w, r, log, err, "failed to delete event")
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.OK())
	}
}
