package deleteGuest

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestDeleter
type GuestDeleter interface {
	DeleteGuest(ctx context.Context, eventID string, actor models.Actor, guestID string) error
}

func New(log *slog.Logger, deleter GuestDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteGuest.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		guestID, ok := eventerr.RequiredParam(w, r, log, "guestId", "guest id is required")
		if !ok {
			return
		}

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("guest_id", guestID),
			slog.String("user_id", actor.UserID),
		)

		if err := deleter.DeleteGuest(r.Context(), eventID, actor, guestID); err != nil {
			eventerr.Render(w, r, log, err, "failed to delete guest")
			return
		}

		log.Info("guest deleted")

		render.JSON(w, r, response.OK())
	}
}
