package removeRegistration

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationRemover
type RegistrationRemover interface {
	RemoveRegistration(ctx context.Context, eventID string, actor models.Actor, targetUserID string) error
}

func New(log *slog.Logger, remover RegistrationRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.removeRegistration.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		userID, ok := eventerr.RequiredParam(w, r, log, "userId", "user id is required")
		if !ok {
			return
		}

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("user_id", userID),
			slog.String("removed_by", actor.UserID),
		)

		if err := remover.RemoveRegistration(r.Context(), eventID, actor, userID); err != nil {
			eventerr.Render(w, r, log, err, "failed to remove registration")
			return
		}

		log.Info("registration removed")

		render.JSON(w, r, response.OK())
	}
}
