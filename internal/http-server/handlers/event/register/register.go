package register

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type RegisterResponse struct {
	response.Response
	RegisteredCount int `json:"registered_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Register(ctx context.Context, eventID string, actor models.Actor) (int, error)
}

// New registers the caller for the event in the path. The response carries
// the number of admitted registrants after the write.
func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.register.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		log = log.With(slog.String("event_id", eventID), slog.String("user_id", actor.UserID))

		count, err := registrar.Register(r.Context(), eventID, actor)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to register for event")
			return
		}

		log.Info("user registered", slog.Int("registered_count", count))

		responseOK(w, r, count)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, count int) {
	render.JSON(w, r, RegisterResponse{
		Response:        response.OK(),
		RegisteredCount: count,
	})
}
