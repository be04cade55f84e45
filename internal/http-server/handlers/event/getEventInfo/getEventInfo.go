package getEventInfo

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/services/rsvp"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type EventInfoResponse struct {
	response.Response
	*rsvp.EventDetails
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, eventID string) (*rsvp.EventDetails, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		log = log.With(slog.String("event_id", eventID))

		details, err := info.GetEvent(r.Context(), eventID)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to get event information")
			return
		}

		log.Info("event info successfully received")

		responseOK(w, r, details)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, details *rsvp.EventDetails) {
	render.JSON(w, r, EventInfoResponse{
		Response:     response.OK(),
		EventDetails: details,
	})
}
