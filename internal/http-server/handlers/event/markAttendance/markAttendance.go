package markAttendance

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type AttendanceResponse struct {
	response.Response
	Attendee rsvp.Profile `json:"attendee"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceMarker
type AttendanceMarker interface {
	MarkAttended(ctx context.Context, eventID string, actor models.Actor, targetUserID string) (rsvp.Profile, error)
}

// New checks the user in the path into the event. Walk-ins without an RSVP
// are accepted.
func New(log *slog.Logger, marker AttendanceMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.markAttendance.New"

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
			slog.String("marked_by", actor.UserID),
		)

		attendee, err := marker.MarkAttended(r.Context(), eventID, actor, userID)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to mark attendance")
			return
		}

		log.Info("attendance marked")

		render.JSON(w, r, AttendanceResponse{
			Response: response.OK(),
			Attendee: attendee,
		})
	}
}
