package attendanceSummary

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/services/rsvp"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type SummaryResponse struct {
	response.Response
	rsvp.AttendanceSummary
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SummaryGetter
type SummaryGetter interface {
	AttendanceSummary(ctx context.Context, eventID string) (rsvp.AttendanceSummary, error)
}

func New(log *slog.Logger, getter SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.attendanceSummary.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		log = log.With(slog.String("event_id", eventID))

		summary, err := getter.AttendanceSummary(r.Context(), eventID)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to get attendance summary")
			return
		}

		log.Info("attendance summary built",
			slog.Int("registered", len(summary.RegisteredUsers)),
			slog.Int("attended", len(summary.AttendedUsers)),
			slog.Int("walk_ins", summary.WalkInCount),
		)

		render.JSON(w, r, SummaryResponse{
			Response:          response.OK(),
			AttendanceSummary: summary,
		})
	}
}
