package exportAttendance

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/services/rsvp"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type ExportResponse struct {
	response.Response
	rsvp.AttendanceExport
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceExporter
type AttendanceExporter interface {
	ExportAttendance(ctx context.Context, eventID, chapterID string) (rsvp.AttendanceExport, error)
}

func New(log *slog.Logger, exporter AttendanceExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.exportAttendance.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		chapterID := r.URL.Query().Get("chapterId")

		log = log.With(slog.String("event_id", eventID), slog.String("chapter_id", chapterID))

		export, err := exporter.ExportAttendance(r.Context(), eventID, chapterID)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to export attendance")
			return
		}

		log.Info("attendance exported", slog.Int("rows", export.AttendedCount))

		render.JSON(w, r, ExportResponse{
			Response:         response.OK(),
			AttendanceExport: export,
		})
	}
}
