package exportRegistrations

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
	rsvp.RegistrationExport
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsExporter
type RegistrationsExporter interface {
	ExportRegistrations(ctx context.Context, eventID, chapterID string) (rsvp.RegistrationExport, error)
}

// New returns the RSVP table sorted by chapter name. Clients render headers
// and body into a spreadsheet.
func New(log *slog.Logger, exporter RegistrationsExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.exportRegistrations.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		chapterID := r.URL.Query().Get("chapterId")

		log = log.With(slog.String("event_id", eventID), slog.String("chapter_id", chapterID))

		export, err := exporter.ExportRegistrations(r.Context(), eventID, chapterID)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to export registrations")
			return
		}

		log.Info("registrations exported", slog.Int("rows", export.RegisteredCount))

		render.JSON(w, r, ExportResponse{
			Response:           response.OK(),
			RegistrationExport: export,
		})
	}
}
