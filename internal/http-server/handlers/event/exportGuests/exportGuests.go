package exportGuests

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
	rsvp.GuestExport
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestsExporter
type GuestsExporter interface {
	ExportGuests(ctx context.Context, eventID string) (rsvp.GuestExport, error)
}

func New(log *slog.Logger, exporter GuestsExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.exportGuests.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		log = log.With(slog.String("event_id", eventID))

		export, err := exporter.ExportGuests(r.Context(), eventID)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to export guests")
			return
		}

		log.Info("guests exported", slog.Int("rows", len(export.Body)))

		render.JSON(w, r, ExportResponse{
			Response:    response.OK(),
			GuestExport: export,
		})
	}
}
