package exportEvents

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

type ExportResponse struct {
	response.Response
	rsvp.EventExport
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsExporter
type EventsExporter interface {
	ExportEvents(ctx context.Context, actor models.Actor) (rsvp.EventExport, error)
}

func New(log *slog.Logger, exporter EventsExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.exportEvents.New"

		log := log.With(slog.String("op", op))

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		export, err := exporter.ExportEvents(r.Context(), actor)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to export events")
			return
		}

		log.Info("events exported", slog.Int("rows", len(export.Body)))

		render.JSON(w, r, ExportResponse{
			Response:    response.OK(),
			EventExport: export,
		})
	}
}
