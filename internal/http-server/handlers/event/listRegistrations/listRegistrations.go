package listRegistrations

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/services/rsvp"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type PageResponse struct {
	response.Response
	Items []rsvp.RegistrationRow `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsPager
type RegistrationsPager interface {
	RegistrationsPage(ctx context.Context, eventID string, p rsvp.PageRequest) (rsvp.Page[rsvp.RegistrationRow], error)
}

// New pages over the merged RSVP list, optionally narrowed to one chapter
// with ?chapterId=.
func New(log *slog.Logger, pager RegistrationsPager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listRegistrations.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		page, limit, ok := eventerr.PageParams(w, r, log)
		if !ok {
			return
		}

		req := rsvp.PageRequest{
			Page:      page,
			Limit:     limit,
			ChapterID: r.URL.Query().Get("chapterId"),
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.Int("page", req.Page),
			slog.Int("limit", req.Limit),
			slog.String("chapter_id", req.ChapterID),
		)

		result, err := pager.RegistrationsPage(r.Context(), eventID, req)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to list registrations")
			return
		}

		log.Info("page built", slog.Int("total", result.Total))

		render.JSON(w, r, PageResponse{
			Response: response.OK(),
			Items:    result.Items,
			Total:    result.Total,
			Page:     req.Page,
			Limit:    req.Limit,
		})
	}
}
