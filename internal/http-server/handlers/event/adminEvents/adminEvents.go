package adminEvents

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

type PageResponse struct {
	response.Response
	Items []rsvp.AdminEventRow `json:"items"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminEventsPager
type AdminEventsPager interface {
	AdminEventsPage(ctx context.Context, actor models.Actor, q rsvp.AdminEventsQuery) (rsvp.Page[rsvp.AdminEventRow], error)
}

// New pages over every event for administrators, newest first. ?status=
// narrows to one state and ?search= matches part of the name.
func New(log *slog.Logger, pager AdminEventsPager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.adminEvents.New"

		log := log.With(slog.String("op", op))

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		page, limit, ok := eventerr.PageParams(w, r, log)
		if !ok {
			return
		}

		q := rsvp.AdminEventsQuery{
			Page:   page,
			Limit:  limit,
			Status: models.EventStatus(r.URL.Query().Get("status")),
			Search: r.URL.Query().Get("search"),
		}

		log = log.With(
			slog.Int("page", q.Page),
			slog.Int("limit", q.Limit),
			slog.String("status", string(q.Status)),
		)

		result, err := pager.AdminEventsPage(r.Context(), actor, q)
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to list events")
			return
		}

		log.Info("page built", slog.Int("total", result.Total))

		render.JSON(w, r, PageResponse{
			Response: response.OK(),
			Items:    result.Items,
			Total:    result.Total,
			Page:     q.Page,
			Limit:    q.Limit,
		})
	}
}
