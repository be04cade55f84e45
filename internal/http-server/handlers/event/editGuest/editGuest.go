package editGuest

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// GuestRequest is a partial update. Absent fields keep their current value.
type GuestRequest struct {
	Name     *string `json:"name"`
	Contact  *string `json:"contact"`
	Category *string `json:"category"`
}

type GuestResponse struct {
	response.Response
	Guest models.Guest `json:"guest"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestEditor
type GuestEditor interface {
	EditGuest(ctx context.Context, eventID string, actor models.Actor, guestID string, patch models.GuestPatch) (models.Guest, error)
}

func New(log *slog.Logger, editor GuestEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.editGuest.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		guestID, ok := eventerr.RequiredParam(w, r, log, "guestId", "guest id is required")
		if !ok {
			return
		}

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("guest_id", guestID),
			slog.String("user_id", actor.UserID),
		)

		var req GuestRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		guest, err := editor.EditGuest(r.Context(), eventID, actor, guestID, models.GuestPatch{
			Name:     req.Name,
			Contact:  req.Contact,
			Category: req.Category,
		})
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to edit guest")
			return
		}

		log.Info("guest updated")

		render.JSON(w, r, GuestResponse{
			Response: response.OK(),
			Guest:    guest,
		})
	}
}
