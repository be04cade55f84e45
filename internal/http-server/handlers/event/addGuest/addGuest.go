package addGuest

import (
	"chapterEvents/internal/http-server/handlers/event/eventerr"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type GuestRequest struct {
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact"`
	Category string `json:"category"`
}

type GuestResponse struct {
	response.Response
	Guest models.Guest `json:"guest"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestAdder
type GuestAdder interface {
	AddGuest(ctx context.Context, eventID string, actor models.Actor, in rsvp.GuestInput) (models.Guest, error)
}

func New(log *slog.Logger, adder GuestAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.addGuest.New"

		log := log.With(slog.String("op", op))

		eventID, ok := eventerr.EventID(w, r, log)
		if !ok {
			return
		}

		actor, ok := eventerr.Actor(w, r, log)
		if !ok {
			return
		}

		log = log.With(slog.String("event_id", eventID), slog.String("added_by", actor.UserID))

		var req GuestRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		guest, err := adder.AddGuest(r.Context(), eventID, actor, rsvp.GuestInput{
			Name:     req.Name,
			Contact:  req.Contact,
			Category: req.Category,
		})
		if err != nil {
			eventerr.Render(w, r, log, err, "failed to add guest")
			return
		}

		log.Info("guest added", slog.String("guest_id", guest.ID))

		render.JSON(w, r, GuestResponse{
			Response: response.OK(),
			Guest:    guest,
		})
	}
}
