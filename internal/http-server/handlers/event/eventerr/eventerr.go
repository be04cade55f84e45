// Package eventerr turns service errors into HTTP responses shared by the
// event handlers.
package eventerr

import (
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/lib/logger/sl"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"chapterEvents/internal/storage"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// Render writes the status and envelope for err. fallback is the message
// used for transient failures, whose details are only logged.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	status, resp := Classify(err, fallback)

	if status >= http.StatusInternalServerError {
		log.Error(fallback, sl.Err(err))
	} else {
		log.Info("request rejected", slog.String("code", resp.Code), sl.Err(err))
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

func Classify(err error, fallback string) (int, response.Response) {
	switch {
	case errors.Is(err, storage.ErrEventNotFound):
		return http.StatusNotFound, response.ErrorWithCode(response.CodeEventNotFound, "event not found")
	case errors.Is(err, models.ErrGuestNotFound):
		return http.StatusNotFound, response.ErrorWithCode(response.CodeGuestNotFound, "guest not found")
	case errors.Is(err, storage.ErrUserNotFound):
		return http.StatusNotFound, response.ErrorWithCode(response.CodeUserNotFound, "user not found")
	case errors.Is(err, models.ErrAlreadyRegistered):
		return http.StatusConflict, response.ErrorWithCode(response.CodeAlreadyRegistered, models.ErrAlreadyRegistered.Error())
	case errors.Is(err, models.ErrAlreadyAttended):
		return http.StatusConflict, response.ErrorWithCode(response.CodeAlreadyAttended, models.ErrAlreadyAttended.Error())
	case errors.Is(err, storage.ErrEventExists):
		return http.StatusConflict, response.ErrorWithCode(response.CodeEventExists, "an event with this name already exists")
	case errors.Is(err, models.ErrCapacityExceeded):
		return http.StatusConflict, response.ErrorWithCode(response.CodeCapacityExceeded, models.ErrCapacityExceeded.Error())
	}

	switch rsvp.KindOf(err) {
	case rsvp.KindForbidden:
		return http.StatusForbidden, response.ErrorWithCode(response.CodeForbidden, forbiddenMessage(err))
	case rsvp.KindValidation:
		return http.StatusBadRequest, response.ErrorWithCode(response.CodeValidation, validationMessage(err))
	default:
		return http.StatusInternalServerError, response.ErrorWithCode(response.CodeInternal, fallback)
	}
}

func forbiddenMessage(err error) string {
	for _, known := range []error{
		models.ErrNotEligible,
		models.ErrEventClosed,
		models.ErrGuestRegistrationClosed,
		models.ErrNotGuestOwner,
		rsvp.ErrCheckInDenied,
		rsvp.ErrRemoveDenied,
		rsvp.ErrManageDenied,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "forbidden"
}

func validationMessage(err error) string {
	for _, known := range []error{models.ErrGuestNameRequired, models.ErrInvalidCapacity} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	// drop the op prefix, keep the detail after "invalid input"
	msg := err.Error()
	if i := strings.Index(msg, rsvp.ErrInvalidInput.Error()); i >= 0 {
		return msg[i:]
	}

	return rsvp.ErrInvalidInput.Error()
}

// EventID reads the {id} route parameter.
func EventID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (string, bool) {
	return RequiredParam(w, r, log, "id", "event id is required")
}

// RequiredParam reads a route parameter, writing a 400 when it is empty.
func RequiredParam(w http.ResponseWriter, r *http.Request, log *slog.Logger, name, msg string) (string, bool) {
	v := chi.URLParam(r, name)
	if v == "" {
		log.Error(msg)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(msg))
		return "", false
	}

	return v, true
}

// Actor returns the authenticated caller, writing a 401 when there is none.
func Actor(w http.ResponseWriter, r *http.Request, log *slog.Logger) (models.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok || actor.UserID == "" {
		log.Error("request is not authenticated")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.ErrorWithCode(response.CodeUnauthorized, "authentication required"))
		return models.Actor{}, false
	}

	return actor, true
}

// PageParams parses ?page=&limit= with defaults 1 and rsvp.DefaultPageLimit.
func PageParams(w http.ResponseWriter, r *http.Request, log *slog.Logger) (page, limit int, ok bool) {
	page, limit = 1, rsvp.DefaultPageLimit

	q := r.URL.Query()

	if s := q.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			log.Error("invalid page", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, "invalid page"))
			return 0, 0, false
		}
		page = v
	}

	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			log.Error("invalid limit", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ErrorWithCode(response.CodeValidation, "invalid limit"))
			return 0, 0, false
		}
		limit = v
	}

	return page, limit, true
}
