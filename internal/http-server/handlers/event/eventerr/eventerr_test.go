package eventerr

import (
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/api/response"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"chapterEvents/internal/storage"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return fmt.Errorf("services.rsvp.Op: %w", err) }

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"event not found", wrap(storage.ErrEventNotFound), http.StatusNotFound, response.CodeEventNotFound, "event not found"},
		{"guest not found", wrap(models.ErrGuestNotFound), http.StatusNotFound, response.CodeGuestNotFound, "guest not found"},
		{"user not found", wrap(storage.ErrUserNotFound), http.StatusNotFound, response.CodeUserNotFound, "user not found"},
		{"not eligible", wrap(models.ErrNotEligible), http.StatusForbidden, response.CodeForbidden, models.ErrNotEligible.Error()},
		{"check-in denied", wrap(rsvp.ErrCheckInDenied), http.StatusForbidden, response.CodeForbidden, rsvp.ErrCheckInDenied.Error()},
		{"already registered", wrap(models.ErrAlreadyRegistered), http.StatusConflict, response.CodeAlreadyRegistered, models.ErrAlreadyRegistered.Error()},
		{"already attended", wrap(models.ErrAlreadyAttended), http.StatusConflict, response.CodeAlreadyAttended, models.ErrAlreadyAttended.Error()},
		{"capacity", wrap(models.ErrCapacityExceeded), http.StatusConflict, response.CodeCapacityExceeded, models.ErrCapacityExceeded.Error()},
		{"duplicate event", wrap(storage.ErrEventExists), http.StatusConflict, response.CodeEventExists, "an event with this name already exists"},
		{"guest name", wrap(models.ErrGuestNameRequired), http.StatusBadRequest, response.CodeValidation, models.ErrGuestNameRequired.Error()},
		{"invalid input detail", fmt.Errorf("services.rsvp.CreateEvent: %w: name is required", rsvp.ErrInvalidInput), http.StatusBadRequest, response.CodeValidation, "invalid input: name is required"},
		{"transient", errors.New("connection reset"), http.StatusInternalServerError, response.CodeInternal, "failed"},
		{"retries exhausted", wrap(rsvp.ErrRetriesExhausted), http.StatusInternalServerError, response.CodeInternal, "failed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := Classify(tc.err, "failed")

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, response.StatusError, resp.Status)
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.Equal(t, tc.wantMsg, resp.Error)
		})
	}
}

func TestPageParams(t *testing.T) {
	t.Parallel()

	log := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name      string
		query     string
		wantOK    bool
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantOK: true, wantPage: 1, wantLimit: rsvp.DefaultPageLimit},
		{name: "explicit", query: "?page=3&limit=25", wantOK: true, wantPage: 3, wantLimit: 25},
		{name: "bad page", query: "?page=x", wantOK: false},
		{name: "bad limit", query: "?limit=ten", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/events/e1/registrations"+tc.query, nil)
			rr := httptest.NewRecorder()

			page, limit, ok := PageParams(rr, req, log)

			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantPage, page)
				assert.Equal(t, tc.wantLimit, limit)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), response.CodeValidation)
		})
	}
}

func TestActor(t *testing.T) {
	t.Parallel()

	log := slogdiscard.NewDiscardLogger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	_, ok := Actor(rr, req, log)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"authentication required","code":"UNAUTHORIZED"}`, rr.Body.String())

	want := models.Actor{UserID: "u1", Role: models.RoleMember, ChapterID: "c1"}
	req = req.WithContext(auth.WithActor(req.Context(), want))

	got, ok := Actor(httptest.NewRecorder(), req, log)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
