package deleteEvent

import (
	"chapterEvents/internal/http-server/handlers/event/deleteEvent/mocks"
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"chapterEvents/internal/storage"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	admin := models.Actor{UserID: "a1", Role: models.RoleAdmin}

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Event not found",
			err:            fmt.Errorf("op: %w", storage.ErrEventNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found","code":"EVENT_NOT_FOUND"}`,
		},
		{
			name:           "Not elevated",
			err:            fmt.Errorf("op: %w", rsvp.ErrManageDenied),
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"not authorized to manage events","code":"FORBIDDEN"}`,
		},
		{
			name:           "Internal error",
			err:            errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewEventDeleter(t)
			deleter.On("DeleteEvent", mock.Anything, admin, "e1").Return(tc.err)

			router := chi.NewRouter()
			router.Delete("/events/{id}", New(logger, deleter))

			req, err := http.NewRequest(http.MethodDelete, "/events/e1", nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithActor(req.Context(), admin))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
