package markAttendance

import (
	"chapterEvents/internal/http-server/handlers/event/markAttendance/mocks"
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

func TestMarkAttendanceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	admin := models.Actor{UserID: "a1", Role: models.RoleAdmin, ChapterID: "c1"}
	member := models.Actor{UserID: "u9", Role: models.RoleMember, ChapterID: "c1"}

	attendee := rsvp.Profile{UserID: "u1", Name: "Asha", Phone: "555", ChapterName: "North"}

	testCases := []struct {
		name           string
		actor          models.Actor
		mockSetup      func(m *mocks.AttendanceMarker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			actor: admin,
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttended", mock.Anything, "e1", admin, "u1").Return(attendee, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","attendee":{"user_id":"u1","name":"Asha","phone":"555","chapter_name":"North"}}`,
		},
		{
			name:  "Member cannot check in",
			actor: member,
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttended", mock.Anything, "e1", member, "u1").Return(rsvp.Profile{}, fmt.Errorf("op: %w", rsvp.ErrCheckInDenied))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   fmt.Sprintf(`{"status":"Error","error":%q,"code":"FORBIDDEN"}`, rsvp.ErrCheckInDenied.Error()),
		},
		{
			name:  "Unknown user",
			actor: admin,
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttended", mock.Anything, "e1", admin, "u1").Return(rsvp.Profile{}, fmt.Errorf("op: %w", storage.ErrUserNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found","code":"USER_NOT_FOUND"}`,
		},
		{
			name:  "Already attended",
			actor: admin,
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttended", mock.Anything, "e1", admin, "u1").Return(rsvp.Profile{}, fmt.Errorf("op: %w", models.ErrAlreadyAttended))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   fmt.Sprintf(`{"status":"Error","error":%q,"code":"ALREADY_ATTENDED"}`, models.ErrAlreadyAttended.Error()),
		},
		{
			name:  "Internal server error",
			actor: admin,
			mockSetup: func(m *mocks.AttendanceMarker) {
				m.On("MarkAttended", mock.Anything, "e1", admin, "u1").Return(rsvp.Profile{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to mark attendance","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			marker := mocks.NewAttendanceMarker(t)
			tc.mockSetup(marker)

			router := chi.NewRouter()
			router.Post("/events/{id}/attendance/{userId}", New(logger, marker))

			req, err := http.NewRequest(http.MethodPost, "/events/e1/attendance/u1", nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithActor(req.Context(), tc.actor))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
