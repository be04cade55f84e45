package attendanceSummary

import (
	"chapterEvents/internal/http-server/handlers/event/attendanceSummary/mocks"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
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

func TestAttendanceSummaryHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	summary := rsvp.AttendanceSummary{
		RegisteredUsers: []rsvp.Profile{{UserID: "u1", Name: "Asha", Phone: "1", ChapterName: "North"}},
		AttendedUsers: []rsvp.Profile{
			{UserID: "u1", Name: "Asha", Phone: "1", ChapterName: "North"},
			{UserID: "u3", Name: "Cy", Phone: "3", ChapterName: "East"},
		},
		WalkInCount: 1,
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.SummaryGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.SummaryGetter) {
				m.On("AttendanceSummary", mock.Anything, "e1").Return(summary, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK",
				"registered_users":[{"user_id":"u1","name":"Asha","phone":"1","chapter_name":"North"}],
				"attended_users":[
					{"user_id":"u1","name":"Asha","phone":"1","chapter_name":"North"},
					{"user_id":"u3","name":"Cy","phone":"3","chapter_name":"East"}
				],
				"walk_in_count":1}`,
		},
		{
			name: "Event not found",
			mockSetup: func(m *mocks.SummaryGetter) {
				m.On("AttendanceSummary", mock.Anything, "e1").Return(rsvp.AttendanceSummary{}, fmt.Errorf("op: %w", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found","code":"EVENT_NOT_FOUND"}`,
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.SummaryGetter) {
				m.On("AttendanceSummary", mock.Anything, "e1").Return(rsvp.AttendanceSummary{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get attendance summary","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewSummaryGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/events/{id}/attendance/summary", New(logger, getter))

			req, err := http.NewRequest(http.MethodGet, "/events/e1/attendance/summary", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
