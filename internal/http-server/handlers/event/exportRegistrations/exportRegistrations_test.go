package exportRegistrations

import (
	"chapterEvents/internal/http-server/handlers/event/exportRegistrations/mocks"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/services/rsvp"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportRegistrationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	total, balance := 5, 3
	headers := []rsvp.Column{
		{Header: "Name", Key: "name"},
		{Header: "Phone", Key: "phone"},
	}
	rows := []rsvp.RegistrationRow{
		{Profile: rsvp.Profile{UserID: "u2", Name: "Ben", Phone: "2", ChapterName: "alpha"}, RegisteredDate: "unknown", Legacy: true},
		{Profile: rsvp.Profile{UserID: "u1", Name: "Asha", Phone: "1", ChapterName: "Beta"}, RegisteredDate: "2025-02-01T10:00:00Z"},
	}

	testCases := []struct {
		name           string
		query          string
		chapterID      string
		result         rsvp.RegistrationExport
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Limited event",
			chapterID: "",
			result: rsvp.RegistrationExport{
				Headers: headers, Body: rows, TotalSeats: &total, RegisteredCount: 2, BalanceSeats: &balance,
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK",
				"headers":[{"header":"Name","key":"name"},{"header":"Phone","key":"phone"}],
				"body":[
					{"user_id":"u2","name":"Ben","phone":"2","chapter_name":"alpha","registered_date":"unknown","legacy":true},
					{"user_id":"u1","name":"Asha","phone":"1","chapter_name":"Beta","registered_date":"2025-02-01T10:00:00Z","legacy":false}
				],
				"total_seats":5,"registered_count":2,"balance_seats":3}`,
		},
		{
			name:      "Unlimited event filtered by chapter",
			query:     "?chapterId=c9",
			chapterID: "c9",
			result: rsvp.RegistrationExport{
				Headers: headers, Body: []rsvp.RegistrationRow{}, RegisteredCount: 0,
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK",
				"headers":[{"header":"Name","key":"name"},{"header":"Phone","key":"phone"}],
				"body":[],"total_seats":null,"registered_count":0,"balance_seats":null}`,
		},
		{
			name:           "Internal server error",
			err:            errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to export registrations","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			exporter := mocks.NewRegistrationsExporter(t)
			exporter.On("ExportRegistrations", mock.Anything, "e1", tc.chapterID).Return(tc.result, tc.err)

			router := chi.NewRouter()
			router.Get("/events/{id}/registrations/export", New(logger, exporter))

			req, err := http.NewRequest(http.MethodGet, "/events/e1/registrations/export"+tc.query, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
