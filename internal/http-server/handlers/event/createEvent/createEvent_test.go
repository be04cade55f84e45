package createEvent

import (
	"bytes"
	"chapterEvents/internal/http-server/handlers/event/createEvent/mocks"
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"chapterEvents/internal/storage"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = models.Actor{UserID: "a1", Role: models.RoleAdmin, ChapterID: "c1"}

const validBody = `{
	"name": "Quarterly Meetup",
	"kind": "Offline",
	"venue": "Hall A",
	"starts_at": "2025-03-01T18:00:00Z",
	"ends_at": "2025-03-01T21:00:00Z",
	"capacity": 0,
	"chapter_ids": ["c1", "c2"],
	"allow_guest_registration": true
}`

func validInput() rsvp.EventInput {
	return rsvp.EventInput{
		Name:                   "Quarterly Meetup",
		Kind:                   models.EventOffline,
		Venue:                  "Hall A",
		StartsAt:               time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC),
		EndsAt:                 time.Date(2025, 3, 1, 21, 0, 0, 0, time.UTC),
		Capacity:               0,
		ChapterIDs:             []string{"c1", "c2"},
		AllowGuestRegistration: true,
	}
}

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success with zero seats",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, admin, validInput()).Return(&models.Event{ID: "ev-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":"ev-1"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing capacity",
			requestBody:    `{"name":"X","kind":"Online","starts_at":"2025-03-01T18:00:00Z","ends_at":"2025-03-01T19:00:00Z"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Capacity is a required field","code":"VALIDATION_ERROR"}`,
		},
		{
			name:           "Capacity below unlimited sentinel",
			requestBody:    `{"name":"X","kind":"Online","starts_at":"2025-03-01T18:00:00Z","ends_at":"2025-03-01T19:00:00Z","capacity":-2}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Capacity is out of range","code":"VALIDATION_ERROR"}`,
		},
		{
			name:           "Unknown kind",
			requestBody:    `{"name":"X","kind":"Hybrid","starts_at":"2025-03-01T18:00:00Z","ends_at":"2025-03-01T19:00:00Z","capacity":-1}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Kind must be one of")
			},
		},
		{
			name:           "Missing name and dates",
			requestBody:    `{"kind":"Online","capacity":10}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				for _, field := range []string{"Name", "StartsAt", "EndsAt"} {
					assert.Contains(t, body, field)
				}
			},
		},
		{
			name:        "Duplicate name",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, admin, validInput()).Return(nil, fmt.Errorf("op: %w", storage.ErrEventExists))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"an event with this name already exists","code":"EVENT_EXISTS"}`,
		},
		{
			name:        "Service validation",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, admin, validInput()).
					Return(nil, fmt.Errorf("services.rsvp.CreateEvent: %w: event ends before it starts", rsvp.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid input: event ends before it starts","code":"VALIDATION_ERROR"}`,
		},
		{
			name:        "Internal error",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, admin, validInput()).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(auth.WithActor(req.Context(), admin))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestMemberIsForbidden(t *testing.T) {
	t.Parallel()

	member := models.Actor{UserID: "u1", Role: models.RoleMember, ChapterID: "c1"}

	mockCreator := mocks.NewEventCreator(t)
	mockCreator.On("CreateEvent", mock.Anything, member, validInput()).Return(nil, fmt.Errorf("op: %w", rsvp.ErrManageDenied))

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(validBody))
	req = req.WithContext(auth.WithActor(req.Context(), member))
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), mockCreator).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"FORBIDDEN"`)
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, "ev-456")

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, "ev-456", actualResponse.EventId)
}
