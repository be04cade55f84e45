package adminEvents

import (
	"chapterEvents/internal/http-server/handlers/event/adminEvents/mocks"
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = models.Actor{UserID: "a1", Role: models.RoleSuperAdmin}

func TestAdminEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.AdminEventsPager)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Filtered page",
			url:  "/admin/events?page=2&limit=5&status=upcoming&search=gala",
			mockSetup: func(m *mocks.AdminEventsPager) {
				q := rsvp.AdminEventsQuery{Page: 2, Limit: 5, Status: models.StatusUpcoming, Search: "gala"}
				m.On("AdminEventsPage", mock.Anything, admin, q).Return(rsvp.Page[rsvp.AdminEventRow]{
					Items: []rsvp.AdminEventRow{{Event: models.Event{ID: "e1", Name: "Spring Gala"}, RSVPCount: 2}},
					Total: 6,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid limit",
			url:            "/admin/events?limit=ten",
			mockSetup:      func(m *mocks.AdminEventsPager) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid limit","code":"VALIDATION_ERROR"}`,
		},
		{
			name: "Unknown status",
			url:  "/admin/events?status=archived",
			mockSetup: func(m *mocks.AdminEventsPager) {
				q := rsvp.AdminEventsQuery{Page: 1, Limit: rsvp.DefaultPageLimit, Status: "archived"}
				m.On("AdminEventsPage", mock.Anything, admin, q).
					Return(rsvp.Page[rsvp.AdminEventRow]{}, fmt.Errorf("op: %w: unknown status \"archived\"", rsvp.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid input: unknown status \"archived\"","code":"VALIDATION_ERROR"}`,
		},
		{
			name: "Not elevated",
			url:  "/admin/events",
			mockSetup: func(m *mocks.AdminEventsPager) {
				q := rsvp.AdminEventsQuery{Page: 1, Limit: rsvp.DefaultPageLimit}
				m.On("AdminEventsPage", mock.Anything, admin, q).
					Return(rsvp.Page[rsvp.AdminEventRow]{}, fmt.Errorf("op: %w", rsvp.ErrManageDenied))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"not authorized to manage events","code":"FORBIDDEN"}`,
		},
		{
			name: "Internal error",
			url:  "/admin/events",
			mockSetup: func(m *mocks.AdminEventsPager) {
				m.On("AdminEventsPage", mock.Anything, admin, mock.Anything).
					Return(rsvp.Page[rsvp.AdminEventRow]{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to list events","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pager := mocks.NewAdminEventsPager(t)
			tc.mockSetup(pager)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			req = req.WithContext(auth.WithActor(req.Context(), admin))
			rr := httptest.NewRecorder()

			New(logger, pager).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
				return
			}

			var resp PageResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, 6, resp.Total)
			assert.Equal(t, 2, resp.Page)
			assert.Equal(t, 5, resp.Limit)
			require.Len(t, resp.Items, 1)
			assert.Equal(t, "e1", resp.Items[0].ID)
			assert.Equal(t, 2, resp.Items[0].RSVPCount)
		})
	}
}
