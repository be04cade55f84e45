package editGuest

import (
	"bytes"
	"chapterEvents/internal/http-server/handlers/event/editGuest/mocks"
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/models"
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

func TestEditGuestHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	owner := models.Actor{UserID: "u1", Role: models.RoleMember, ChapterID: "c1"}

	// only the fields present in the body are set on the patch
	contactOnly := mock.MatchedBy(func(p models.GuestPatch) bool {
		return p.Name == nil && p.Category == nil && p.Contact != nil && *p.Contact == "555-0199"
	})

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.GuestEditor)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Partial update",
			requestBody: `{"contact":"555-0199"}`,
			mockSetup: func(m *mocks.GuestEditor) {
				m.On("EditGuest", mock.Anything, "e1", owner, "g1", contactOnly).
					Return(models.Guest{ID: "g1", Name: "Dana", Contact: "555-0199", AddedBy: "u1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","guest":{"id":"g1","name":"Dana","contact":"555-0199","added_by":"u1",` +
				`"created_at":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.GuestEditor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Not the owner",
			requestBody: `{"contact":"555-0199"}`,
			mockSetup: func(m *mocks.GuestEditor) {
				m.On("EditGuest", mock.Anything, "e1", owner, "g1", contactOnly).
					Return(models.Guest{}, fmt.Errorf("op: %w", models.ErrNotGuestOwner))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   fmt.Sprintf(`{"status":"Error","error":%q,"code":"FORBIDDEN"}`, models.ErrNotGuestOwner.Error()),
		},
		{
			name:        "Guest not found",
			requestBody: `{"contact":"555-0199"}`,
			mockSetup: func(m *mocks.GuestEditor) {
				m.On("EditGuest", mock.Anything, "e1", owner, "g1", contactOnly).
					Return(models.Guest{}, fmt.Errorf("op: %w", models.ErrGuestNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"guest not found","code":"GUEST_NOT_FOUND"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"contact":"555-0199"}`,
			mockSetup: func(m *mocks.GuestEditor) {
				m.On("EditGuest", mock.Anything, "e1", owner, "g1", contactOnly).
					Return(models.Guest{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to edit guest","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			editor := mocks.NewGuestEditor(t)
			tc.mockSetup(editor)

			router := chi.NewRouter()
			router.Put("/events/{id}/guests/{guestId}", New(logger, editor))

			req, err := http.NewRequest(http.MethodPut, "/events/e1/guests/g1", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(auth.WithActor(req.Context(), owner))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
