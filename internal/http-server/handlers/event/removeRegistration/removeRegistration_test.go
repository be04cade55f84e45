package removeRegistration

import (
	"chapterEvents/internal/http-server/handlers/event/removeRegistration/mocks"
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/models"
	"chapterEvents/internal/services/rsvp"
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

func TestRemoveRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	self := models.Actor{UserID: "u1", Role: models.RoleMember, ChapterID: "c1"}
	other := models.Actor{UserID: "u2", Role: models.RoleMember, ChapterID: "c1"}

	testCases := []struct {
		name           string
		actor          models.Actor
		mockSetup      func(m *mocks.RegistrationRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Self removal",
			actor: self,
			mockSetup: func(m *mocks.RegistrationRemover) {
				m.On("RemoveRegistration", mock.Anything, "e1", self, "u1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:  "Other member denied",
			actor: other,
			mockSetup: func(m *mocks.RegistrationRemover) {
				m.On("RemoveRegistration", mock.Anything, "e1", other, "u1").Return(fmt.Errorf("op: %w", rsvp.ErrRemoveDenied))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   fmt.Sprintf(`{"status":"Error","error":%q,"code":"FORBIDDEN"}`, rsvp.ErrRemoveDenied.Error()),
		},
		{
			name:  "Internal server error",
			actor: self,
			mockSetup: func(m *mocks.RegistrationRemover) {
				m.On("RemoveRegistration", mock.Anything, "e1", self, "u1").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to remove registration","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			remover := mocks.NewRegistrationRemover(t)
			tc.mockSetup(remover)

			router := chi.NewRouter()
			router.Delete("/events/{id}/register/{userId}", New(logger, remover))

			req, err := http.NewRequest(http.MethodDelete, "/events/e1/register/u1", nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithActor(req.Context(), tc.actor))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
