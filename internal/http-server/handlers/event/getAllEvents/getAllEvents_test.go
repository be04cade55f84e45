package getAllEvents

import (
	"chapterEvents/internal/http-server/handlers/event/getAllEvents/mocks"
	"chapterEvents/internal/http-server/middleware/auth"
	"chapterEvents/internal/lib/logger/handlers/slogdiscard"
	"chapterEvents/internal/models"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	member := models.Actor{UserID: "u1", Role: models.RoleMember, ChapterID: "c1"}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		expectedIDs    []string
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, member).Return([]models.Event{
					{ID: "e1", Name: "One", AllUsers: true},
					{ID: "e2", Name: "Two", ChapterIDs: []string{"c1"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"e1", "e2"},
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, member).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{},
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, member).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events","code":"INTERNAL"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventsGetter(t)
			tc.mockSetup(getter)

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			req = req.WithContext(auth.WithActor(req.Context(), member))
			rr := httptest.NewRecorder()

			New(logger, getter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var resp EventsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)

			ids := make([]string, 0, len(resp.Events))
			for _, e := range resp.Events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestEmptyListIsArray(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, nil)

	assert.JSONEq(t, `{"status":"OK","events":[]}`, rr.Body.String())
}
