package book_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DORM-ReservationService/internal/api/middleware"
	bookSlots "github.com/m04kA/DORM-ReservationService/internal/usecase/book_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *bookSlots.Response
	err  error

	gotReq *bookSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookSlots.Request) (*bookSlots.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func newTestRouter(uc BookSlotsUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)
	api.HandleFunc("/{category}/{resourceId}/book", handler.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Created(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &bookSlots.Response{
		Outcome:    bookSlots.OutcomeCreated,
		ResourceID: 7,
		UserID:     42,
		BookedAt:   start.Add(-time.Minute),
		Slots: []bookSlots.BookedSlot{
			{ID: 1, StartTime: start, EndTime: start.Add(30 * time.Minute)},
		},
	}}

	rec := doRequest(t, newTestRouter(uc),
		"/api/v1/treadmills/7/book",
		`{"startTime":"2026-03-01T10:00:00Z"}`,
		"42")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"created"`)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(42), uc.gotReq.UserID)
	assert.Equal(t, int64(7), uc.gotReq.ResourceID)
	assert.True(t, start.Equal(uc.gotReq.StartTime))
}

func TestHandler_Handle_ClaimedReturnsOK(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &bookSlots.Response{
		Outcome: bookSlots.OutcomeClaimed,
		Slots: []bookSlots.BookedSlot{
			{ID: 1, StartTime: start, EndTime: start.Add(30 * time.Minute)},
		},
	}}

	rec := doRequest(t, newTestRouter(uc),
		"/api/v1/treadmills/7/book",
		`{"startTime":"2026-03-01T10:00:00Z"}`,
		"42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"claimed"`)
}

// Отказ по квоте сообщает пользователю, сколько действий уже сделано
func TestHandler_Handle_QuotaExceededIncludesCount(t *testing.T) {
	uc := &fakeUseCase{err: &bookSlots.QuotaExceededError{Count: 2}}

	rec := doRequest(t, newTestRouter(uc),
		"/api/v1/treadmills/7/book",
		`{"startTime":"2026-03-01T10:00:00Z"}`,
		"42")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "2 бронирований")
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"quota exceeded", bookSlots.ErrQuotaExceeded, http.StatusBadRequest},
		{"invalid input", bookSlots.ErrInvalidInput, http.StatusBadRequest},
		{"resource unavailable", bookSlots.ErrResourceUnavailable, http.StatusBadRequest},
		{"resource not found", bookSlots.ErrResourceNotFound, http.StatusNotFound},
		{"slot held by self", bookSlots.ErrSlotHeldBySelf, http.StatusConflict},
		{"slot held by other", bookSlots.ErrSlotHeldByOther, http.StatusConflict},
		{"storage conflict", bookSlots.ErrStorageConflict, http.StatusConflict},
		{"internal error", bookSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newTestRouter(&fakeUseCase{err: tt.err}),
				"/api/v1/treadmills/7/book",
				`{"startTime":"2026-03-01T10:00:00Z"}`,
				"42")

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		userID         string
		expectedStatus int
	}{
		{
			name:           "missing user header",
			path:           "/api/v1/treadmills/7/book",
			body:           `{"startTime":"2026-03-01T10:00:00Z"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown category",
			path:           "/api/v1/saunas/7/book",
			body:           `{"startTime":"2026-03-01T10:00:00Z"}`,
			userID:         "42",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid resource id",
			path:           "/api/v1/treadmills/abc/book",
			body:           `{"startTime":"2026-03-01T10:00:00Z"}`,
			userID:         "42",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			path:           "/api/v1/treadmills/7/book",
			body:           `{not json`,
			userID:         "42",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid start time format",
			path:           "/api/v1/treadmills/7/book",
			body:           `{"startTime":"10:00"}`,
			userID:         "42",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newTestRouter(&fakeUseCase{}), tt.path, tt.body, tt.userID)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
