package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	createBooking "github.com/MarkDidenkoHT/mesto-sili-booking/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err     error
	lastReq *createBooking.Request
}

func (uc *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	uc.lastReq = req
	if uc.err != nil {
		return nil, uc.err
	}
	return &createBooking.Response{
		ID:           42,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		BookingDate:  req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ResourceType: req.ResourceType,
		Language:     req.Language,
		Message:      req.Message,
		Confirmed:    req.Confirmed,
		CreatedAt:    time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

const validBody = `{
	"name": "Иван Петров",
	"email": "ivan@example.com",
	"phone": "+37360123456",
	"bookingDate": "2025-10-15",
	"startTime": "10:00",
	"endTime": "14:00",
	"resourceType": "sauna",
	"language": "ru"
}`

func doRequest(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(NewHandler(uc, nopLogger{}), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "sauna", resp.ResourceType)
	assert.False(t, resp.Confirmed)
}

func TestHandle_InvalidJSON(t *testing.T) {
	rec := doRequest(NewHandler(&fakeUseCase{}, nopLogger{}), "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing_fields"}`, rec.Body.String())
}

func TestHandle_UnparsableDate(t *testing.T) {
	body := strings.Replace(validBody, "2025-10-15", "15.10.2025", 1)
	rec := doRequest(NewHandler(&fakeUseCase{}, nopLogger{}), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing_fields","field":"bookingDate"}`, rec.Body.String())
}

func TestHandle_ValidationErrorCode(t *testing.T) {
	uc := &fakeUseCase{err: domain.ErrMinDurationSauna}
	rec := doRequest(NewHandler(uc, nopLogger{}), validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"min_duration_sauna","field":"endTime"}`, rec.Body.String())
}

func TestHandle_TimeConflict(t *testing.T) {
	uc := &fakeUseCase{err: domain.ErrTimeConflict}
	rec := doRequest(NewHandler(uc, nopLogger{}), validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"time_conflict"}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}
	rec := doRequest(NewHandler(uc, nopLogger{}), validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"booking_failed"}`, rec.Body.String())
}

func TestHandle_ConfirmedIgnoredOnPublicRoute(t *testing.T) {
	uc := &fakeUseCase{}
	body := strings.Replace(validBody, `"language": "ru"`, `"language": "ru", "confirmed": true`, 1)

	rec := doRequest(NewHandler(uc, nopLogger{}), body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.False(t, uc.lastReq.Confirmed)
}

func TestHandle_ConfirmedHonoredOnAdminRoute(t *testing.T) {
	uc := &fakeUseCase{}
	body := strings.Replace(validBody, `"language": "ru"`, `"language": "ru", "confirmed": true`, 1)

	rec := doRequest(NewAdminHandler(uc, nopLogger{}), body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, uc.lastReq.Confirmed)
}
