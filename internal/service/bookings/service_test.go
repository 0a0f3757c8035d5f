package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	bookingRepo "github.com/MarkDidenkoHT/mesto-sili-booking/internal/infra/storage/booking"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/bookings/models"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	bookings []*domain.Booking

	lastFilter domain.BookingsFilter
	lastSlot   domain.SlotQuery
	deletedID  int64
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return r.bookings, nil
}

func (r *fakeRepo) ListConfirmedForSlot(_ context.Context, q domain.SlotQuery) ([]*domain.Booking, error) {
	r.lastSlot = q
	return r.bookings, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	for _, b := range r.bookings {
		if b.ID == id {
			r.deletedID = id
			return nil
		}
	}
	return bookingRepo.ErrBookingNotFound
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		Name:         "Иван Петров",
		Email:        "ivan@example.com",
		Phone:        "+37360123456",
		BookingDate:  time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "14:00",
		ResourceType: domain.ResourceSauna,
		Language:     "ru",
		Confirmed:    true,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-15", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Year:      ptr.Ptr(2025),
		Month:     ptr.Ptr(10),
		Confirmed: ptr.Ptr(true),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	require.NotNil(t, repo.lastFilter.Year)
	assert.Equal(t, 2025, *repo.lastFilter.Year)
	require.NotNil(t, repo.lastFilter.Month)
	assert.Equal(t, time.October, *repo.lastFilter.Month)
	require.NotNil(t, repo.lastFilter.Confirmed)
	assert.True(t, *repo.lastFilter.Confirmed)
}

func TestList_InvalidMonth(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Month: ptr.Ptr(13),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBusySlots(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.BusySlots(context.Background(), &models.BusySlotsRequest{
		ResourceType: "sauna",
		Date:         time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	// Публичная выдача не содержит персональных данных, только время
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, "14:00", resp.Slots[0].EndTime)
	assert.Equal(t, domain.ResourceSauna, repo.lastSlot.ResourceType)
}

func TestBusySlots_InvalidResource(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.BusySlots(context.Background(), &models.BusySlotsRequest{
		ResourceType: "pool",
		Date:         time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{sampleBooking()}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, int64(1), repo.deletedID)

	assert.ErrorIs(t, svc.Delete(context.Background(), 404), ErrBookingNotFound)
}
