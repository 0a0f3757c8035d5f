package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	bookingRepo "github.com/MarkDidenkoHT/mesto-sili-booking/internal/infra/storage/booking"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/ptr"
	"github.com/MarkDidenkoHT/mesto-sili-booking/pkg/types"
)

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	stored   *domain.Booking
	existing []*domain.Booking

	listCalls int
	lastSlot  domain.SlotQuery
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.stored == nil || r.stored.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *fakeRepo) ListConfirmedForSlot(_ context.Context, q domain.SlotQuery) ([]*domain.Booking, error) {
	r.listCalls++
	r.lastSlot = q
	return r.existing, nil
}

func (r *fakeRepo) Update(_ context.Context, id int64, update domain.BookingUpdate) error {
	if r.stored == nil || r.stored.ID != id {
		return bookingRepo.ErrBookingNotFound
	}
	merged := update.Apply(r.stored)
	merged.UpdatedAt = testNow
	r.stored = &merged
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func storedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           5,
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

func newTestUseCase(repo *fakeRepo) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_MetadataOnlyEditSkipsConflictCheck(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:   5,
		Name: ptr.Ptr("Мария Иванова"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Мария Иванова", resp.Name)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, 0, repo.listCalls)
}

func TestExecute_SlotEditExcludesSelf(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:        5,
		StartTime: ptr.Ptr(types.TimeString("11:00")),
		EndTime:   ptr.Ptr(types.TimeString("15:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
	assert.Equal(t, 1, repo.listCalls)
	require.NotNil(t, repo.lastSlot.ExcludeID)
	assert.Equal(t, int64(5), *repo.lastSlot.ExcludeID)
}

func TestExecute_SlotEditConflict(t *testing.T) {
	repo := &fakeRepo{
		stored: storedBooking(),
		existing: []*domain.Booking{
			{
				ID:           9,
				StartTime:    "16:00",
				EndTime:      "20:00",
				ResourceType: domain.ResourceSauna,
				Confirmed:    true,
			},
		},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:        5,
		StartTime: ptr.Ptr(types.TimeString("11:00")),
		EndTime:   ptr.Ptr(types.TimeString("15:00")),
	})
	assert.ErrorIs(t, err, domain.ErrTimeConflict)

	// Бронь не изменилась
	assert.Equal(t, types.TimeString("10:00"), repo.stored.StartTime)
}

func TestExecute_ConfirmingTriggersConflictCheck(t *testing.T) {
	booking := storedBooking()
	booking.Confirmed = false
	repo := &fakeRepo{stored: booking}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:        5,
		Confirmed: ptr.Ptr(true),
	})
	require.NoError(t, err)

	assert.True(t, resp.Confirmed)
	assert.Equal(t, 1, repo.listCalls)
}

func TestExecute_ValidationErrorOnMergedBooking(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:    5,
		Email: ptr.Ptr("not-an-email"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:   404,
		Name: ptr.Ptr("Мария"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_EmptyUpdate(t *testing.T) {
	repo := &fakeRepo{stored: storedBooking()}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{ID: 5})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}
