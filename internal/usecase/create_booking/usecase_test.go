package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
)

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	existing  []*domain.Booking
	listErr   error
	createErr error

	created  *domain.Booking
	lastSlot domain.SlotQuery
}

func (r *fakeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	r.created = &created
	return &created, nil
}

func (r *fakeRepo) ListConfirmedForSlot(_ context.Context, q domain.SlotQuery) ([]*domain.Booking, error) {
	r.lastSlot = q
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.existing, nil
}

type fakeTxManager struct{ calls int }

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeNotifier struct{ notified chan *domain.Booking }

func (n *fakeNotifier) NotifyBookingCreated(b *domain.Booking) error {
	n.notified <- b
	return nil
}

type failingNotifier struct{ called chan struct{} }

func (n *failingNotifier) NotifyBookingCreated(*domain.Booking) error {
	close(n.called)
	return errors.New("telegram is down")
}

func validRequest() *Request {
	return &Request{
		Name:         "Иван Петров",
		Email:        "ivan@example.com",
		Phone:        "+37360123456",
		Date:         time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "14:00",
		ResourceType: domain.ResourceSauna,
		Language:     "ru",
	}
}

func newTestUseCase(repo *fakeRepo, tx *fakeTxManager, notifier BookingNotifier) *UseCase {
	uc := NewUseCase(repo, tx, notifier, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTxManager{}
	notifier := &fakeNotifier{notified: make(chan *domain.Booking, 1)}
	uc := newTestUseCase(repo, tx, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.False(t, resp.Confirmed)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, domain.ResourceSauna, repo.lastSlot.ResourceType)
	assert.Nil(t, repo.lastSlot.ExcludeID)

	select {
	case b := <-notifier.notified:
		assert.Equal(t, int64(42), b.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestExecute_ValidationError(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx, nil)

	req := validRequest()
	req.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	// Валидация падает до обращения к хранилищу
	assert.Equal(t, 0, tx.calls)
}

func TestExecute_TimeConflict(t *testing.T) {
	repo := &fakeRepo{
		existing: []*domain.Booking{
			{
				ID:           7,
				StartTime:    "14:00",
				EndTime:      "18:00",
				ResourceType: domain.ResourceSauna,
				Confirmed:    true,
			},
		},
	}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx, nil)

	req := validRequest()
	req.StartTime = "19:00"
	req.EndTime = "23:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrTimeConflict)
	assert.Nil(t, repo.created)
}

func TestExecute_CreateError(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection refused")}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTxManager{}
	notifier := &failingNotifier{called: make(chan struct{})}
	uc := newTestUseCase(repo, tx, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	select {
	case <-notifier.called:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestExecute_AdminConfirmedFlag(t *testing.T) {
	repo := &fakeRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx, nil)

	req := validRequest()
	req.Confirmed = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Confirmed)
}
