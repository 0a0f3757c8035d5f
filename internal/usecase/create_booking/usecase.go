package create_booking

import (
	"context"
	"fmt"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
)

// UseCase use case создания бронирования: единые проверки для публичной
// заявки и административного добавления
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     BookingNotifier // nil, если уведомления выключены
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier BookingNotifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет создание бронирования.
// Проверка конфликтов и вставка выполняются в одной сериализуемой
// транзакции: выборка существующих броней блокируется FOR UPDATE, поэтому
// две конкурентные заявки на пересекающиеся слоты не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: resource=%s, date=%s, time=%s-%s",
		req.ResourceType, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	booking := req.toDomain()
	booking.Normalize()

	// Проверки 1-8: поля, контакты, ресурс, время, длительность, дата
	if err := booking.Validate(uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// Проверка 9 (конфликты) и вставка в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.ListConfirmedForSlot(txCtx, domain.SlotQuery{
			ResourceType: booking.ResourceType,
			Date:         booking.BookingDate,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list confirmed bookings: %v", err)
			return fmt.Errorf("%w: failed to list confirmed bookings: %v", ErrInternal, err)
		}

		if conflict := domain.FindConflict(booking, existing); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts with booking id=%d (%s-%s)",
				booking.StartTime, booking.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return domain.ErrTimeConflict
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Уведомление отправляется после фиксации транзакции и не влияет
	// на результат: ошибка только логируется
	if uc.notifier != nil {
		snapshot := *result
		go func() {
			if err := uc.notifier.NotifyBookingCreated(&snapshot); err != nil {
				uc.logger.Error("CreateBooking: notification failed for booking id=%d: %v", snapshot.ID, err)
			}
		}()
	}

	return fromDomain(result), nil
}
