package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/domain"
	bookingRepo "github.com/MarkDidenkoHT/mesto-sili-booking/internal/infra/storage/booking"
)

// UseCase use case административного редактирования брони.
// Повторная проверка времени и конфликтов выполняется только когда
// правка затрагивает слот (дату, время, ресурс) или подтверждает бронь;
// чисто контактные правки её не запускают
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет обновление бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: updating booking id=%d", req.ID)

	update := req.toDomainUpdate()
	if update.IsEmpty() {
		uc.logger.Warn("UpdateBooking: empty update for booking id=%d", req.ID)
		return nil, ErrNoFieldsToUpdate
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		touchesSlot := update.TouchesSlot(current)

		merged := update.Apply(current)
		merged.Normalize()

		// Контактные поля проверяются всегда (значения после усечения)
		if err := merged.ValidateContact(); err != nil {
			uc.logger.Warn("UpdateBooking: validation failed for booking id=%d: %v", req.ID, err)
			return err
		}

		// Слот перепроверяется, только если правка его затрагивает;
		// редактируемая бронь исключается из набора конфликтов по id
		if touchesSlot {
			if err := merged.ValidateSlot(uc.timeProvider.Now()); err != nil {
				uc.logger.Warn("UpdateBooking: slot validation failed for booking id=%d: %v", req.ID, err)
				return err
			}

			existing, err := uc.bookingRepo.ListConfirmedForSlot(txCtx, domain.SlotQuery{
				ResourceType: merged.ResourceType,
				Date:         merged.BookingDate,
				ExcludeID:    &req.ID,
			})
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to list confirmed bookings: %v", err)
				return fmt.Errorf("%w: failed to list confirmed bookings: %v", ErrInternal, err)
			}

			if conflict := domain.FindConflict(&merged, existing); conflict != nil {
				uc.logger.Warn("UpdateBooking: booking id=%d conflicts with booking id=%d", req.ID, conflict.ID)
				return domain.ErrTimeConflict
			}
		}

		// Сохраняются нормализованные значения затронутых полей
		normalized := normalizedUpdate(update, &merged)

		if err := uc.bookingRepo.Update(txCtx, req.ID, normalized); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		updated, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to reload booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return fromDomain(result), nil
}

// normalizedUpdate заменяет значения затронутых полей на нормализованные
// (усеченные) значения из merged, сохраняя набор затронутых полей
func normalizedUpdate(update domain.BookingUpdate, merged *domain.Booking) domain.BookingUpdate {
	if update.Name != nil {
		update.Name = &merged.Name
	}
	if update.Email != nil {
		update.Email = &merged.Email
	}
	if update.Phone != nil {
		update.Phone = &merged.Phone
	}
	if update.Language != nil {
		update.Language = &merged.Language
	}
	if update.Message != nil {
		if merged.Message != nil {
			update.Message = merged.Message
		} else {
			empty := ""
			update.Message = &empty
		}
	}
	return update
}
