package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/MarkDidenkoHT/mesto-sili-booking/internal/infra/storage/booking"
	"github.com/MarkDidenkoHT/mesto-sili-booking/internal/service/bookings/models"
)

// Service сервис чтения и удаления бронирований для административной
// панели и публичной выдачи занятых слотов
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по году, месяцу и статусу
// подтверждения
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, year=%v, month=%v, confirmed=%v",
		ptrVal(req.Year), ptrVal(req.Month), ptrVal(req.Confirmed))

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// BusySlots возвращает занятые интервалы ресурса на дату.
// Публичная выдача: только подтвержденные брони, только время,
// без персональных данных
func (s *Service) BusySlots(ctx context.Context, req *models.BusySlotsRequest) (*models.BusySlotsResponse, error) {
	query, err := req.ToDomainQuery()
	if err != nil {
		s.logger.Warn("BusySlots: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListConfirmedForSlot(ctx, query)
	if err != nil {
		s.logger.Error("BusySlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: BusySlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlots(bookings), nil
}

// Delete удаляет бронирование без возможности восстановления
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// ptrVal разыменовывает указатель для логирования
func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return "<nil>"
	}
	return *p
}
