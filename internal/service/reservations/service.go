package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	reservationRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/reservation"
)

// Service сервис администратора для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListAll возвращает все бронирования с данными клиентов
// по возрастанию времени начала
func (s *Service) ListAll(ctx context.Context) ([]*domain.ReservationWithUser, error) {
	s.logger.Info("Reservations.ListAll: fetching all reservations")

	reservations, err := s.reservationRepo.ListWithUsers(ctx)
	if err != nil {
		s.logger.Error("Reservations.ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reservations.ListAll: fetched %d reservations", len(reservations))
	return reservations, nil
}

// Cancel удаляет бронирование (отмена администратором)
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Reservations.Cancel: cancelling reservation id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Reservations.Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Reservations.Cancel: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reservations.Cancel: reservation id=%d cancelled", id)
	return nil
}
