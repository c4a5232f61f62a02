package get_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/easeteam/Ease-BookingService/internal/domain"
)

// UseCase use case составления расписания для окна дат
type UseCase struct {
	reservationRepo ReservationRepository
	cartStorage     CartStorage
	grid            *domain.TimeGrid
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	cartStorage CartStorage,
	grid *domain.TimeGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		cartStorage:     cartStorage,
		grid:            grid,
		logger:          logger,
	}
}

// Execute собирает расписание окна дат
// Операция только читает: ни бронирования, ни корзина не изменяются,
// повторный вызов с теми же данными возвращает идентичный ответ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultScheduleDays
	}

	uc.logger.Info("GetSchedule: user=%d, start=%s, days=%d",
		req.UserID, req.StartDate.Format(domain.DateFormat), days)

	// Окно дат и его границы для выборки из БД
	windowStart := time.Date(req.StartDate.Year(), req.StartDate.Month(), req.StartDate.Day(),
		0, 0, 0, 0, req.StartDate.Location())
	windowEnd := windowStart.AddDate(0, 0, days)

	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, windowStart.AddDate(0, 0, i))
	}

	reservations, err := uc.reservationRepo.ListInRange(ctx, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	cartItems, err := uc.cartStorage.List(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to load cart for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}

	schedule := composeSchedule(uc.grid, dates, reservations, cartItems, uc.logger)

	dateStrings := make([]string, len(dates))
	for i, d := range dates {
		dateStrings[i] = d.Format(domain.DateFormat)
	}

	uc.logger.Info("GetSchedule: composed %d days x %d slots for user=%d (%d reservations, %d cart items)",
		len(dates), uc.grid.Len(), req.UserID, len(reservations), len(cartItems))

	return &Response{
		Dates:    dateStrings,
		Slots:    uc.grid.Slots(),
		Schedule: schedule,
		Cart:     cartItems,
		Total:    domain.CartTotal(cartItems),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.Days < 0 || req.Days > 31 {
		return fmt.Errorf("%w: days must be within [0, 31]", ErrInvalidInput)
	}
	return nil
}
