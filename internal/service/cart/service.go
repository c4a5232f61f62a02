package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	cartStorage "github.com/easeteam/Ease-BookingService/internal/infra/cart"
	"github.com/easeteam/Ease-BookingService/internal/service/cart/models"
	"github.com/easeteam/Ease-BookingService/pkg/types"
)

// Service сервис операций с корзиной
// Корзина - черновик выбора: здесь проверяется только корректность позиции,
// а не занятость слота; достоверная проверка конфликтов происходит при коммите
type Service struct {
	storage      CartStorage
	menu         *domain.Menu
	grid         *domain.TimeGrid
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(storage CartStorage, menu *domain.Menu, grid *domain.TimeGrid, logger Logger) *Service {
	return &Service{
		storage:      storage,
		menu:         menu,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Add валидирует и добавляет позицию в корзину
// Отклоняет неизвестные услуги, слоты вне сетки, слоты в прошлом и услуги,
// не помещающиеся до закрытия (услуга обязана закончиться в рабочий день)
func (s *Service) Add(ctx context.Context, req *models.AddItemRequest) (*domain.CartItem, error) {
	s.logger.Info("Cart.Add: user=%d, date=%s, time=%s, menu=%s", req.UserID, req.Date, req.Time, req.MenuKey)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	menuItem, ok := s.menu.Get(req.MenuKey)
	if !ok {
		s.logger.Warn("Cart.Add: unknown menu key %q for user=%d", req.MenuKey, req.UserID)
		return nil, ErrUnknownMenu
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrInvalidInput, req.Time)
	}

	if !s.grid.Contains(slot) {
		s.logger.Warn("Cart.Add: off-grid slot %s for user=%d", slot, req.UserID)
		return nil, ErrOffGrid
	}

	startAt, err := slot.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !startAt.After(s.timeProvider.Now()) {
		s.logger.Warn("Cart.Add: past slot %s %s for user=%d", req.Date, slot, req.UserID)
		return nil, ErrPastSlot
	}

	if !s.grid.FitsAt(slot, menuItem.DurationMinutes) {
		s.logger.Warn("Cart.Add: %s at %s does not fit before closing for user=%d",
			menuItem.Key, slot, req.UserID)
		return nil, ErrPastClosing
	}

	item := domain.CartItem{
		ID:              uuid.NewString(),
		Date:            req.Date,
		Time:            slot,
		MenuKey:         menuItem.Key,
		MenuName:        menuItem.Name,
		Price:           menuItem.Price,
		DurationMinutes: menuItem.DurationMinutes,
	}

	if err := s.storage.Add(ctx, req.UserID, item); err != nil {
		s.logger.Error("Cart.Add: storage error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Add - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("Cart.Add: item id=%s added for user=%d", item.ID, req.UserID)
	return &item, nil
}

// Remove удаляет позицию корзины по синтетическому id
func (s *Service) Remove(ctx context.Context, userID int64, itemID string) error {
	s.logger.Info("Cart.Remove: user=%d, item=%s", userID, itemID)

	if userID <= 0 || itemID == "" {
		return fmt.Errorf("%w: userID and itemID are required", ErrInvalidInput)
	}

	if err := s.storage.Remove(ctx, userID, itemID); err != nil {
		if errors.Is(err, cartStorage.ErrItemNotFound) {
			s.logger.Warn("Cart.Remove: item id=%s not found for user=%d", itemID, userID)
			return ErrItemNotFound
		}
		s.logger.Error("Cart.Remove: storage error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Remove - storage error: %v", ErrInternal, err)
	}

	return nil
}

// List возвращает корзину пользователя с суммой
func (s *Service) List(ctx context.Context, userID int64) (*models.CartResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	items, err := s.storage.List(ctx, userID)
	if err != nil {
		s.logger.Error("Cart.List: storage error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - storage error: %v", ErrInternal, err)
	}

	return models.FromItems(items), nil
}
