package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	reservationRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/reservation"
	userRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/user"
)

// UseCase use case подтверждения корзины
type UseCase struct {
	reservationRepo ReservationRepository
	userRepo        UserRepository
	cartStorage     CartStorage
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	cartStorage CartStorage,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		cartStorage:     cartStorage,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute подтверждает корзину пользователя
//
// Все позиции обрабатываются строго в порядке добавления внутри ОДНОЙ
// сериализуемой транзакции: проверка пересечения и вставка каждой позиции
// видят вставки предыдущих позиций того же коммита, а конкурирующий коммит
// другого пользователя на пересекающийся интервал либо сериализуется после
// нашего и увидит нашу запись, либо заставит транзакцию повториться.
// Это закрывает гонку "проверили-вставили" между показом и подтверждением.
//
// Конфликт отдельной позиции не прерывает коммит: позиция пропускается и
// попадает в список конфликтов ответа. Ошибка хранилища фатальна для всего
// запроса - транзакция откатывается, корзина не очищается.
//
// После успешной транзакции: письмо отправляется один раз и только если
// хоть одна позиция сохранена, с суммой именно сохраненных позиций;
// корзина очищается безусловно, независимо от числа конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: user=%d", req.UserID)

	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("ConfirmBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	items, err := uc.cartStorage.List(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to load cart for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to load cart: %v", ErrInternal, err)
	}
	if len(items) == 0 {
		uc.logger.Warn("ConfirmBooking: cart is empty for user=%d", req.UserID)
		return nil, ErrEmptyCart
	}

	var result *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Аккумулятор собирается заново на каждую попытку: откатившаяся
		// из-за конфликта сериализации попытка не оставляет следов в ответе
		attempt := &Response{
			Booked:    make([]BookedItem, 0, len(items)),
			Conflicts: make([]ConflictItem, 0),
		}

		for _, item := range items {
			start, end, err := item.Interval()
			if err != nil {
				// Позиция с испорченными датой/временем не может быть сохранена;
				// отклоняем её как конфликтную и продолжаем
				uc.logger.Warn("ConfirmBooking: cart item id=%s has malformed date/time, rejected: %v",
					item.ID, err)
				attempt.Conflicts = append(attempt.Conflicts, ConflictItem{
					Date:     item.Date,
					Time:     item.Time,
					MenuName: item.MenuName,
				})
				continue
			}

			existing, err := uc.reservationRepo.FindOverlapping(txCtx, start, end)
			if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Error("ConfirmBooking: overlap check failed for user=%d: %v", req.UserID, err)
				// Цепочка ошибки сохраняется: менеджер транзакций по ней
				// распознает конфликт сериализации и повторяет попытку
				return fmt.Errorf("%w: overlap check failed: %w", ErrInternal, err)
			}

			if existing != nil {
				uc.logger.Info("ConfirmBooking: slot %s %s already taken by reservation id=%d, item skipped",
					item.Date, item.Time, existing.ID)
				attempt.Conflicts = append(attempt.Conflicts, ConflictItem{
					Date:     item.Date,
					Time:     item.Time,
					MenuName: item.MenuName,
				})
				continue
			}

			created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
				UserID:   req.UserID,
				MenuName: item.MenuName,
				StartAt:  start,
				EndAt:    end,
				Price:    item.Price,
			})
			if err != nil {
				uc.logger.Error("ConfirmBooking: insert failed for user=%d: %v", req.UserID, err)
				return fmt.Errorf("%w: insert failed: %w", ErrInternal, err)
			}

			attempt.Booked = append(attempt.Booked, BookedItem{
				ReservationID: created.ID,
				Date:          item.Date,
				Time:          item.Time,
				MenuName:      item.MenuName,
				Price:         item.Price,
			})
			attempt.Total += item.Price
		}

		result = attempt
		return nil
	})
	if err != nil {
		// Транзакция откатилась целиком: корзину не трогаем,
		// пользователь может повторить попытку
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: user=%d booked %d items, %d conflicts, total=%d",
		req.UserID, len(result.Booked), len(result.Conflicts), result.Total)

	if len(result.Booked) > 0 {
		uc.notifier.Notify(user.Email, user.Username, itemizedText(result.Booked), result.Total)
	}

	// Корзина очищается после любой завершившейся попытки коммита,
	// даже если все позиции оказались конфликтными
	if err := uc.cartStorage.Clear(ctx, req.UserID); err != nil {
		uc.logger.Error("ConfirmBooking: failed to clear cart for user=%d: %v", req.UserID, err)
	}

	return result, nil
}

// itemizedText собирает текст подтверждения по сохраненным позициям
func itemizedText(booked []BookedItem) string {
	var b strings.Builder
	for _, item := range booked {
		b.WriteString(fmt.Sprintf("Дата и время: %s %s\n", item.Date, item.Time))
		b.WriteString(fmt.Sprintf("  Услуга: %s\n", item.MenuName))
		b.WriteString(fmt.Sprintf("  Цена: %d\n\n", item.Price))
	}
	return b.String()
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	return nil
}
