package get_schedule

import (
	"time"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	"github.com/easeteam/Ease-BookingService/pkg/types"
)

// composeSchedule собирает календарную сетку окна дат из подтвержденных
// бронирований и корзины пользователя
//
// Правила наложения:
//   - подтвержденные бронирования всегда имеют приоритет над корзиной;
//     оба источника читаются в одном запросе, поэтому это строгий порядок,
//     а не гонка
//   - из нескольких позиций корзины на одну ячейку рисуется первая добавленная
//   - блок, выходящий за последний слот дня, молча обрезается на границе дня
//
// Функция ничего не мутирует и детерминирована: повторный вызов с теми же
// входами дает идентичный результат
func composeSchedule(
	grid *domain.TimeGrid,
	dates []time.Time,
	reservations []*domain.Reservation,
	cartItems []domain.CartItem,
	log Logger,
) domain.Schedule {
	schedule := make(domain.Schedule, len(dates))
	for _, d := range dates {
		day := make(domain.DaySchedule, grid.Len())
		for _, slot := range grid.Slots() {
			day[slot] = domain.ScheduleCell{Status: domain.CellAvailable, Span: 1}
		}
		schedule[d.Format(domain.DateFormat)] = day
	}

	// Подтвержденные бронирования
	for _, res := range reservations {
		dateStr := res.StartAt.Format(domain.DateFormat)
		day, ok := schedule[dateStr]
		if !ok {
			continue
		}

		slot := types.NewTimeString(res.StartAt)
		idx, ok := grid.IndexOf(slot)
		if !ok {
			// Запись не попадает на сетку: пропускаем, показ не ломаем
			log.Warn("composeSchedule: reservation id=%d starts off-grid at %s, skipped", res.ID, slot)
			continue
		}

		span, err := grid.SpanOf(res.DurationMinutes())
		if err != nil {
			log.Warn("composeSchedule: reservation id=%d has malformed duration %dm, skipped",
				res.ID, res.DurationMinutes())
			continue
		}

		markBlock(day, grid, idx, span, domain.CellBookedDB, res.MenuName)
	}

	// Корзина: только поверх все еще свободных ячеек
	for _, item := range cartItems {
		day, ok := schedule[item.Date]
		if !ok {
			continue
		}

		idx, ok := grid.IndexOf(item.Time)
		if !ok {
			log.Warn("composeSchedule: cart item id=%s targets off-grid slot %s, skipped", item.ID, item.Time)
			continue
		}

		if day[item.Time].Status != domain.CellAvailable {
			// Ячейка уже занята бронированием или более ранней позицией корзины;
			// достоверная проверка конфликтов происходит при коммите
			continue
		}

		span, err := grid.SpanOf(item.DurationMinutes)
		if err != nil {
			log.Warn("composeSchedule: cart item id=%s has malformed duration %dm, skipped",
				item.ID, item.DurationMinutes)
			continue
		}

		markBlock(day, grid, idx, span, domain.CellBookedCart, item.MenuName)
	}

	return schedule
}

// markBlock помечает голову блока и его продолжения
// Продолжения занимают только свободные ячейки и не выходят за последний слот дня
func markBlock(day domain.DaySchedule, grid *domain.TimeGrid, idx, span int, status domain.CellStatus, menuName string) {
	if idx+span > grid.Len() {
		span = grid.Len() - idx
	}

	slots := grid.Slots()
	day[slots[idx]] = domain.ScheduleCell{
		Status:   status,
		MenuName: menuName,
		Span:     span,
	}

	for i := idx + 1; i < idx+span; i++ {
		if day[slots[i]].Status != domain.CellAvailable {
			continue
		}
		day[slots[i]] = domain.ScheduleCell{Status: domain.CellBookedSpan, Span: 1}
	}
}
