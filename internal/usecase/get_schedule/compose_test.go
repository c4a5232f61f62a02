package get_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	"github.com/easeteam/Ease-BookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func mustGrid(t *testing.T) *domain.TimeGrid {
	t.Helper()
	grid, err := domain.NewTimeGrid(9, 19, 30)
	require.NoError(t, err)
	return grid
}

func datesOf(t *testing.T, days ...string) []time.Time {
	t.Helper()
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		parsed, err := time.Parse(domain.DateFormat, d)
		require.NoError(t, err)
		out = append(out, parsed)
	}
	return out
}

func reservationAt(t *testing.T, id int64, date, slot, menu string, durationMinutes int) *domain.Reservation {
	t.Helper()
	day, err := time.Parse(domain.DateFormat, date)
	require.NoError(t, err)
	start, err := types.TimeString(slot).OnDate(day)
	require.NoError(t, err)
	return &domain.Reservation{
		ID:       id,
		UserID:   1,
		MenuName: menu,
		StartAt:  start,
		EndAt:    start.Add(time.Duration(durationMinutes) * time.Minute),
		Price:    5000,
	}
}

func TestComposeSchedule_EmptyDay(t *testing.T) {
	grid := mustGrid(t)

	schedule := composeSchedule(grid, datesOf(t, "2025-06-16"), nil, nil, noopLogger{})

	day := schedule["2025-06-16"]
	require.Len(t, day, 20)
	for slot, cell := range day {
		assert.Equal(t, domain.CellAvailable, cell.Status, "slot %s", slot)
	}
}

func TestComposeSchedule_ReservationBlock(t *testing.T) {
	grid := mustGrid(t)

	// 90 минут с 10:00: голова в 10:00 со span=3, продолжения в 10:30 и 11:00
	res := reservationAt(t, 1, "2025-06-16", "10:00", "Стрижка", 90)
	schedule := composeSchedule(grid, datesOf(t, "2025-06-16"), []*domain.Reservation{res}, nil, noopLogger{})

	day := schedule["2025-06-16"]
	assert.Equal(t, domain.ScheduleCell{Status: domain.CellBookedDB, MenuName: "Стрижка", Span: 3}, day["10:00"])
	assert.Equal(t, domain.CellBookedSpan, day["10:30"].Status)
	assert.Equal(t, domain.CellBookedSpan, day["11:00"].Status)
	assert.Equal(t, domain.CellAvailable, day["09:30"].Status)
	assert.Equal(t, domain.CellAvailable, day["11:30"].Status)
}

func TestComposeSchedule_ReservationBeatsCart(t *testing.T) {
	grid := mustGrid(t)

	res := reservationAt(t, 1, "2025-06-16", "10:00", "Стрижка", 90)
	cart := []domain.CartItem{{
		ID:              "item-1",
		Date:            "2025-06-16",
		Time:            "10:00",
		MenuKey:         "color",
		MenuName:        "Окрашивание",
		Price:           8000,
		DurationMinutes: 150,
	}}

	schedule := composeSchedule(grid, datesOf(t, "2025-06-16"),
		[]*domain.Reservation{res}, cart, noopLogger{})

	// Подтвержденное бронирование выигрывает, позиция корзины не рисуется
	day := schedule["2025-06-16"]
	assert.Equal(t, domain.CellBookedDB, day["10:00"].Status)
	assert.Equal(t, "Стрижка", day["10:00"].MenuName)
}

func TestComposeSchedule_FirstCartItemWins(t *testing.T) {
	grid := mustGrid(t)

	cart := []domain.CartItem{
		{ID: "a", Date: "2025-06-16", Time: "12:00", MenuName: "Стрижка", DurationMinutes: 90},
		{ID: "b", Date: "2025-06-16", Time: "12:00", MenuName: "Окрашивание", DurationMinutes: 150},
	}

	schedule := composeSchedule(grid, datesOf(t, "2025-06-16"), nil, cart, noopLogger{})

	day := schedule["2025-06-16"]
	assert.Equal(t, domain.CellBookedCart, day["12:00"].Status)
	assert.Equal(t, "Стрижка", day["12:00"].MenuName)
	assert.Equal(t, 3, day["12:00"].Span)
}

func TestComposeSchedule_BlockTruncatedAtDayEnd(t *testing.T) {
	grid := mustGrid(t)

	// 150 минут с 18:00 не помещаются: блок обрезается на последнем слоте дня
	res := reservationAt(t, 1, "2025-06-16", "18:00", "Окрашивание", 150)
	schedule := composeSchedule(grid, datesOf(t, "2025-06-16"), []*domain.Reservation{res}, nil, noopLogger{})

	day := schedule["2025-06-16"]
	assert.Equal(t, domain.CellBookedDB, day["18:00"].Status)
	assert.Equal(t, 2, day["18:00"].Span)
	assert.Equal(t, domain.CellBookedSpan, day["18:30"].Status)
}

func TestComposeSchedule_OffGridReservationSkipped(t *testing.T) {
	grid := mustGrid(t)

	res := reservationAt(t, 1, "2025-06-16", "10:15", "Стрижка", 90)
	schedule := composeSchedule(grid, datesOf(t, "2025-06-16"), []*domain.Reservation{res}, nil, noopLogger{})

	day := schedule["2025-06-16"]
	for slot, cell := range day {
		assert.Equal(t, domain.CellAvailable, cell.Status, "slot %s", slot)
	}
}

func TestComposeSchedule_Deterministic(t *testing.T) {
	grid := mustGrid(t)
	dates := datesOf(t, "2025-06-16", "2025-06-17")
	reservations := []*domain.Reservation{
		reservationAt(t, 1, "2025-06-16", "10:00", "Стрижка", 90),
		reservationAt(t, 2, "2025-06-17", "15:00", "Окрашивание", 150),
	}
	cart := []domain.CartItem{
		{ID: "a", Date: "2025-06-16", Time: "13:00", MenuName: "Стрижка", DurationMinutes: 90},
	}

	first := composeSchedule(grid, dates, reservations, cart, noopLogger{})
	second := composeSchedule(grid, dates, reservations, cart, noopLogger{})

	assert.Equal(t, first, second)
}
