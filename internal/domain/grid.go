package domain

import (
	"errors"
	"fmt"

	"github.com/easeteam/Ease-BookingService/pkg/types"
)

var (
	// ErrInvalidGridConfig возвращается при некорректной конфигурации сетки слотов
	ErrInvalidGridConfig = errors.New("domain: invalid time grid configuration")
)

// TimeGrid упорядоченная сетка слотов рабочего дня
// Строится один раз при старте сервиса и дальше только читается
type TimeGrid struct {
	slots       []types.TimeString
	index       map[types.TimeString]int
	granularity int
	closeTime   types.TimeString
}

// NewTimeGrid строит сетку слотов от openHour (включительно) до closeHour (исключительно)
// с шагом granularityMinutes. Ошибка конфигурации фатальна для старта сервиса
func NewTimeGrid(openHour, closeHour, granularityMinutes int) (*TimeGrid, error) {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return nil, fmt.Errorf("%w: open=%d close=%d", ErrInvalidGridConfig, openHour, closeHour)
	}
	if granularityMinutes < MinGranularityMinutes || granularityMinutes > MaxGranularityMinutes {
		return nil, fmt.Errorf("%w: granularity=%d out of range", ErrInvalidGridConfig, granularityMinutes)
	}

	spanMinutes := (closeHour - openHour) * 60
	if spanMinutes%granularityMinutes != 0 {
		return nil, fmt.Errorf("%w: granularity %dm does not divide working day %dm",
			ErrInvalidGridConfig, granularityMinutes, spanMinutes)
	}

	count := spanMinutes / granularityMinutes
	slots := make([]types.TimeString, 0, count)
	index := make(map[types.TimeString]int, count)

	for i := 0; i < count; i++ {
		minutes := openHour*60 + i*granularityMinutes
		slot := types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
		index[slot] = i
		slots = append(slots, slot)
	}

	return &TimeGrid{
		slots:       slots,
		index:       index,
		granularity: granularityMinutes,
		closeTime:   types.TimeString(fmt.Sprintf("%02d:00", closeHour)),
	}, nil
}

// Slots возвращает слоты в хронологическом порядке
// Возвращаемый слайс нельзя модифицировать
func (g *TimeGrid) Slots() []types.TimeString {
	return g.slots
}

// Len возвращает количество слотов в сетке
func (g *TimeGrid) Len() int {
	return len(g.slots)
}

// Granularity возвращает шаг сетки в минутах
func (g *TimeGrid) Granularity() int {
	return g.granularity
}

// CloseTime возвращает время закрытия "HH:MM"
func (g *TimeGrid) CloseTime() types.TimeString {
	return g.closeTime
}

// Contains возвращает true, если время является началом слота сетки
func (g *TimeGrid) Contains(t types.TimeString) bool {
	_, ok := g.index[t]
	return ok
}

// IndexOf возвращает позицию слота в сетке и признак его наличия
func (g *TimeGrid) IndexOf(t types.TimeString) (int, bool) {
	i, ok := g.index[t]
	return i, ok
}

// SpanOf возвращает количество слотов, занимаемых услугой длительностью durationMinutes
// Ошибка, если длительность не кратна шагу сетки
func (g *TimeGrid) SpanOf(durationMinutes int) (int, error) {
	if durationMinutes <= 0 || durationMinutes%g.granularity != 0 {
		return 0, fmt.Errorf("%w: duration %dm is not a multiple of %dm",
			ErrInvalidGridConfig, durationMinutes, g.granularity)
	}
	return durationMinutes / g.granularity, nil
}

// FitsAt возвращает true, если услуга длительностью durationMinutes,
// начатая в слоте t, заканчивается не позже закрытия
func (g *TimeGrid) FitsAt(t types.TimeString, durationMinutes int) bool {
	i, ok := g.index[t]
	if !ok {
		return false
	}
	span, err := g.SpanOf(durationMinutes)
	if err != nil {
		return false
	}
	return i+span <= len(g.slots)
}
