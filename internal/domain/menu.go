package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMenu возвращается при некорректной конфигурации меню
	ErrInvalidMenu = errors.New("domain: invalid menu configuration")
)

// MenuItem услуга салона из конфигурации
// Статические данные, после старта сервиса только читаются
type MenuItem struct {
	Key             string // ключ услуги ("cut", "perm", ...)
	Name            string // отображаемое название
	Price           int    // цена в целых единицах валюты
	DurationMinutes int    // длительность, кратна шагу сетки
}

// Menu набор услуг с доступом по ключу и стабильным порядком
type Menu struct {
	items map[string]MenuItem
	order []string
}

// NewMenu валидирует услуги против сетки слотов и собирает меню
// Любая некорректная услуга фатальна для старта сервиса
func NewMenu(items []MenuItem, grid *TimeGrid) (*Menu, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no menu items configured", ErrInvalidMenu)
	}

	m := &Menu{
		items: make(map[string]MenuItem, len(items)),
		order: make([]string, 0, len(items)),
	}

	for _, item := range items {
		if item.Key == "" {
			return nil, fmt.Errorf("%w: item with empty key", ErrInvalidMenu)
		}
		if _, exists := m.items[item.Key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidMenu, item.Key)
		}
		if item.Name == "" || len(item.Name) > MaxMenuNameLength {
			return nil, fmt.Errorf("%w: item %q has invalid name", ErrInvalidMenu, item.Key)
		}
		if item.Price <= 0 {
			return nil, fmt.Errorf("%w: item %q has non-positive price", ErrInvalidMenu, item.Key)
		}
		if _, err := grid.SpanOf(item.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrInvalidMenu, item.Key, err)
		}
		if item.DurationMinutes > grid.Len()*grid.Granularity() {
			return nil, fmt.Errorf("%w: item %q does not fit into a working day", ErrInvalidMenu, item.Key)
		}

		m.items[item.Key] = item
		m.order = append(m.order, item.Key)
	}

	return m, nil
}

// Get возвращает услугу по ключу
func (m *Menu) Get(key string) (MenuItem, bool) {
	item, ok := m.items[key]
	return item, ok
}

// List возвращает услуги в порядке конфигурации
func (m *Menu) List() []MenuItem {
	items := make([]MenuItem, 0, len(m.order))
	for _, key := range m.order {
		items = append(items, m.items[key])
	}
	return items
}
