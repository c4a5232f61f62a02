package domain

import "time"

// User зарегистрированный клиент салона
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string

	CreatedAt time.Time
}
