package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда отправка пропущена из-за отсутствия настроек
	ErrNotConfigured = errors.New("mailer client: sender credentials are not configured")

	// ErrSend возвращается при ошибке транспорта
	// Подтверждение бронирования от этой ошибки не зависит: она только логируется
	ErrSend = errors.New("mailer client: failed to send message")
)
