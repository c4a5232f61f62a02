package mailer

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// sendTimeout бюджет на всю SMTP сессию
// По его истечении отправка бросается, бронирование уже зафиксировано
const sendTimeout = 10 * time.Second

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP клиент подтверждений бронирования
// Работает строго best-effort: любая ошибка логируется и глотается,
// коммит корзины от отправки письма не зависит
type Client struct {
	host     string
	port     int
	sender   string
	password string
	log      Logger
}

// NewClient создает новый экземпляр почтового клиента
// Пустые sender/password означают, что отправка отключена
func NewClient(host string, port int, sender, password string, log Logger) *Client {
	return &Client{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
		log:      log,
	}
}

// Notify отправляет подтверждение бронирования в отдельной горутине
// Никогда не блокирует вызывающего и не возвращает ошибку
func (c *Client) Notify(recipient, username, itemized string, totalPrice int) {
	if recipient == "" {
		c.log.Info("Mailer: recipient is empty, skipping confirmation email")
		return
	}
	if c.sender == "" || c.password == "" {
		c.log.Info("Mailer: credentials are not configured, skipping confirmation email")
		return
	}

	go func() {
		if err := c.send(recipient, username, itemized, totalPrice); err != nil {
			c.log.Error("Mailer: confirmation email to %s failed: %v", recipient, err)
			return
		}
		c.log.Info("Mailer: confirmation email sent to %s", recipient)
	}()
}

func (c *Client) send(recipient, username, itemized string, totalPrice int) error {
	body := c.buildMessage(recipient, username, itemized, totalPrice)
	addr := fmt.Sprintf("%s:%d", c.host, c.port)

	conn, err := net.DialTimeout("tcp", addr, sendTimeout)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrSend, addr, err)
	}
	// Общий дедлайн на всю сессию, а не только на установку соединения
	if err := conn.SetDeadline(time.Now().Add(sendTimeout)); err != nil {
		conn.Close()
		return fmt.Errorf("%w: set deadline: %v", ErrSend, err)
	}

	client, err := smtp.NewClient(conn, c.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: smtp handshake: %v", ErrSend, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: c.host}); err != nil {
			return fmt.Errorf("%w: starttls: %v", ErrSend, err)
		}
	}

	auth := smtp.PlainAuth("", c.sender, c.password, c.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("%w: auth: %v", ErrSend, err)
	}

	if err := client.Mail(c.sender); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrSend, err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("%w: rcpt to: %v", ErrSend, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrSend, err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		w.Close()
		return fmt.Errorf("%w: write body: %v", ErrSend, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSend, err)
	}

	return client.Quit()
}

// buildMessage собирает текст письма с подтверждением
func (c *Client) buildMessage(recipient, username, itemized string, totalPrice int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", c.sender))
	b.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	b.WriteString("Subject: =?UTF-8?B?" + encodeSubject("Салон Ease: подтверждение бронирования") + "?=\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("Здравствуйте, %s!\n\n", username))
	b.WriteString("Спасибо за бронирование. Мы записали вас на следующие услуги:\n\n")
	b.WriteString("--------------------------------------------------\n")
	b.WriteString(itemized)
	b.WriteString("--------------------------------------------------\n\n")
	b.WriteString(fmt.Sprintf("Итого: %d\n\n", totalPrice))
	b.WriteString("Будем рады видеть вас в салоне Ease.\n")

	return b.String()
}

// encodeSubject кодирует тему письма для заголовка RFC 2047
func encodeSubject(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
