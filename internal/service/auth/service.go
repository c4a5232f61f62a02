package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	userRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/user"
)

// tokenTTL время жизни выданного токена
const tokenTTL = 72 * time.Hour

// minPasswordLength минимальная длина пароля при регистрации
const minPasswordLength = 6

// Claims полезная нагрузка токена
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Service сервис регистрации и входа
// Тонкая обвязка вокруг ядра бронирования: хранит bcrypt-хэши паролей
// и выдает JWT, по которому middleware восстанавливает пользователя
type Service struct {
	userRepo UserRepository
	secret   []byte
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, secret string, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		secret:   []byte(secret),
		logger:   logger,
	}
}

// Register регистрирует нового пользователя
func (s *Service) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	s.logger.Info("Auth.Register: username=%s", username)

	if username == "" || len(username) > domain.MaxUsernameLength {
		return nil, fmt.Errorf("%w: invalid username", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Auth.Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, username, string(hash), email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			s.logger.Warn("Auth.Register: username %s already taken", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Auth.Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Auth.Register: user id=%d registered", created.ID)
	return created, nil
}

// Login проверяет учетные данные и выдает токен
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	s.logger.Info("Auth.Login: username=%s", username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Auth.Login: unknown username %s", username)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Auth.Login: repository error: %v", err)
		return "", fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Auth.Login: wrong password for username %s", username)
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("Auth.Login: failed to sign token: %v", err)
		return "", fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Auth.Login: user id=%d logged in", user.ID)
	return signed, nil
}

// ParseToken проверяет подпись токена и возвращает ID пользователя
func (s *Service) ParseToken(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
