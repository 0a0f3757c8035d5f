package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// adminRole значение claim role в выдаваемых токенах
const adminRole = "admin"

// Service сервис аутентификации администратора.
// Единственная учетная запись задается конфигурацией: логин и bcrypt-хэш
// пароля. Ядро бронирований сервису не доверяет ничего, кроме булевого
// утверждения "запрос от администратора", которое дает Verify
type Service struct {
	adminLogin   string
	passwordHash string
	jwtSecret    []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	log          Logger
}

// NewService создает сервис аутентификации
func NewService(adminLogin, passwordHash, jwtSecret string, tokenTTL time.Duration, log Logger) *Service {
	return &Service{
		adminLogin:   adminLogin,
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}
}

// Login проверяет учетные данные и выдает JWT с ролью администратора
func (s *Service) Login(login, password string) (string, error) {
	if login != s.adminLogin {
		s.log.Warn("Login: unknown login %q", login)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.log.Warn("Login: password mismatch for login %q", login)
		return "", ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  login,
		"role": adminRole,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.log.Error("Login: failed to sign token: %v", err)
		return "", fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.log.Info("Login: issued admin token for %q", login)
	return signed, nil
}

// Verify проверяет подпись и срок действия токена и что он выдан
// администратору
func (s *Service) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != adminRole {
		return ErrInvalidToken
	}

	return nil
}
