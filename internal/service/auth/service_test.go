package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

func newTestService(t *testing.T, password string) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService("admin", string(hash), "test-secret", 24*time.Hour, nopLogger{})
}

func TestLoginAndVerify(t *testing.T) {
	svc := newTestService(t, "correct-horse")

	token, err := svc.Login("admin", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Verify(token))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestService(t, "correct-horse")

	_, err := svc.Login("admin", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("root", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_InvalidToken(t *testing.T) {
	svc := newTestService(t, "correct-horse")

	assert.ErrorIs(t, svc.Verify("not-a-jwt"), ErrInvalidToken)
	assert.ErrorIs(t, svc.Verify(""), ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := newTestService(t, "correct-horse")
	other := newTestService(t, "correct-horse")
	other.jwtSecret = []byte("another-secret")

	token, err := other.Login("admin", "correct-horse")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Verify(token), ErrInvalidToken)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := newTestService(t, "correct-horse")
	svc.timeProvider = &fixedTimeProvider{now: time.Now().Add(-48 * time.Hour)}

	token, err := svc.Login("admin", "correct-horse")
	require.NoError(t, err)

	// Токен выдан 48 часов назад со сроком действия 24 часа
	assert.ErrorIs(t, svc.Verify(token), ErrInvalidToken)
}
