package authform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"skyfitness/internal/gateway"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		expected FieldErrors
	}{
		{name: "valid", email: "a@b.com", password: "secret"},
		{name: "empty email", password: "secret", expected: FieldErrors{Email: "Введите эл. почту"}},
		{name: "bad email", email: "not-an-email", password: "secret", expected: FieldErrors{Email: "Введите корректный Email"}},
		{name: "empty password", email: "a@b.com", expected: FieldErrors{Password: "Введите пароль"}},
		{
			name:     "both empty",
			expected: FieldErrors{Email: "Введите эл. почту", Password: "Введите пароль"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(ModeLogin, tt.email, tt.password, "")
			assert.Equal(t, tt.expected, errs)
			assert.Equal(t, tt.expected == FieldErrors{}, errs.OK())
		})
	}
}

func TestValidateRegisterRepeatPassword(t *testing.T) {
	errs := Validate(ModeRegister, "a@b.com", "secret", "")
	assert.Equal(t, "Повторите пароль", errs.RepeatPassword)

	errs = Validate(ModeRegister, "a@b.com", "secret", "other")
	assert.Equal(t, "Пароли не совпадают", errs.RepeatPassword)

	errs = Validate(ModeRegister, "a@b.com", "secret", "secret")
	assert.True(t, errs.OK())

	// В режиме входа повтор пароля не проверяется
	errs = Validate(ModeLogin, "a@b.com", "secret", "")
	assert.True(t, errs.OK())
}

func TestMapAPIErrorFieldLevel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected FieldErrors
	}{
		{
			name:     "duplicate email on register",
			err:      &gateway.APIError{Status: 400, Message: "Пользователь с таким email уже существует"},
			expected: FieldErrors{Email: "Пользователь с таким email уже существует"},
		},
		{
			name:     "unknown user on login",
			err:      &gateway.APIError{Status: 404, Message: "Пользователь с таким email не найден"},
			expected: FieldErrors{Email: "Пользователь с таким email не найден"},
		},
		{
			name:     "wrong password",
			err:      &gateway.APIError{Status: 400, Message: "Неверный пароль"},
			expected: FieldErrors{Password: "Неверный пароль"},
		},
		{
			name:     "bad email format",
			err:      &gateway.APIError{Status: 400, Message: "Введите корректный Email"},
			expected: FieldErrors{Email: "Введите корректный Email"},
		},
		{
			name:     "unrecognized 400 message goes to password field",
			err:      &gateway.APIError{Status: 400, Message: "Пароль должен содержать заглавную букву"},
			expected: FieldErrors{Password: "Пароль должен содержать заглавную букву"},
		},
		{
			name:     "empty 400 message",
			err:      &gateway.APIError{Status: 400},
			expected: FieldErrors{Password: "Ошибка авторизации"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, common := MapAPIError(tt.err)
			assert.Equal(t, tt.expected, errs)
			assert.Empty(t, common)
		})
	}
}

func TestMapAPIErrorGeneric(t *testing.T) {
	// 5xx - общее сообщение, без привязки к полю
	errs, common := MapAPIError(&gateway.APIError{Status: 500, Message: "internal"})
	assert.True(t, errs.OK())
	assert.Equal(t, GenericError, common)

	// Транспортная ошибка никогда не показывает сырой текст
	errs, common = MapAPIError(errors.New("dial tcp: connection refused"))
	assert.True(t, errs.OK())
	assert.Equal(t, GenericError, common)
}
