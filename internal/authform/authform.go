package authform

import (
	"errors"
	"regexp"
	"strings"

	"skyfitness/internal/gateway"
)

// Mode — режим формы авторизации.
type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// GenericError — сообщение для любых отказов, не привязанных к полю формы.
// Сырой текст транспортной ошибки пользователю не показывается.
const GenericError = "Что-то пошло не так. Попробуйте позже."

// FieldErrors — ошибки формы по полям. Пустая строка — поле в порядке.
type FieldErrors struct {
	Email          string
	Password       string
	RepeatPassword string
}

// OK сообщает, что ошибок нет.
func (f FieldErrors) OK() bool {
	return f == FieldErrors{}
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate проверяет поля формы до каких-либо сетевых вызовов.
func Validate(mode Mode, email, password, repeatPassword string) FieldErrors {
	var errs FieldErrors

	em := strings.TrimSpace(email)
	switch {
	case em == "":
		errs.Email = "Введите эл. почту"
	case !emailRe.MatchString(em):
		errs.Email = "Введите корректный Email"
	}

	if password == "" {
		errs.Password = "Введите пароль"
	}

	if mode == ModeRegister {
		switch {
		case repeatPassword == "":
			errs.RepeatPassword = "Повторите пароль"
		case repeatPassword != password:
			errs.RepeatPassword = "Пароли не совпадают"
		}
	}

	return errs
}

// MapAPIError переводит отказ удалённого сервиса в ошибки формы.
// Отказ 4xx с узнаваемым сообщением привязывается к полю; всё остальное,
// включая транспортные ошибки, даёт общее сообщение.
func MapAPIError(err error) (FieldErrors, string) {
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		return FieldErrors{}, GenericError
	}

	if apiErr.Status != 400 && apiErr.Status != 404 {
		return FieldErrors{}, GenericError
	}

	msg := apiErr.Message
	var errs FieldErrors
	switch {
	case strings.Contains(msg, "уже существует"):
		errs.Email = "Пользователь с таким email уже существует"
	case strings.Contains(msg, "не найден"):
		errs.Email = "Пользователь с таким email не найден"
	case strings.Contains(msg, "Неверный пароль"):
		errs.Password = "Неверный пароль"
	case strings.Contains(msg, "корректный Email"):
		errs.Email = "Введите корректный Email"
	case msg != "":
		errs.Password = msg
	default:
		errs.Password = "Ошибка авторизации"
	}
	return errs, ""
}
