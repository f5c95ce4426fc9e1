package models

// User представляет модель пользователя в системе
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"` // Не сериализуем пароль в JSON
}

// LoginRequest представляет запрос на вход в систему
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет запрос на регистрацию
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ после успешной аутентификации
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse представляет тело ошибки API; на поле message
// завязан разбор ошибок на клиенте
type ErrorResponse struct {
	Message string `json:"message"`
}

// ProgressPayload представляет проводной формат прогресса тренировки:
// [наклоны вперед, наклоны назад, подъемы ног]
type ProgressPayload struct {
	ProgressData []any `json:"progressData"`
}
