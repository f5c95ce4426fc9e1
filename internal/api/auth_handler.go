package api

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"skyfitness/internal/auth"
	"skyfitness/internal/database"
	"skyfitness/internal/models"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Register обрабатывает запрос на регистрацию. Токен не выдается:
// после регистрации клиент выполняет обычный вход
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	email := strings.TrimSpace(req.Email)
	if !emailRe.MatchString(email) {
		SendErrorResponse(w, http.StatusBadRequest, "Введите корректный Email")
		return
	}
	if req.Password == "" {
		SendErrorResponse(w, http.StatusBadRequest, "Введите пароль")
		return
	}

	// Имя по умолчанию - часть email до @
	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}

	_, err := database.CreateUser(email, name, req.Password)
	if err != nil {
		if strings.Contains(err.Error(), "уже существует") {
			SendErrorResponse(w, http.StatusBadRequest, "Пользователь с таким email уже существует")
			return
		}
		SendErrorResponse(w, http.StatusInternalServerError, "Ошибка при регистрации")
		return
	}

	SendJSONResponse(w, http.StatusCreated, map[string]string{"message": "Пользователь создан"})
}

// Login обрабатывает запрос на вход в систему
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendErrorResponse(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	email := strings.TrimSpace(req.Email)
	if !emailRe.MatchString(email) {
		SendErrorResponse(w, http.StatusBadRequest, "Введите корректный Email")
		return
	}

	user, err := database.GetUserByEmail(email)
	if err != nil {
		SendErrorResponse(w, http.StatusInternalServerError, "Ошибка авторизации")
		return
	}
	if user == nil {
		SendErrorResponse(w, http.StatusNotFound, "Пользователь с таким email не найден")
		return
	}

	if !database.CheckPasswordHash(req.Password, user.Password) {
		SendErrorResponse(w, http.StatusBadRequest, "Неверный пароль")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		SendErrorResponse(w, http.StatusInternalServerError, "Ошибка авторизации")
		return
	}

	SendJSONResponse(w, http.StatusOK, models.AuthResponse{Token: token})
}
