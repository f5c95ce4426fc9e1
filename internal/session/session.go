package session

import (
	"encoding/json"

	"skyfitness/internal/kvstore"
)

// Ключи хранилища. Менять нельзя: по ним находят данные вернувшиеся пользователи.
const (
	tokenStoreKey = "sky_token"
	userStoreKey  = "sky_user"
)

// User — запись пользователя, сохраняемая рядом с токеном.
// Поля login и username встречаются в данных старых версий,
// поэтому участвуют в выводе ключа пользователя.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Login    string `json:"login,omitempty"`
	Username string `json:"username,omitempty"`
}

// Session — текущая сессия: токен плюс запись пользователя.
type Session struct {
	Token string
	User  User
}

// Manager владеет состоянием авторизации поверх хранилища.
// Создаётся один раз при старте процесса.
type Manager struct {
	store *kvstore.Store
}

func NewManager(store *kvstore.Store) *Manager {
	return &Manager{store: store}
}

// Login сохраняет токен и запись пользователя. Валидации здесь нет,
// это забота формы авторизации и сервера.
func (m *Manager) Login(token string, user User) {
	raw, err := json.Marshal(user)
	if err != nil {
		// User состоит из строк, сюда попасть нельзя
		return
	}
	m.store.Set(tokenStoreKey, token)
	m.store.Set(userStoreKey, string(raw))
}

// CurrentUser восстанавливает сессию из хранилища. Если токен или запись
// пользователя отсутствует либо повреждена — сессии нет.
func (m *Manager) CurrentUser() *Session {
	token, ok := m.store.Get(tokenStoreKey)
	if !ok || token == "" {
		return nil
	}

	raw, ok := m.store.Get(userStoreKey)
	if !ok {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}

	return &Session{Token: token, User: user}
}

// Token возвращает текущий токен или пустую строку.
func (m *Manager) Token() string {
	if s := m.CurrentUser(); s != nil {
		return s.Token
	}
	return ""
}

// Logout удаляет обе записи сессии.
func (m *Manager) Logout() {
	m.store.Remove(tokenStoreKey)
	m.store.Remove(userStoreKey)
}

// UserKey — стабильный ключ пользователя, которым секционируются все
// пользовательские данные. Порядок предпочтения фиксирован: email, затем
// login, затем username. Строка используется как есть, без нормализации,
// иначе данные вернувшегося пользователя будут потеряны.
func UserKey(s *Session) string {
	if s == nil {
		return ""
	}
	switch {
	case s.User.Email != "":
		return s.User.Email
	case s.User.Login != "":
		return s.User.Login
	default:
		return s.User.Username
	}
}
