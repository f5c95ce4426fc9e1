package api

import (
	"context"
	"errors"
	"net/http"

	"skyfitness/internal/auth"
)

type ContextKey string

const (
	UserIDKey    ContextKey = "user_id"
	UserEmailKey ContextKey = "user_email"
)

// AuthMiddleware проверяет JWT токен и добавляет данные пользователя в контекст
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := auth.ExtractTokenFromRequest(r)
		if tokenString == "" {
			SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized: no token provided")
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			message := "Unauthorized: invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Unauthorized: token has expired"
			}

			SendErrorResponse(w, http.StatusUnauthorized, message)
			return
		}

		// Добавляем данные пользователя в контекст
		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext извлекает ID пользователя из контекста
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUserEmailFromContext извлекает email пользователя из контекста
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}
