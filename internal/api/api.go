package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"skyfitness/internal/catalog"
)

// SetupRouter настраивает маршруты API
func SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := NewAuthHandler()
	courseHandler := NewCourseHandler(catalog.DefaultIDMap())
	progressHandler := NewProgressHandler()

	r.Route("/api/fitness", func(r chi.Router) {
		// Публичные маршруты (без аутентификации)
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
			r.Get("/courses", courseHandler.List)
			r.Get("/courses/{courseId}", courseHandler.ByID)
			r.Get("/courses/{courseId}/workouts", courseHandler.Workouts)
		})

		// Защищенные маршруты (с аутентификацией)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Get("/courses/{courseId}/workouts/{workoutId}/progress", progressHandler.Get)
			r.Patch("/courses/{courseId}/workouts/{workoutId}/progress", progressHandler.Save)
		})
	})

	return r
}

// SendErrorResponse пишет тело ошибки {"message": ...}
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// SendJSONResponse пишет успешный JSON-ответ
func SendJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
