package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skyfitness/internal/database"
	"skyfitness/internal/models"
	"skyfitness/internal/progress"
)

type ProgressHandler struct{}

func NewProgressHandler() *ProgressHandler {
	return &ProgressHandler{}
}

// Get возвращает прогресс тренировки текущего пользователя.
// Никогда не записанный прогресс - нули
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, ok := GetUserEmailFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	courseID := chi.URLParam(r, "courseId")
	workoutID := chi.URLParam(r, "workoutId")

	forwardBends, backBends, legRaises, err := database.GetProgress(email, courseID, workoutID)
	if err != nil {
		SendErrorResponse(w, http.StatusInternalServerError, "Не удалось получить прогресс")
		return
	}

	SendJSONResponse(w, http.StatusOK, map[string][]int{
		"progressData": {forwardBends, backBends, legRaises},
	})
}

// Save полностью заменяет прогресс тренировки. Отрицательные и нечисловые
// значения приводятся к нулю
func (h *ProgressHandler) Save(w http.ResponseWriter, r *http.Request) {
	email, ok := GetUserEmailFromContext(r.Context())
	if !ok {
		SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload models.ProgressPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		SendErrorResponse(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	counters := [3]int{}
	for i := range counters {
		if i < len(payload.ProgressData) {
			counters[i] = progress.Coerce(payload.ProgressData[i])
		}
	}

	courseID := chi.URLParam(r, "courseId")
	workoutID := chi.URLParam(r, "workoutId")

	if err := database.SaveProgress(email, courseID, workoutID, counters[0], counters[1], counters[2]); err != nil {
		SendErrorResponse(w, http.StatusInternalServerError, "Не удалось сохранить прогресс")
		return
	}

	SendJSONResponse(w, http.StatusOK, map[string][]int{
		"progressData": {counters[0], counters[1], counters[2]},
	})
}
