package progress

import (
	"encoding/json"
	"fmt"

	"skyfitness/internal/kvstore"
)

// Префикс ключа хранилища. Менять нельзя: по нему находят свой прогресс
// вернувшиеся пользователи.
const keyPrefix = "skyfitness:progress:"

// Record — счётчики повторений упражнений одной тренировки.
// Все поля неотрицательные; отсутствующая запись эквивалентна нулевой.
type Record struct {
	ForwardBends int `json:"forwardBends"`
	BackBends    int `json:"backBends"`
	LegRaises    int `json:"legRaises"`
}

// Key строит ключ хранилища для тройки (пользователь, курс, тренировка).
func Key(userKey, courseID, workoutID string) string {
	return fmt.Sprintf("%s%s:%s:%s", keyPrefix, userKey, courseID, workoutID)
}

// Repo — прогресс тренировок поверх хранилища.
type Repo struct {
	store *kvstore.Store
}

func NewRepo(store *kvstore.Store) *Repo {
	return &Repo{store: store}
}

// Get возвращает запись прогресса. Отсутствующая или повреждённая запись
// даёт нулевую; каждое поле приводится к неотрицательному целому
// по отдельности (не число или меньше нуля — 0).
func (r *Repo) Get(userKey, courseID, workoutID string) Record {
	if userKey == "" {
		return Record{}
	}

	raw, ok := r.store.Get(Key(userKey, courseID, workoutID))
	if !ok {
		return Record{}
	}

	var parsed struct {
		ForwardBends any `json:"forwardBends"`
		BackBends    any `json:"backBends"`
		LegRaises    any `json:"legRaises"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Record{}
	}

	return Record{
		ForwardBends: Coerce(parsed.ForwardBends),
		BackBends:    Coerce(parsed.BackBends),
		LegRaises:    Coerce(parsed.LegRaises),
	}
}

// Set полностью заменяет запись прогресса. Слияния нет: сохраняется ровно
// то, что передано, с приведением полей к неотрицательным.
func (r *Repo) Set(userKey, courseID, workoutID string, rec Record) {
	if userKey == "" {
		return
	}

	rec = Record{
		ForwardBends: clamp(rec.ForwardBends),
		BackBends:    clamp(rec.BackBends),
		LegRaises:    clamp(rec.LegRaises),
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	r.store.Set(Key(userKey, courseID, workoutID), string(raw))
}

// Percent — единственное место вычисления процента выполнения.
// Тренировка считается выполненной на 100%, только когда все три счётчика
// строго больше нуля, иначе 0. Это бинарный признак "сделаны все три
// упражнения", а не взвешенное среднее.
func Percent(rec Record) int {
	if rec.ForwardBends > 0 && rec.BackBends > 0 && rec.LegRaises > 0 {
		return 100
	}
	return 0
}

// Coerce приводит произвольное JSON-значение к неотрицательному целому.
func Coerce(v any) int {
	switch n := v.(type) {
	case float64:
		return clamp(int(n))
	case int:
		return clamp(n)
	default:
		return 0
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
