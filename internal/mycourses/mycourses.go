package mycourses

import (
	"encoding/json"

	"skyfitness/internal/kvstore"
)

// Префикс ключа хранилища. Менять нельзя: по нему находят свои курсы
// вернувшиеся пользователи.
const keyPrefix = "myCourses:"

// Repo — набор добавленных курсов, секционированный по ключу пользователя.
// Хранится настоящий идентификатор курса из каталога, не слаг: слаг —
// проекция вида курса "многие к одному" и не годится в ключ.
type Repo struct {
	store *kvstore.Store
}

func NewRepo(store *kvstore.Store) *Repo {
	return &Repo{store: store}
}

func storeKey(userKey string) string {
	return keyPrefix + userKey
}

// List возвращает идентификаторы добавленных курсов в порядке добавления.
func (r *Repo) List(userKey string) []string {
	return r.readIDs(userKey)
}

// Has сообщает, добавлен ли курс.
func (r *Repo) Has(userKey, courseID string) bool {
	for _, id := range r.readIDs(userKey) {
		if id == courseID {
			return true
		}
	}
	return false
}

// Add добавляет курс в конец списка. Идемпотентна: повторное добавление
// не пишет в хранилище и не рассылает сигнал.
func (r *Repo) Add(userKey, courseID string) {
	if userKey == "" {
		return
	}

	ids := r.readIDs(userKey)
	for _, id := range ids {
		if id == courseID {
			return
		}
	}

	r.writeIDs(userKey, append(ids, courseID))
}

// Remove удаляет курс из списка. Отсутствующий курс — no-op.
func (r *Repo) Remove(userKey, courseID string) {
	if userKey == "" {
		return
	}

	ids := r.readIDs(userKey)
	kept := ids[:0]
	for _, id := range ids {
		if id != courseID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(ids) {
		return
	}

	r.writeIDs(userKey, kept)
}

// readIDs читает сохранённый список. Повреждённое значение или элементы
// не-строки считаются отсутствующими.
func (r *Repo) readIDs(userKey string) []string {
	if userKey == "" {
		return nil
	}

	raw, ok := r.store.Get(storeKey(userKey))
	if !ok {
		return nil
	}

	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	ids := make([]string, 0, len(parsed))
	for _, v := range parsed {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *Repo) writeIDs(userKey string, ids []string) {
	if userKey == "" {
		return
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	r.store.Set(storeKey(userKey), string(raw))
}
