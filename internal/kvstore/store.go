package kvstore

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store — персистентное строковое хранилище ключ-значение поверх JSON-файла.
// Семантика как у localStorage: все операции синхронные и не возвращают
// ошибок вызывающему, повреждённые данные считаются отсутствующими.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]string
	raw  []byte // последнее сериализованное состояние, для обнаружения внешних изменений

	notifier *Notifier
}

// Open открывает хранилище по указанному пути. Отсутствующий или
// нечитаемый файл даёт пустое хранилище.
func Open(path string) *Store {
	s := &Store{
		path:     path,
		data:     make(map[string]string),
		notifier: NewNotifier(),
	}
	s.loadLocked()
	return s
}

// Notifier возвращает широковещательный сигнал изменения состояния.
// Сигнал срабатывает на каждой успешной мутации.
func (s *Store) Notifier() *Notifier {
	return s.notifier
}

// Get возвращает значение по ключу и признак его наличия.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Set записывает значение и рассылает сигнал изменения.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	s.data[key] = value
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Notify()
}

// Remove удаляет ключ и рассылает сигнал изменения.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Notify()
}

// loadLocked читает файл хранилища. Ошибка чтения или разбора не
// распространяется: хранилище остаётся пустым.
func (s *Store) loadLocked() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	parsed := make(map[string]string)
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("хранилище %s повреждено, данные считаются отсутствующими: %v", s.path, err)
		return
	}

	s.data = parsed
	s.raw = raw
}

func (s *Store) persistLocked() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		log.Printf("ошибка сериализации хранилища: %v", err)
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("ошибка создания каталога хранилища: %v", err)
			return
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		log.Printf("ошибка записи хранилища: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Printf("ошибка записи хранилища: %v", err)
		return
	}

	s.raw = raw
}

// Watch отслеживает внешние изменения файла хранилища (другая вкладка,
// другой процесс) и перечитывает данные, рассылая сигнал изменения.
// Согласованность между процессами — best effort, побеждает последняя запись.
func (s *Store) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.reloadIfChanged() {
				s.notifier.Notify()
			}
		}
	}
}

func (s *Store) reloadIfChanged() bool {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if string(raw) == string(s.raw) {
		return false
	}

	parsed := make(map[string]string)
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return false
	}

	s.data = parsed
	s.raw = raw
	return true
}
