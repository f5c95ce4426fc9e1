package database

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "github.com/glebarez/go-sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skyfitness/internal/models"
)

var (
	db   *sql.DB
	once sync.Once
)

func dbPath() string {
	if path := os.Getenv("SKYFITNESS_DB"); path != "" {
		return path
	}
	return "./skyfitness.db"
}

// GetDB возвращает экземпляр соединения с базой данных
func GetDB() *sql.DB {
	once.Do(func() {
		var err error
		db, err = sql.Open("sqlite", dbPath())
		if err != nil {
			panic(fmt.Sprintf("Не удалось подключиться к базе данных: %v", err))
		}

		createTables()
	})

	return db
}

func createTables() {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password TEXT NOT NULL
		)
	`)
	if err != nil {
		panic(fmt.Sprintf("Ошибка создания таблицы users: %v", err))
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS workout_progress (
			user_email TEXT NOT NULL,
			course_id TEXT NOT NULL,
			workout_id TEXT NOT NULL,
			forward_bends INTEGER NOT NULL DEFAULT 0,
			back_bends INTEGER NOT NULL DEFAULT 0,
			leg_raises INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_email, course_id, workout_id)
		)
	`)
	if err != nil {
		panic(fmt.Sprintf("Ошибка создания таблицы workout_progress: %v", err))
	}
}

// CreateUser создает нового пользователя в базе данных
func CreateUser(email, name, password string) (string, error) {
	// Проверяем, существует ли пользователь с таким email
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("ошибка проверки существования пользователя: %w", err)
	}

	if count > 0 {
		return "", fmt.Errorf("пользователь с email %s уже существует", email)
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	id := uuid.New().String()
	_, err = db.Exec(
		"INSERT INTO users (id, email, name, password) VALUES (?, ?, ?, ?)",
		id, email, name, string(hashedPassword),
	)
	if err != nil {
		return "", fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	return id, nil
}

// GetUserByEmail возвращает пользователя или nil, если такого нет
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := db.QueryRow("SELECT id, email, name, password FROM users WHERE email = ?", email).
		Scan(&user.ID, &user.Email, &user.Name, &user.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return &user, nil
}

// CheckPasswordHash сравнивает пароль и хеш пароля
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SaveProgress сохраняет прогресс тренировки с полной заменой записи
func SaveProgress(userEmail, courseID, workoutID string, forwardBends, backBends, legRaises int) error {
	_, err := db.Exec(`
		INSERT INTO workout_progress (user_email, course_id, workout_id, forward_bends, back_bends, leg_raises)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_email, course_id, workout_id)
		DO UPDATE SET forward_bends = excluded.forward_bends,
			back_bends = excluded.back_bends,
			leg_raises = excluded.leg_raises
	`, userEmail, courseID, workoutID, forwardBends, backBends, legRaises)
	if err != nil {
		return fmt.Errorf("ошибка сохранения прогресса: %w", err)
	}

	return nil
}

// GetProgress возвращает прогресс тренировки; отсутствующая запись - нули
func GetProgress(userEmail, courseID, workoutID string) (forwardBends, backBends, legRaises int, err error) {
	err = db.QueryRow(`
		SELECT forward_bends, back_bends, leg_raises
		FROM workout_progress
		WHERE user_email = ? AND course_id = ? AND workout_id = ?
	`, userEmail, courseID, workoutID).Scan(&forwardBends, &backBends, &legRaises)
	if err == sql.ErrNoRows {
		return 0, 0, 0, nil
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ошибка получения прогресса: %w", err)
	}

	return forwardBends, backBends, legRaises, nil
}
