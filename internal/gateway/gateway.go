package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skyfitness/internal/catalog"
	"skyfitness/internal/progress"
)

// APIError — отказ удалённого сервиса: статус и сообщение из тела ответа.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %d", e.Status)
}

// Client — клиент удалённого каталога курсов. Токен подставляется в каждый
// запрос, если источник токена вернул непустую строку.
type Client struct {
	baseURL string
	http    *http.Client
	tokenFn func() string
}

// New создаёт клиента. tokenFn может быть nil — тогда запросы уходят
// без авторизации.
func New(baseURL string, tokenFn func() string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		tokenFn: tokenFn,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка сериализации запроса: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка запроса %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка разбора ответа %s %s: %w", method, path, err)
	}
	return nil
}

// readErrorMessage достаёт сообщение из тела ошибки: поле message, если
// тело — JSON, иначе сырой текст.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ""
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(raw))
}

// Courses возвращает список курсов каталога.
func (c *Client) Courses(ctx context.Context) ([]catalog.Course, error) {
	var out []catalog.Course
	if err := c.do(ctx, http.MethodGet, "/api/fitness/courses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CourseByID возвращает курс с деталями страницы.
func (c *Client) CourseByID(ctx context.Context, id string) (*catalog.CourseDetails, error) {
	var out catalog.CourseDetails
	if err := c.do(ctx, http.MethodGet, "/api/fitness/courses/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CourseWorkouts возвращает тренировки курса.
func (c *Client) CourseWorkouts(ctx context.Context, courseID string) ([]catalog.Workout, error) {
	var out []catalog.Workout
	if err := c.do(ctx, http.MethodGet, "/api/fitness/courses/"+courseID+"/workouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// progressPayload — проводной формат прогресса: три счётчика в массиве,
// порядок фиксирован — наклоны вперёд, наклоны назад, подъёмы ног.
type progressPayload struct {
	ProgressData []json.Number `json:"progressData"`
}

// WorkoutProgress возвращает серверный прогресс тренировки.
func (c *Client) WorkoutProgress(ctx context.Context, courseID, workoutID string) (progress.Record, error) {
	var out progressPayload
	path := "/api/fitness/courses/" + courseID + "/workouts/" + workoutID + "/progress"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return progress.Record{}, err
	}

	rec := progress.Record{}
	counters := []*int{&rec.ForwardBends, &rec.BackBends, &rec.LegRaises}
	for i, dst := range counters {
		if i < len(out.ProgressData) {
			if n, err := out.ProgressData[i].Float64(); err == nil {
				*dst = progress.Coerce(n)
			}
		}
	}
	return rec, nil
}

// SaveWorkoutProgress сохраняет прогресс тренировки на сервере.
func (c *Client) SaveWorkoutProgress(ctx context.Context, courseID, workoutID string, rec progress.Record) error {
	payload := map[string][]int{
		"progressData": {rec.ForwardBends, rec.BackBends, rec.LegRaises},
	}
	path := "/api/fitness/courses/" + courseID + "/workouts/" + workoutID + "/progress"
	return c.do(ctx, http.MethodPatch, path, payload, nil)
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Login обменивает учётные данные на токен.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/fitness/auth/login", authRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register создаёт пользователя. Токен не возвращается: после регистрации
// клиент выполняет обычный вход.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/fitness/auth/register", authRequest{Email: email, Password: password}, nil)
}
