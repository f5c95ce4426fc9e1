package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"skyfitness/internal/authform"
	"skyfitness/internal/catalog"
	"skyfitness/internal/gateway"
	"skyfitness/internal/kvstore"
	"skyfitness/internal/mycourses"
	"skyfitness/internal/progress"
	"skyfitness/internal/session"
)

const usage = `Использование: skyfit <команда> [аргументы]

Команды:
  register <email> <пароль> <повтор>  регистрация
  login <email> <пароль>              вход
  logout                              выход
  whoami                              текущий пользователь
  courses                             каталог курсов
  course <id>                         страница курса
  add <id>                            добавить курс
  remove <id>                         убрать курс
  my                                  мои курсы
  workouts <курс>                     тренировки курса
  progress <курс> <тренировка>        прогресс тренировки
  save <курс> <тренировка> <н> <н> <п>  записать прогресс
`

// app собирает слой состояния клиента: хранилище, сессию, курсы, прогресс
// и шлюз каталога.
type app struct {
	store    *kvstore.Store
	sessions *session.Manager
	courses  *mycourses.Repo
	progress *progress.Repo
	idMap    *catalog.IDMap
	api      *gateway.Client
}

func newApp() *app {
	store := kvstore.Open(statePath())
	sessions := session.NewManager(store)

	return &app{
		store:    store,
		sessions: sessions,
		courses:  mycourses.NewRepo(store),
		progress: progress.NewRepo(store),
		idMap:    catalog.DefaultIDMap(),
		api:      gateway.New(getEnvOrDefault("SKYFITNESS_API", "http://localhost:8081"), sessions.Token),
	}
}

func statePath() string {
	if path := os.Getenv("SKYFITNESS_STATE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "skyfitness-state.json"
	}
	return filepath.Join(home, ".skyfitness", "state.json")
}

func main() {
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err == nil {
			break
		}
	}

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Print(usage)
		os.Exit(2)
	}

	a := newApp()
	ctx := context.Background()

	var err error
	switch args[0] {
	case "register":
		err = a.register(ctx, args[1:])
	case "login":
		err = a.login(ctx, args[1:])
	case "logout":
		a.sessions.Logout()
		fmt.Println("Вы вышли из аккаунта")
	case "whoami":
		err = a.whoami()
	case "courses":
		err = a.listCourses(ctx)
	case "course":
		err = a.showCourse(ctx, args[1:])
	case "add":
		err = a.addCourse(args[1:])
	case "remove":
		err = a.removeCourse(args[1:])
	case "my":
		err = a.myCourses(ctx)
	case "workouts":
		err = a.listWorkouts(ctx, args[1:])
	case "progress":
		err = a.showProgress(args[1:])
	case "save":
		err = a.saveProgress(ctx, args[1:])
	default:
		fmt.Print(usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("использование: skyfit register <email> <пароль> <повтор>")
	}
	email, password, repeat := strings.TrimSpace(args[0]), args[1], args[2]

	if errs := authform.Validate(authform.ModeRegister, email, password, repeat); !errs.OK() {
		return formError(errs, "")
	}

	if err := a.api.Register(ctx, email, password); err != nil {
		errs, common := authform.MapAPIError(err)
		return formError(errs, common)
	}

	fmt.Println("Пользователь создан, теперь выполните вход: skyfit login", email, "<пароль>")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("использование: skyfit login <email> <пароль>")
	}
	email, password := strings.TrimSpace(args[0]), args[1]

	if errs := authform.Validate(authform.ModeLogin, email, password, ""); !errs.OK() {
		return formError(errs, "")
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		errs, common := authform.MapAPIError(err)
		return formError(errs, common)
	}

	name := email
	if i := strings.Index(email, "@"); i > 0 {
		name = email[:i]
	}
	a.sessions.Login(token, session.User{Name: name, Email: email})

	fmt.Println("Вы вошли как", email)
	return nil
}

func (a *app) whoami() error {
	s := a.sessions.CurrentUser()
	if s == nil {
		fmt.Println("Вы не вошли в аккаунт")
		return nil
	}
	fmt.Printf("%s <%s>\n", s.User.Name, session.UserKey(s))
	return nil
}

func (a *app) listCourses(ctx context.Context) error {
	courses, err := a.api.Courses(ctx)
	if err != nil {
		return fmt.Errorf("%s", authform.GenericError)
	}

	for _, c := range courses {
		fmt.Printf("%-8s %s — %s\n", c.ID, c.DisplayTitle(), c.Description)
	}
	return nil
}

func (a *app) showCourse(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("использование: skyfit course <id>")
	}

	course, err := a.api.CourseByID(ctx, args[0])
	if err != nil {
		if apiErr, ok := err.(*gateway.APIError); ok && apiErr.Status == 404 {
			fmt.Println("Курс не найден")
			return nil
		}
		return fmt.Errorf("%s", authform.GenericError)
	}

	fmt.Printf("%s (%d дней)\n", course.DisplayTitle(), course.DurationInDays)
	if d := course.DailyDurationInMinutes; d != nil {
		fmt.Printf("Занятие: %d-%d минут в день\n", d.From, d.To)
	}
	fmt.Println("Подойдет для вас, если:")
	for _, s := range course.Suitable {
		fmt.Println("  -", s)
	}
	fmt.Println("Направления:")
	for _, d := range course.Directions {
		fmt.Println("  -", d)
	}
	return nil
}

// addCourse добавляет курс в список пользователя. Хранится настоящий
// идентификатор каталога: слаг переводится перед записью.
func (a *app) addCourse(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("использование: skyfit add <id>")
	}

	userKey := session.UserKey(a.sessions.CurrentUser())
	if userKey == "" {
		fmt.Println("Войдите, чтобы добавить курс: skyfit login <email> <пароль>")
		return nil
	}

	courseID, ok := a.idMap.CanonicalID(args[0])
	if !ok {
		fmt.Println("Курс не найден")
		return nil
	}

	a.courses.Add(userKey, courseID)
	fmt.Println("Курс добавлен")
	return nil
}

func (a *app) removeCourse(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("использование: skyfit remove <id>")
	}

	userKey := session.UserKey(a.sessions.CurrentUser())
	if userKey == "" {
		fmt.Println("Вы не вошли в аккаунт")
		return nil
	}

	if courseID, ok := a.idMap.CanonicalID(args[0]); ok {
		a.courses.Remove(userKey, courseID)
	}
	fmt.Println("Курс убран")
	return nil
}

func (a *app) myCourses(ctx context.Context) error {
	userKey := session.UserKey(a.sessions.CurrentUser())
	if userKey == "" {
		fmt.Println("Вы не вошли в аккаунт")
		return nil
	}

	ids := a.courses.List(userKey)
	if len(ids) == 0 {
		fmt.Println("Вы пока не добавили ни одного курса")
		return nil
	}

	// Названия берем из каталога; при недоступности сети показываем идентификаторы
	titles := make(map[string]string)
	if courses, err := a.api.Courses(ctx); err == nil {
		for _, c := range courses {
			titles[c.ID] = c.DisplayTitle()
		}
	}

	for _, id := range ids {
		if title, ok := titles[id]; ok {
			fmt.Printf("%-8s %s\n", id, title)
		} else {
			fmt.Println(id)
		}
	}
	return nil
}

func (a *app) listWorkouts(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("использование: skyfit workouts <курс>")
	}

	workouts, err := a.api.CourseWorkouts(ctx, args[0])
	if err != nil {
		if apiErr, ok := err.(*gateway.APIError); ok && apiErr.Status == 404 {
			fmt.Println("Тренировка не найдена")
			return nil
		}
		return fmt.Errorf("%s", authform.GenericError)
	}

	for _, w := range workouts {
		fmt.Printf("%-8s %s (%s) https://youtu.be/%s\n", w.ID, w.Title, w.Subtitle, w.YoutubeID)
	}
	return nil
}

func (a *app) showProgress(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("использование: skyfit progress <курс> <тренировка>")
	}

	userKey := session.UserKey(a.sessions.CurrentUser())
	if userKey == "" {
		fmt.Println("Войдите, чтобы посмотреть прогресс")
		return nil
	}

	courseID, ok := a.idMap.CanonicalID(args[0])
	if !ok {
		fmt.Println("Курс не найден")
		return nil
	}

	rec := a.progress.Get(userKey, courseID, args[1])
	fmt.Printf("Наклоны вперед: %d\nНаклоны назад: %d\nПодъемы ног: %d\nВыполнено: %d%%\n",
		rec.ForwardBends, rec.BackBends, rec.LegRaises, progress.Percent(rec))
	return nil
}

func (a *app) saveProgress(ctx context.Context, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("использование: skyfit save <курс> <тренировка> <наклоны вперед> <наклоны назад> <подъемы ног>")
	}

	userKey := session.UserKey(a.sessions.CurrentUser())
	if userKey == "" {
		fmt.Println("Войдите, чтобы записать прогресс")
		return nil
	}

	courseID, ok := a.idMap.CanonicalID(args[0])
	if !ok {
		fmt.Println("Курс не найден")
		return nil
	}
	workoutID := args[1]

	rec := progress.Record{
		ForwardBends: parseCounter(args[2]),
		BackBends:    parseCounter(args[3]),
		LegRaises:    parseCounter(args[4]),
	}

	a.progress.Set(userKey, courseID, workoutID, rec)

	// Одна попытка синхронизации с сервером; отказ не трогает локальную запись
	if err := a.api.SaveWorkoutProgress(ctx, courseID, workoutID, rec); err != nil {
		fmt.Println("Прогресс сохранен локально.", authform.GenericError)
		return nil
	}

	fmt.Println("Ваш прогресс засчитан!")
	return nil
}

// parseCounter приводит аргумент к неотрицательному целому, как поле формы
func parseCounter(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func formError(errs authform.FieldErrors, common string) error {
	var lines []string
	for _, msg := range []string{errs.Email, errs.Password, errs.RepeatPassword, common} {
		if msg != "" {
			lines = append(lines, msg)
		}
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
