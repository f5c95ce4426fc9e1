package nav

import (
	"net/url"
	"strings"
)

// Route — имя маршрута приложения.
type Route string

const (
	RouteCourses  Route = "courses"
	RouteCourse   Route = "course"
	RouteProfile  Route = "profile"
	RouteWorkout  Route = "workout"
	RouteLogin    Route = "login"
	RouteNotFound Route = "not-found"
)

// Location — позиция навигации: путь и параметры запроса.
type Location struct {
	Path  string
	Query url.Values
}

// Root — корень каталога, позиция по умолчанию.
func Root() Location {
	return Location{Path: "/"}
}

// Entry — позиция навигации вместе с необязательной фоновой позицией.
// Фоновая позиция живёт только в состоянии навигации и не персистится.
type Entry struct {
	Location   Location
	Background *Location
}

// Match — результат разбора пути.
type Match struct {
	Route  Route
	Params map[string]string
}

// MatchPath разбирает путь в маршрут. Неизвестный путь — RouteNotFound,
// страница "не найдено", а не ошибка.
func MatchPath(path string) Match {
	parts := splitPath(path)

	switch {
	case len(parts) == 0:
		return Match{Route: RouteCourses}
	case len(parts) == 1 && parts[0] == "profile":
		return Match{Route: RouteProfile}
	case len(parts) == 1 && parts[0] == "login":
		return Match{Route: RouteLogin}
	case len(parts) == 2 && parts[0] == "course":
		return Match{Route: RouteCourse, Params: map[string]string{"courseId": parts[1]}}
	case len(parts) == 2 && parts[0] == "workout":
		return Match{Route: RouteWorkout, Params: map[string]string{"workoutId": parts[1]}}
	}
	return Match{Route: RouteNotFound}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// View — решение, что рендерить: базовую позицию и, поверх неё, окно входа.
type View struct {
	Base    Location
	Overlay bool
}

// Resolve решает, как показывать текущую позицию. Вход с фоновой позицией
// рендерится модально поверх фоновой страницы; без неё — отдельной
// страницей. Протухшая фоновая позиция заменяется корнем каталога.
func Resolve(e Entry) View {
	if MatchPath(e.Location.Path).Route != RouteLogin {
		return View{Base: e.Location}
	}
	if e.Background == nil {
		return View{Base: e.Location}
	}

	base := *e.Background
	if MatchPath(base.Path).Route == RouteNotFound {
		base = Root()
	}
	return View{Base: base, Overlay: true}
}

// CloseTarget — позиция, куда вернуться при закрытии окна входа (успех,
// клик по подложке, Escape). Закрытие без авторизации — чистая навигация:
// никакое состояние не трогается.
func CloseTarget(e Entry) Location {
	if e.Background == nil {
		return Root()
	}
	if MatchPath(e.Background.Path).Route == RouteNotFound {
		return Root()
	}
	return *e.Background
}

// LoginEntry строит переход на окно входа с текущей позиции. Позиция
// перехода уходит в фон, чтобы окно открылось поверх неё.
func LoginEntry(from Location, mode string) Entry {
	q := url.Values{}
	if mode != "" {
		q.Set("mode", mode)
	}
	return Entry{
		Location:   Location{Path: "/login", Query: q},
		Background: &from,
	}
}
