package nav_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfitness/internal/kvstore"
	"skyfitness/internal/mycourses"
	"skyfitness/internal/nav"
	"skyfitness/internal/session"
)

// Сценарий: гость на странице курса нажимает "добавить", попадает в окно
// входа поверх страницы, входит и возвращается на курс, который теперь
// добавлен в его список.
func TestAddCourseThroughLoginOverlay(t *testing.T) {
	store := kvstore.Open(filepath.Join(t.TempDir(), "state.json"))
	sessions := session.NewManager(store)
	courses := mycourses.NewRepo(store)

	coursePage := nav.Location{Path: "/course/ab1c3f"}

	// Гость: добавление невозможно, вместо него переход на вход
	userKey := session.UserKey(sessions.CurrentUser())
	require.Equal(t, "", userKey)

	entry := nav.LoginEntry(coursePage, "login")
	view := nav.Resolve(entry)
	assert.True(t, view.Overlay)
	assert.Equal(t, coursePage, view.Base)

	// Пустой ключ пользователя не оставляет следов в хранилище
	courses.Add(userKey, "ab1c3f")
	assert.Empty(t, courses.List(""))

	// Вход завершился успешно, окно закрывается на фоновую страницу
	sessions.Login("token-123", session.User{Name: "a", Email: "a@b.com"})
	assert.Equal(t, coursePage, nav.CloseTarget(entry))

	// Повтор действия уже под пользователем
	userKey = session.UserKey(sessions.CurrentUser())
	require.Equal(t, "a@b.com", userKey)
	courses.Add(userKey, "ab1c3f")

	assert.Equal(t, []string{"ab1c3f"}, courses.List("a@b.com"))
}

// Закрытие окна входа по Escape или клику по подложке - чистая навигация:
// сессия и список курсов не меняются.
func TestDismissLoginOverlayMutatesNothing(t *testing.T) {
	store := kvstore.Open(filepath.Join(t.TempDir(), "state.json"))
	sessions := session.NewManager(store)
	courses := mycourses.NewRepo(store)

	from := nav.Location{Path: "/course/ab1c3f"}
	entry := nav.LoginEntry(from, "login")

	ch, unsubscribe := store.Notifier().Subscribe()
	defer unsubscribe()

	target := nav.CloseTarget(entry)
	assert.Equal(t, from, target)

	// Никаких сигналов изменения состояния от закрытия
	select {
	case <-ch:
		t.Fatal("закрытие окна входа не должно трогать состояние")
	default:
	}
	assert.Nil(t, sessions.CurrentUser())
	assert.Empty(t, courses.List("a@b.com"))
}
