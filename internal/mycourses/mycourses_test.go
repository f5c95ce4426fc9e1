package mycourses

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfitness/internal/kvstore"
)

func newTestRepo(t *testing.T) (*Repo, *kvstore.Store) {
	t.Helper()
	store := kvstore.Open(filepath.Join(t.TempDir(), "state.json"))
	return NewRepo(store), store
}

func TestAddIsIdempotent(t *testing.T) {
	r, _ := newTestRepo(t)

	r.Add("a@b.com", "ab1c3f")
	r.Add("a@b.com", "ab1c3f")

	assert.Equal(t, []string{"ab1c3f"}, r.List("a@b.com"))
	assert.True(t, r.Has("a@b.com", "ab1c3f"))
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	r, _ := newTestRepo(t)

	r.Add("a@b.com", "kfpq8e")
	r.Add("a@b.com", "ab1c3f")
	r.Add("a@b.com", "ypox9r")

	assert.Equal(t, []string{"kfpq8e", "ab1c3f", "ypox9r"}, r.List("a@b.com"))
}

func TestRemove(t *testing.T) {
	r, _ := newTestRepo(t)

	r.Add("a@b.com", "ab1c3f")
	r.Add("a@b.com", "kfpq8e")

	r.Remove("a@b.com", "ab1c3f")
	assert.Equal(t, []string{"kfpq8e"}, r.List("a@b.com"))

	// Повторное удаление - no-op
	r.Remove("a@b.com", "ab1c3f")
	assert.Equal(t, []string{"kfpq8e"}, r.List("a@b.com"))
}

func TestPartitionIsolation(t *testing.T) {
	r, _ := newTestRepo(t)

	r.Add("a@b.com", "ab1c3f")
	r.Add("c@d.com", "kfpq8e")

	r.Remove("c@d.com", "kfpq8e")
	r.Add("c@d.com", "ypox9r")

	// Операции над другим пользователем и другим курсом не влияют на a@b.com
	assert.True(t, r.Has("a@b.com", "ab1c3f"))
	assert.Equal(t, []string{"ab1c3f"}, r.List("a@b.com"))
	assert.Equal(t, []string{"ypox9r"}, r.List("c@d.com"))
}

func TestEmptyUserKeyNeverWrites(t *testing.T) {
	r, store := newTestRepo(t)

	r.Add("", "ab1c3f")
	r.Remove("", "ab1c3f")

	assert.Empty(t, r.List(""))
	assert.False(t, r.Has("", "ab1c3f"))

	// Ни общего, ни пользовательского ключа не появилось
	_, ok := store.Get("myCourses:")
	assert.False(t, ok)
}

func TestIdempotentAddDoesNotNotify(t *testing.T) {
	r, store := newTestRepo(t)
	r.Add("a@b.com", "ab1c3f")

	ch, unsubscribe := store.Notifier().Subscribe()
	defer unsubscribe()

	r.Add("a@b.com", "ab1c3f")
	select {
	case <-ch:
		t.Fatal("повторное добавление не должно рассылать сигнал")
	default:
	}

	r.Add("a@b.com", "kfpq8e")
	select {
	case <-ch:
	default:
		t.Fatal("ожидался сигнал после настоящего добавления")
	}
}

func TestCorruptListTreatedAsEmpty(t *testing.T) {
	r, store := newTestRepo(t)

	store.Set("myCourses:a@b.com", "{broken")
	assert.Empty(t, r.List("a@b.com"))

	// Элементы не-строки пропускаются
	store.Set("myCourses:a@b.com", `["ab1c3f", 42, null, "kfpq8e"]`)
	assert.Equal(t, []string{"ab1c3f", "kfpq8e"}, r.List("a@b.com"))
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	r := NewRepo(kvstore.Open(path))
	r.Add("a@b.com", "ab1c3f")

	reopened := NewRepo(kvstore.Open(path))
	require.Equal(t, []string{"ab1c3f"}, reopened.List("a@b.com"))
}
