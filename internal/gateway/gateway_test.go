package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyfitness/internal/progress"
)

func TestBearerAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "token-123" })
	_, err := c.Courses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)

	// Без токена заголовок не ставится
	c = New(srv.URL, func() string { return "" })
	_, err = c.Courses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestNon2xxYieldsAPIErrorWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Course not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.CourseByID(context.Background(), "zzz")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Course not found", apiErr.Message)
}

func TestNon2xxPlainBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Courses(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.Equal(t, "upstream down", apiErr.Error())
}

func TestEmptyErrorBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Courses(context.Background())
	require.Error(t, err)
	assert.Equal(t, "request failed: 500", err.Error())
}

func TestWorkoutProgressRoundTrip(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string][]int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		switch r.Method {
		case http.MethodPatch:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(gotBody)
		default:
			json.NewEncoder(w).Encode(map[string][]int{"progressData": {10, 20, 30}})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "token-123" })

	rec, err := c.WorkoutProgress(context.Background(), "ab1c3f", "day-1")
	require.NoError(t, err)
	assert.Equal(t, progress.Record{ForwardBends: 10, BackBends: 20, LegRaises: 30}, rec)
	assert.Equal(t, "/api/fitness/courses/ab1c3f/workouts/day-1/progress", gotPath)

	err = c.SaveWorkoutProgress(context.Background(), "ab1c3f", "day-1", progress.Record{ForwardBends: 1, BackBends: 2, LegRaises: 3})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, map[string][]int{"progressData": {1, 2, 3}}, gotBody)
}

func TestWorkoutProgressShortArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string][]int{"progressData": {5}})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	rec, err := c.WorkoutProgress(context.Background(), "ab1c3f", "day-1")
	require.NoError(t, err)
	assert.Equal(t, progress.Record{ForwardBends: 5}, rec)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req["email"])
		json.NewEncoder(w).Encode(map[string]string{"token": "token-123"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	token, err := c.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
}

func TestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL, nil)
	_, err := c.Courses(ctx)
	assert.Error(t, err)
}
