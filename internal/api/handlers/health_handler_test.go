package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventware/survey-go/internal/api/handlers"
	"github.com/eventware/survey-go/internal/application"
	"github.com/eventware/survey-go/internal/repository"
	"github.com/eventware/survey-go/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestRootBanner(t *testing.T) {
	e := setup(t)

	w := e.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "Survey Microservices", body["message"])
	require.Equal(t, "running", body["statusCode"])
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		e := setup(t)
		w := e.do(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		require.Equal(t, "healthy", body["status"])
		require.Equal(t, "connected", body["database"])
	})

	t.Run("unhealthy when the store is unreachable", func(t *testing.T) {
		repos := &repository.Repos{}
		h := handlers.New(application.New(repos), stubPinger{err: errors.New("no reachable servers")})
		router := testutils.SetupRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		body := decode(t, w)
		require.Equal(t, "unhealthy", body["status"])
		require.Equal(t, "disconnected", body["database"])
	})
}
