package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lamnguyen-dev/tilecat-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

func TestHealthLive(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	rec := httptest.NewRecorder()
	HealthLive(cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Tilecat-Env") != "test" {
		t.Fatal("env header missing")
	}
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	logg := testLogger()

	t.Run("all dependencies up", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := HealthReady(cfg, logg, map[string]Pinger{
			"database": &stubPinger{},
			"redis":    &stubPinger{},
		})
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("dependency down", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := HealthReady(cfg, logg, map[string]Pinger{
			"database": &stubPinger{},
			"redis":    &stubPinger{err: errors.New("connection refused")},
		})
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})

	t.Run("nil dependency skipped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := HealthReady(cfg, logg, map[string]Pinger{"redis": nil})
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
