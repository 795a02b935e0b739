package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vivendahub/Property-Sales-Backend/internal/api/middleware"
	"github.com/vivendahub/Property-Sales-Backend/internal/testutil"
)

func TestValidateUUIDMiddleware(t *testing.T) {
	newHandler := func(called *bool) http.Handler {
		return middleware.ValidateUUIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			*called = true
			w.WriteHeader(http.StatusOK)
		}))
	}

	t.Run("rejects missing uuid parameter", func(t *testing.T) {
		handlerCalled := false
		mw := newHandler(&handlerCalled)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/unit/", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		if handlerCalled {
			t.Error("Expected request not to complete.")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects malformed uuid", func(t *testing.T) {
		handlerCalled := false
		mw := newHandler(&handlerCalled)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/unit/not-a-uuid",
			map[string]string{"uuid": "not-a-uuid"},
		)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		if handlerCalled {
			t.Error("Expected request not to complete.")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("passes through a valid uuid", func(t *testing.T) {
		handlerCalled := false
		mw := newHandler(&handlerCalled)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/unit/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		if !handlerCalled {
			t.Error("Expected handler to complete.")
		}
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})
}
