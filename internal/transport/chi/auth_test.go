package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuthMiddleware_Disabled(t *testing.T) {
	h := BearerAuthMiddleware(nil)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with auth disabled, got %d", rec.Code)
	}
}

func TestBearerAuthMiddleware_EmptyKeysFiltered(t *testing.T) {
	// Env expansion can produce empty entries; they must not enable auth.
	h := BearerAuthMiddleware([]string{""})(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestBearerAuthMiddleware_Enabled(t *testing.T) {
	h := BearerAuthMiddleware([]string{"secret-key"})(okHandler())

	tests := []struct {
		name     string
		path     string
		header   string
		wantCode int
	}{
		{"valid key", "/api/v1/products", "Bearer secret-key", http.StatusOK},
		{"missing header", "/api/v1/products", "", http.StatusUnauthorized},
		{"wrong scheme", "/api/v1/products", "Basic secret-key", http.StatusUnauthorized},
		{"invalid key", "/api/v1/products", "Bearer wrong-key", http.StatusUnauthorized},
		{"health exempt", "/health", "", http.StatusOK},
		{"metrics exempt", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}
