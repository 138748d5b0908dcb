package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeSession struct {
	active bool
}

func (s *fakeSession) Authenticated() bool { return s.active }

func TestSessionAuth(t *testing.T) {
	tests := []struct {
		name       string
		active     bool
		wantStatus int
	}{
		{"active session passes", true, http.StatusOK},
		{"no session rejected", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			handler := SessionAuth(&fakeSession{active: tt.active})(next)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/content/hero", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.active {
				t.Errorf("next handler called = %v; want %v", called, tt.active)
			}
		})
	}
}
