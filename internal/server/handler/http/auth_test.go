package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernscene/sitekeeper/internal/kvstore"
)

func TestLoginEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid credentials", `{"username":"admin","password":"admin"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"root","password":"admin"}`, http.StatusUnauthorized},
		{"empty username", `{"username":"","password":"admin"}`, http.StatusBadRequest},
		{"malformed body", `{nope`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, kvstore.NewMemStore())
			rec := srv.do(t, http.MethodPost, "/api/login", strings.NewReader(tt.body))
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "ok", resp["status"])
				assert.Equal(t, "admin", resp["user"])
				assert.True(t, srv.gate.Authenticated())
			} else {
				assert.False(t, srv.gate.Authenticated())
			}
		})
	}
}

func TestLogoutEndpoint(t *testing.T) {
	srv := newTestServer(t, kvstore.NewMemStore())
	srv.login(t)

	rec := srv.do(t, http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, srv.gate.Authenticated())

	// Once logged out the protected surface closes again.
	rec = srv.do(t, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateCredentialsEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"username":"owner","password":"secret","confirmPassword":"secret"}`, http.StatusOK},
		{"confirmation mismatch", `{"username":"owner","password":"secret","confirmPassword":"other"}`, http.StatusBadRequest},
		{"short password", `{"username":"owner","password":"abc","confirmPassword":"abc"}`, http.StatusBadRequest},
		{"empty username", `{"username":"","password":"secret","confirmPassword":"secret"}`, http.StatusBadRequest},
		{"malformed body", `{nope`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, kvstore.NewMemStore())
			srv.login(t)

			rec := srv.do(t, http.MethodPut, "/api/credentials", strings.NewReader(tt.body))
			require.Equal(t, tt.wantStatus, rec.Code)

			user := srv.gate.User()
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "owner", user.Username)
				assert.Equal(t, "secret", user.Password)
			} else {
				assert.Equal(t, "admin", user.Username, "rejected update must not change identity")
			}
		})
	}
}
