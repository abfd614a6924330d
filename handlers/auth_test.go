package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, jsonRequest(t, "POST", "/api/auth/login",
		`{"email":"owner@example.com","password":"owner-secret"}`), false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "owner@example.com", resp.User.Email)
	require.Equal(t, "owner", resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, jsonRequest(t, "POST", "/api/auth/login",
		`{"email":"owner@example.com","password":"nope"}`), false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, jsonRequest(t, "POST", "/api/auth/login", `{"email":"owner@example.com"}`), false)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe_WithToken(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, httptest.NewRequest("GET", "/api/auth/me", nil), true)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "owner@example.com")
}

func TestMe_NoToken(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, httptest.NewRequest("GET", "/api/auth/me", nil), false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_GarbageToken(t *testing.T) {
	e := newTestEnv(t)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
