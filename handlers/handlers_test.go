package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/api/internal/auth"
	"github.com/devfolio/api/pkg/middleware"

	profilerepo "github.com/devfolio/api/internal/profile/repository"
	profilesvc "github.com/devfolio/api/internal/profile/service"
	projectrepo "github.com/devfolio/api/internal/project/repository"
	projectsvc "github.com/devfolio/api/internal/project/service"
	skillrepo "github.com/devfolio/api/internal/skill/repository"
	skillsvc "github.com/devfolio/api/internal/skill/service"
)

const (
	testOwnerEmail = "owner@example.com"
	testPassword   = "owner-secret"
)

// stubUploader fakes object storage: it records every key and hands back a
// predictable URL.
type stubUploader struct {
	keys []string
}

func (s *stubUploader) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	io.Copy(io.Discard, r)
	s.keys = append(s.keys, key)
	return "https://cdn.test/" + key, nil
}

type testEnv struct {
	router  *gin.Engine
	token   string
	uploads *stubUploader
}

// newTestEnv wires every handler onto a fresh router with in-memory
// repositories and returns a valid owner token.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	gate := auth.NewGate(auth.Owner{Email: testOwnerEmail, PasswordHash: string(hash)}, "test-secret", time.Hour)

	up := &stubUploader{}
	r := gin.New()
	api := r.Group("/api")
	requireAuth := middleware.RequireAuth(gate)

	NewAuthHandler(gate, nil).Register(api, requireAuth)
	NewProjectHandler(projectsvc.NewService(projectrepo.NewMemoryRepo()), up).Register(api, requireAuth)
	NewProfileHandler(profilesvc.NewService(profilerepo.NewMemoryRepo()), up).Register(api, requireAuth)
	NewSkillHandler(skillsvc.NewService(skillrepo.NewMemoryRepo())).Register(api, requireAuth)

	token, _, err := gate.IssueToken(testOwnerEmail, testPassword)
	require.NoError(t, err)

	return &testEnv{router: r, token: token, uploads: up}
}

func (e *testEnv) do(t *testing.T, req *http.Request, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type fileField struct {
	field    string
	filename string
	content  []byte
}

// multipartRequest builds a multipart form request from text fields plus
// optional file parts.
func multipartRequest(t *testing.T, method, url string, fields map[string]string, files ...fileField) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, url, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
