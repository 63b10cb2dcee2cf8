// file: controllers/test_helpers.go
package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"rpe-portal/middleware"
	"rpe-portal/models"
	"rpe-portal/services"
	"rpe-portal/websocket"
)

const testMaxUpload = 16

// testEnv is a fully wired portal over fresh seed data.
type testEnv struct {
	router    *gin.Engine
	portal    *Portal
	staticDir string
}

// setupTestRouter creates a new Gin engine with cookie sessions, the portal
// routes and a static dir holding index.html and app.js.
func setupTestRouter(t *testing.T, gen services.Generator) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	dir := services.NewUserDirectory(models.SeedUsers())
	router.Use(middleware.PortalSession(dir))

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>spa</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log(1)"), 0o644))

	portal := NewPortal(
		services.NewContent(services.DefaultSeed()),
		services.NewUserManager(dir),
		services.NewNormalizer(testMaxUpload),
		services.NewChatService(gen),
		websocket.NewHub(nil),
		"http://localhost:3000",
	)
	portal.RegisterRoutes(router, staticDir)
	return &testEnv{router: router, portal: portal, staticDir: staticDir}
}

// SetSession sets the given key/value pairs in the session using a helper route
// and returns the session cookie that can be attached to subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}

// serve runs one request. Like a browser, only the last cookie per name is sent.
func (e *testEnv) serve(req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	latest := map[string]*http.Cookie{}
	for _, ck := range cookies {
		latest[ck.Name] = ck
	}
	for _, ck := range latest {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) do(method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		r = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.serve(req, cookies)
}

// login signs in a seeded account (password "123") and returns its cookies.
func (e *testEnv) login(t *testing.T, username string) []*http.Cookie {
	t.Helper()
	w := e.do(http.MethodPost, "/api/auth/login", gin.H{"username": username, "password": "123"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w.Result().Cookies()
}

type upload struct {
	name, mediaType string
	data            []byte
}

func (e *testEnv) upload(method, path, field string, files []upload, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + f.name + `"`}
		h["Content-Type"] = []string{f.mediaType}
		part, _ := mw.CreatePart(h)
		_, _ = part.Write(f.data)
	}
	_ = mw.Close()

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return e.serve(req, cookies)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
