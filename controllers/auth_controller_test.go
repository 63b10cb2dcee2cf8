// controllers/auth_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rpe-portal/models"
	"rpe-portal/services"
)

type authResponse struct {
	User     models.User `json:"user"`
	Redirect string      `json:"redirect"`
}

func TestLogin_Success(t *testing.T) {
	env := setupTestRouter(t, nil)
	w := env.do(http.MethodPost, "/api/auth/login", gin.H{"username": "Admin", "password": "123"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[authResponse](t, w)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Empty(t, resp.User.Password)
	assert.Equal(t, services.AdminHomePath, resp.Redirect)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := setupTestRouter(t, nil)
	for _, body := range []gin.H{
		{"username": "admin", "password": "wrong"},
		{"username": "nobody", "password": "123"},
	} {
		w := env.do(http.MethodPost, "/api/auth/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid username or password"}`, w.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	env := setupTestRouter(t, nil)
	w := env.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "is required", body.Fields["password"])
}

func TestMe(t *testing.T) {
	env := setupTestRouter(t, nil)
	w := env.do(http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/api/auth/me", nil, env.login(t, "dosen"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleLecturer, decode[authResponse](t, w).User.Role)
}

func TestMe_RestoredFromStoredPrincipal(t *testing.T) {
	env := setupTestRouter(t, nil)
	stored, _ := json.Marshal(models.User{ID: "u4", Username: "laboran", Role: models.RoleLaboran})
	cookie := SetSession(env.router, "/set-session", map[string]interface{}{services.CurrentUserKey: string(stored)})
	require.NotNil(t, cookie)

	w := env.do(http.MethodGet, "/api/auth/me", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "laboran", decode[authResponse](t, w).User.Username)
}

func TestLogout_RedirectsHome(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "admin")

	w := env.do(http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.HomePath, decode[authResponse](t, w).Redirect)
	cookies = append(cookies, w.Result().Cookies()...)

	// the admin shell re-renders before the browser has left it
	w = env.do(http.MethodGet, "/admin/articles", nil, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, services.HomePath, w.Header().Get("Location"))

	w = env.do(http.MethodGet, "/api/auth/me", nil, cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_LaterAdminVisitGoesToLogin(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "admin")

	w := env.do(http.MethodPost, "/api/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	cookies = append(cookies, w.Result().Cookies()...)

	// the browser lands on the public site and browses a while
	w = env.do(http.MethodGet, services.HomePath, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	cookies = append(cookies, w.Result().Cookies()...)
	w = env.do(http.MethodGet, "/api/news", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	cookies = append(cookies, w.Result().Cookies()...)

	w = env.do(http.MethodGet, "/admin/articles", nil, cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, services.LoginPath, w.Header().Get("Location"))
}
