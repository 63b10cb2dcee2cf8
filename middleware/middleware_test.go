// file: middleware/middleware_test.go
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rpe-portal/models"
	"rpe-portal/services"
)

// setupTestRouter wires sessions and PortalSession, plus helper routes to
// log in and out through the lifecycle.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))
	router.Use(PortalSession(services.NewUserDirectory(models.SeedUsers())))

	router.GET("/login-as/:user", func(c *gin.Context) {
		if !Lifecycle(c).Login(c.Param("user"), "123") {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusOK)
	})
	router.GET("/logout", func(c *gin.Context) {
		c.String(http.StatusOK, Lifecycle(c).Logout())
	})

	admin := router.Group("/admin", AuthRequired)
	admin.GET("", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	admin.GET("/users", SectionRequired(services.SectionUsers), func(c *gin.Context) {
		c.String(http.StatusOK, "users")
	})
	router.GET("/api/admin/nav", AuthRequired, func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func do(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	// A handler may save the session more than once; like a browser, keep the last cookie.
	latest := map[string]*http.Cookie{}
	for _, ck := range cookies {
		latest[ck.Name] = ck
	}
	for _, ck := range latest {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, user string) []*http.Cookie {
	t.Helper()
	w := do(router, "/login-as/"+user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestAuthRequired_Unauthenticated(t *testing.T) {
	router := setupTestRouter()
	w := do(router, "/admin", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, services.LoginPath, w.Header().Get("Location"))
}

func TestAuthRequired_API(t *testing.T) {
	router := setupTestRouter()
	w := do(router, "/api/admin/nav", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, services.LoginPath, body["redirect"])
}

func TestAuthRequired_Authenticated(t *testing.T) {
	router := setupTestRouter()
	cookies := login(t, router, "mahasiswa")

	w := do(router, "/admin", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}

func TestAuthRequired_AfterLogoutGoesHome(t *testing.T) {
	router := setupTestRouter()
	cookies := login(t, router, "admin")

	w := do(router, "/logout", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, services.HomePath, w.Body.String())
	cookies = w.Result().Cookies()

	w = do(router, "/admin", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, services.HomePath, w.Header().Get("Location"))

	// flag consumed
	w = do(router, "/admin", w.Result().Cookies())
	assert.Equal(t, services.LoginPath, w.Header().Get("Location"))
}

func TestSectionRequired(t *testing.T) {
	router := setupTestRouter()

	w := do(router, "/admin/users", login(t, router, "laboran"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")

	w = do(router, "/admin/users", login(t, router, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "users", w.Body.String())
}
