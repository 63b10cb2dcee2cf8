// controllers/admin_controller_test.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rpe-portal/models"
	"rpe-portal/services"
)

func TestAdmin_Unauthenticated(t *testing.T) {
	env := setupTestRouter(t, nil)
	w := env.do(http.MethodGet, "/api/admin/nav", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthenticated","redirect":"/admin/login"}`, w.Body.String())
}

func TestNav_PerRole(t *testing.T) {
	env := setupTestRouter(t, nil)

	type navResponse struct {
		Sections []navEntry `json:"sections"`
	}
	w := env.do(http.MethodGet, "/api/admin/nav", nil, env.login(t, "laboran"))
	require.Equal(t, http.StatusOK, w.Code)
	got := []services.Section{}
	for _, s := range decode[navResponse](t, w).Sections {
		got = append(got, s.Section)
	}
	assert.Equal(t, []services.Section{services.SectionDashboard, services.SectionArticles, services.SectionFacilities}, got)
}

func TestNav_LabelsFollowLanguage(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "admin")
	w := env.do(http.MethodPost, "/api/language", gin.H{"language": "en"}, cookies)
	cookies = append(cookies, w.Result().Cookies()...)

	w = env.do(http.MethodGet, "/api/admin/nav", nil, cookies)
	assert.Contains(t, w.Body.String(), `"label":"Users"`)
	assert.Contains(t, w.Body.String(), `"language":"en"`)
}

func TestSectionAccessDenied(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "mahasiswa")

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPut, "/api/admin/stats"},
		{http.MethodPost, "/api/admin/lecturers"},
		{http.MethodPost, "/api/admin/facilities"},
		{http.MethodPost, "/api/admin/courses"},
	} {
		w := env.do(req.method, req.path, gin.H{}, cookies)
		assert.Equal(t, http.StatusForbidden, w.Code, req.path)
		assert.Contains(t, w.Body.String(), "access denied", req.path)
	}
}

func TestHandlerRechecksSection(t *testing.T) {
	env := setupTestRouter(t, nil)
	// mounted without the route-level gate
	env.router.GET("/direct/users", env.portal.ListUsers)

	w := env.do(http.MethodGet, "/direct/users", nil, env.login(t, "dosen"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateNews_Prepends(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "mahasiswa")

	w := env.do(http.MethodPost, "/api/admin/news", gin.H{
		"title":        "Kuliah Umum",
		"content":      "Isi",
		"gallery_text": " https://a.example/1.jpg \n\n https://a.example/2.jpg",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.NewsItem](t, w)
	assert.Equal(t, "Admin", created.AuthorName)
	assert.Equal(t, models.CategoryGeneral, created.Category)
	assert.Equal(t, []string{"https://a.example/1.jpg", "https://a.example/2.jpg"}, created.GalleryURLs)

	news := env.portal.Content.News.List()
	assert.Equal(t, created.ID, news[0].ID)
}

func TestCreateNews_Validation(t *testing.T) {
	env := setupTestRouter(t, nil)
	w := env.do(http.MethodPost, "/api/admin/news", gin.H{"title": "x", "content": "y", "category": "Gossip"}, env.login(t, "admin"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"category"`)
}

func TestUpdateAndDeleteNews(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "admin")

	w := env.do(http.MethodPut, "/api/admin/news/2", gin.H{"title": "Baru", "content": "Isi"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	got, _ := env.portal.Content.News.Get("2")
	assert.Equal(t, "Baru", got.Title)

	w = env.do(http.MethodPut, "/api/admin/news/nope", gin.H{"title": "Baru", "content": "Isi"}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, "/api/admin/news/2", nil, cookies)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(http.MethodDelete, "/api/admin/news/2", nil, cookies)
	assert.Equal(t, http.StatusNoContent, w.Code, "deleting a missing key is a no-op")
	assert.Equal(t, 2, env.portal.Content.News.Len())
}

func TestUploadAttachments(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "admin")
	require.NoError(t, env.portal.Content.News.Add(models.NewsItem{ID: "blank", Title: "t", Content: "c"}))

	w := env.upload(http.MethodPost, "/api/admin/news/blank/attachments", "files", []upload{
		{"doc.pdf", "application/pdf", []byte("%PDF-1")},
		{"big.jpg", "image/jpeg", []byte(strings.Repeat("x", testMaxUpload+1))},
		{"cover.jpg", "image/jpeg", []byte("jpeg")},
		{"clip.mp4", "video/mp4", []byte("mp4")},
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[services.BatchResult](t, w)
	assert.Len(t, res.Added, 3)
	assert.Equal(t, []services.Rejection{{File: "big.jpg", Reason: services.ErrFileTooLarge.Error()}}, res.Rejected)

	item, _ := env.portal.Content.News.Get("blank")
	require.Len(t, item.Attachments, 3)
	assert.Equal(t, item.Attachments[1].URL, item.ImageURL)
	assert.Equal(t, models.KindVideo, item.Attachments[2].Type)

	w = env.do(http.MethodDelete, "/api/admin/news/blank/attachments/"+item.Attachments[0].ID, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	item, _ = env.portal.Content.News.Get("blank")
	assert.Len(t, item.Attachments, 2)

	w = env.do(http.MethodDelete, "/api/admin/news/blank/attachments/unknown", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadAttachments_ConcurrentBatchesAllKept(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "admin")
	require.NoError(t, env.portal.Content.News.Add(models.NewsItem{ID: "busy", Title: "t", Content: "c"}))
	const batches = 20

	var wg sync.WaitGroup
	for i := 0; i < batches; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := env.upload(http.MethodPost, "/api/admin/news/busy/attachments", "files", []upload{
				{fmt.Sprintf("f%d.txt", i), "text/plain", []byte("x")},
			}, cookies)
			assert.Equal(t, http.StatusOK, w.Code)
		}(i)
	}
	wg.Wait()

	item, _ := env.portal.Content.News.Get("busy")
	assert.Len(t, item.Attachments, batches)
}

func TestUploadAttachments_NoFiles(t *testing.T) {
	env := setupTestRouter(t, nil)
	w := env.upload(http.MethodPost, "/api/admin/news/1/attachments", "files", nil, env.login(t, "admin"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadCurriculum(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "dosen")

	w := env.upload(http.MethodPut, "/api/admin/curriculum", "file", []upload{{"big.pdf", "application/pdf", []byte(strings.Repeat("x", 100))}}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, ok := env.portal.Content.Curriculum.Get()
	assert.False(t, ok)

	w = env.upload(http.MethodPut, "/api/admin/curriculum", "file", []upload{{"kurikulum.pdf", "application/pdf", []byte("%PDF")}}, cookies)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/api/curriculum", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc := decode[models.CurriculumFile](t, w)
	assert.Equal(t, "kurikulum.pdf", doc.Name)
	assert.True(t, strings.HasPrefix(doc.URL, "data:application/pdf;base64,"))
}

func TestCourses_CreditsDerived(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "dosen")

	w := env.do(http.MethodPost, "/api/admin/courses", gin.H{
		"code": "RPE900", "name": "Energi Nuklir", "credits": 42,
		"credits_theory": 2, "credits_seminar": 0, "credits_practicum": 1,
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 3, decode[models.Course](t, w).Credits)

	w = env.do(http.MethodPost, "/api/admin/courses", gin.H{"code": "RPE900", "name": "dup"}, cookies)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(http.MethodPut, "/api/admin/courses/RPE900", gin.H{
		"code": "ignored", "name": "Energi Nuklir", "credits_theory": 3, "credits_seminar": 1, "credits_practicum": 2,
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Course](t, w)
	assert.Equal(t, "RPE900", got.Code)
	assert.Equal(t, 6, got.Credits)
}

func TestLecturersAndFacilities(t *testing.T) {
	env := setupTestRouter(t, nil)

	w := env.do(http.MethodPost, "/api/admin/facilities", gin.H{"name": "Lab Surya", "capacity": 20}, env.login(t, "laboran"))
	require.Equal(t, http.StatusCreated, w.Code)
	f := decode[models.Facility](t, w)
	assert.NotEmpty(t, f.ID)
	list := env.portal.Content.Facilities.List()
	assert.Equal(t, f.ID, list[len(list)-1].ID, "facilities append")

	cookies := env.login(t, "admin")
	w = env.do(http.MethodPost, "/api/admin/lecturers", gin.H{"name": "Dr. Baru", "email": "not-an-email"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/api/admin/lecturers/l2", gin.H{"name": "Siti Aminah, Ph.D."}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	l, _ := env.portal.Content.Lecturers.Get("l2")
	assert.Equal(t, "Siti Aminah, Ph.D.", l.Name)

	w = env.do(http.MethodDelete, "/api/admin/lecturers/l2", nil, cookies)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 2, env.portal.Content.Lecturers.Len())
}

func TestReplaceStats(t *testing.T) {
	env := setupTestRouter(t, nil)
	cookies := env.login(t, "admin")

	w := env.do(http.MethodPut, "/api/admin/stats", gin.H{"students": "500+"}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code, "partial patches are rejected")

	want := models.Statistics{Students: "500+", Courses: "50", Awards: "30+", Employment: "95%"}
	w = env.do(http.MethodPut, "/api/admin/stats", want, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	got, _ := env.portal.Content.Statistics.Get()
	assert.Equal(t, want, got)
}
