// Package controllers file: controllers/admin_controller.go
package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"rpe-portal/logger"
	"rpe-portal/middleware"
	"rpe-portal/models"
	"rpe-portal/services"
)

// ---------------- admin shell ----------------

type navEntry struct {
	Section services.Section `json:"section"`
	Path    string           `json:"path"`
	Label   string           `json:"label"`
}

// Nav lists the sections the principal may open, labelled in the active language.
func (p *Portal) Nav(c *gin.Context) {
	u, ok := requireSection(c, services.SectionDashboard)
	if !ok {
		return
	}
	lang := middleware.Language(c).Current()
	entries := []navEntry{}
	for _, s := range services.VisibleSections(u.Role) {
		entries = append(entries, navEntry{Section: s.Section, Path: s.Path, Label: s.Label(lang)})
	}
	c.JSON(http.StatusOK, gin.H{"user": u.Public(), "language": lang, "sections": entries})
}

// Updates upgrades to the live change feed.
func (p *Portal) Updates(c *gin.Context) {
	u, ok := requireSection(c, services.SectionDashboard)
	if !ok {
		return
	}
	p.Hub.ServeWs(c.Writer, c.Request, u.Username)
}

// ---------------- news ----------------

type newsRequest struct {
	models.NewsItem
	// GalleryText is the newline separated form of gallery_urls.
	GalleryText *string `json:"gallery_text"`
}

func (r newsRequest) item() models.NewsItem {
	item := r.NewsItem
	if r.GalleryText != nil {
		item.GalleryURLs = models.ParseGalleryText(*r.GalleryText)
	}
	return item
}

// CreateNews publishes an article at the top of the list.
func (p *Portal) CreateNews(c *gin.Context) {
	u, ok := requireSection(c, services.SectionArticles)
	if !ok {
		return
	}
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	item := req.item()
	item.ID = ""
	item = services.NewArticle(item, p.Now())
	if err := p.Content.News.Add(item); err != nil {
		respondError(c, err)
		return
	}
	logger.Info.Printf("[CreateNews] %s published %q", u.Username, item.Title)
	c.JSON(http.StatusCreated, item)
}

// UpdateNews replaces an article. Attachments are managed by their own routes
// and are kept when the body omits them.
func (p *Portal) UpdateNews(c *gin.Context) {
	if _, ok := requireSection(c, services.SectionArticles); !ok {
		return
	}
	id := c.Param("id")
	if _, ok := p.Content.News.Get(id); !ok {
		respondError(c, services.ErrNotFound)
		return
	}
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	item, err := p.Content.News.Modify(id, func(existing models.NewsItem) (models.NewsItem, error) {
		next := req.item()
		next.ID = existing.ID
		if next.Attachments == nil {
			next.Attachments = existing.Attachments
		}
		return next, nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteNews removes an article and, with it, its attachments.
func (p *Portal) DeleteNews(c *gin.Context) {
	if _, ok := requireSection(c, services.SectionArticles); !ok {
		return
	}
	p.Content.News.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// UploadAttachments normalizes the "files" of a multipart form onto an
// article. Files that fail are listed in rejected; the rest are kept.
// Reading happens before the article is locked; only the append runs
// under the collection lock.
func (p *Portal) UploadAttachments(c *gin.Context) {
	if _, ok := requireSection(c, services.SectionArticles); !ok {
		return
	}
	id := c.Param("id")
	item, ok := p.Content.News.Get(id)
	if !ok {
		respondError(c, services.ErrNotFound)
		return
	}
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files selected"})
		return
	}

	res := p.Normalizer.Prepare(services.FromMultipart(form.File["files"]))
	res.Item = item
	if len(res.Added) > 0 {
		res.Item, err = p.Content.News.Modify(id, func(cur models.NewsItem) (models.NewsItem, error) {
			return res.Apply(cur), nil
		})
		if err != nil {
			// deleted while the batch was being read
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, res)
}

// DeleteAttachment drops one attachment from an article.
func (p *Portal) DeleteAttachment(c *gin.Context) {
	if _, ok := requireSection(c, services.SectionArticles); !ok {
		return
	}
	attachmentID := c.Param("attachmentID")
	item, err := p.Content.News.Modify(c.Param("id"), func(cur models.NewsItem) (models.NewsItem, error) {
		next, found := services.RemoveAttachment(cur, attachmentID)
		if !found {
			return cur, errors.Wrapf(services.ErrNotFound, "attachment %q", attachmentID)
		}
		return next, nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ---------------- singletons ----------------

// ReplaceStats swaps in a whole new set of counters.
func (p *Portal) ReplaceStats(c *gin.Context) {
	if _, ok := requireSection(c, services.SectionStatistics); !ok {
		return
	}
	var stats models.Statistics
	if err := c.ShouldBindJSON(&stats); err != nil {
		respondBindError(c, err)
		return
	}
	p.Content.Statistics.Replace(stats)
	c.JSON(http.StatusOK, stats)
}

// UploadCurriculum replaces the curriculum document with the form's "file".
func (p *Portal) UploadCurriculum(c *gin.Context) {
	u, ok := requireSection(c, services.SectionCurriculum)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file selected"})
		return
	}
	doc, err := p.Normalizer.CurriculumDocument(services.FromMultipart([]*multipart.FileHeader{fh})[0], p.Now())
	if err != nil {
		logger.Warn.Printf("[UploadCurriculum] Rejected %s: %v", fh.Filename, err)
		if !errors.Is(err, services.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file could not be read"})
			return
		}
		respondError(c, err)
		return
	}
	p.Content.Curriculum.Replace(doc)
	logger.Info.Printf("[UploadCurriculum] %s uploaded %s", u.Username, doc.Name)
	c.JSON(http.StatusOK, doc)
}
