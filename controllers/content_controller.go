// Package controllers file: controllers/content_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rpe-portal/middleware"
	"rpe-portal/services"
)

// ---------------- public content ----------------

// ListNews returns articles newest first.
func (p *Portal) ListNews(c *gin.Context) {
	c.JSON(http.StatusOK, p.Content.News.List())
}

// GetNews returns one article or a not found body with a way back.
func (p *Portal) GetNews(c *gin.Context) {
	item, ok := p.Content.News.Get(c.Param("id"))
	if !ok {
		respondError(c, services.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (p *Portal) ListCourses(c *gin.Context) {
	c.JSON(http.StatusOK, p.Content.Courses.List())
}

func (p *Portal) ListLecturers(c *gin.Context) {
	c.JSON(http.StatusOK, p.Content.Lecturers.List())
}

func (p *Portal) ListFacilities(c *gin.Context) {
	c.JSON(http.StatusOK, p.Content.Facilities.List())
}

// GetStats returns the homepage counters.
func (p *Portal) GetStats(c *gin.Context) {
	stats, _ := p.Content.Statistics.Get()
	c.JSON(http.StatusOK, stats)
}

// GetCurriculum returns the curriculum document, 404 until one is uploaded.
func (p *Portal) GetCurriculum(c *gin.Context) {
	doc, ok := p.Content.Curriculum.Get()
	if !ok {
		respondError(c, services.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ---------------- language ----------------

type languageRequest struct {
	Language string `json:"language"`
}

// GetLanguage reports the display language of this browser.
func GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": middleware.Language(c).Current()})
}

// SetLanguage stores the requested language, or toggles it when none is given.
func SetLanguage(c *gin.Context) {
	var req languageRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	store := middleware.Language(c)
	lang := req.Language
	var err error
	if lang == "" {
		lang, err = store.Toggle()
	} else {
		err = store.Set(lang)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang})
}
