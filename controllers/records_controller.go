// Package controllers file: controllers/records_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rpe-portal/logger"
	"rpe-portal/models"
	"rpe-portal/services"
)

// records serves create/update/delete for one keyed collection.
type records[T any] struct {
	coll    *services.Collection[T]
	section services.Section
	param   string
	// setKey stamps key onto rec; an empty key asks for a fresh one.
	setKey func(rec *T, key string)
}

func (r records[T]) create(c *gin.Context) {
	if _, ok := requireSection(c, r.section); !ok {
		return
	}
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondBindError(c, err)
		return
	}
	r.setKey(&rec, "")
	if err := r.coll.Add(rec); err != nil {
		respondError(c, err)
		return
	}
	saved, _ := r.coll.Get(r.coll.Key(rec))
	logger.Info.Printf("[records.create] %s %q added", r.coll.Name(), r.coll.Key(rec))
	c.JSON(http.StatusCreated, saved)
}

func (r records[T]) update(c *gin.Context) {
	if _, ok := requireSection(c, r.section); !ok {
		return
	}
	var rec T
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondBindError(c, err)
		return
	}
	key := c.Param(r.param)
	r.setKey(&rec, key)
	if !r.coll.Update(rec) {
		respondError(c, services.ErrNotFound)
		return
	}
	saved, _ := r.coll.Get(key)
	c.JSON(http.StatusOK, saved)
}

// delete is a no-op for unknown keys.
func (r records[T]) delete(c *gin.Context) {
	if _, ok := requireSection(c, r.section); !ok {
		return
	}
	r.coll.Delete(c.Param(r.param))
	c.Status(http.StatusNoContent)
}

// ---------------- per collection ----------------

func (p *Portal) courseRecords() records[models.Course] {
	return records[models.Course]{
		coll:    p.Content.Courses,
		section: services.SectionCurriculum,
		param:   "code",
		setKey: func(rec *models.Course, key string) {
			// a new course keeps the code it was submitted with
			if key != "" {
				rec.Code = key
			}
		},
	}
}

func (p *Portal) lecturerRecords() records[models.Lecturer] {
	return records[models.Lecturer]{
		coll:    p.Content.Lecturers,
		section: services.SectionLecturers,
		param:   "id",
		setKey:  func(rec *models.Lecturer, key string) { rec.ID = keyOrNew(key) },
	}
}

func (p *Portal) facilityRecords() records[models.Facility] {
	return records[models.Facility]{
		coll:    p.Content.Facilities,
		section: services.SectionFacilities,
		param:   "id",
		setKey:  func(rec *models.Facility, key string) { rec.ID = keyOrNew(key) },
	}
}

func keyOrNew(key string) string {
	if key == "" {
		return services.NewID()
	}
	return key
}

func (p *Portal) CreateCourse(c *gin.Context) { p.courseRecords().create(c) }
func (p *Portal) UpdateCourse(c *gin.Context) { p.courseRecords().update(c) }
func (p *Portal) DeleteCourse(c *gin.Context) { p.courseRecords().delete(c) }
func (p *Portal) CreateLecturer(c *gin.Context) { p.lecturerRecords().create(c) }
func (p *Portal) UpdateLecturer(c *gin.Context) { p.lecturerRecords().update(c) }
func (p *Portal) DeleteLecturer(c *gin.Context) { p.lecturerRecords().delete(c) }
func (p *Portal) CreateFacility(c *gin.Context) { p.facilityRecords().create(c) }
func (p *Portal) UpdateFacility(c *gin.Context) { p.facilityRecords().update(c) }
func (p *Portal) DeleteFacility(c *gin.Context) { p.facilityRecords().delete(c) }
