// Package services file: services/content.go
package services

import (
	"time"

	"github.com/google/uuid"
	"rpe-portal/models"
)

// Collection names used in change events.
const (
	NewsCollection       = "news"
	CourseCollection     = "courses"
	LecturerCollection   = "lecturers"
	FacilityCollection   = "facilities"
	UserCollection       = "users"
	StatisticsCollection = "statistics"
	CurriculumCollection = "curriculum"
)

// Content bundles the independent domain containers of the site.
type Content struct {
	News       *Collection[models.NewsItem]
	Courses    *Collection[models.Course]
	Lecturers  *Collection[models.Lecturer]
	Facilities *Collection[models.Facility]
	Statistics *Singleton[models.Statistics]
	Curriculum *Singleton[models.CurriculumFile]
}

// ContentSeed is the initial data for NewContent.
type ContentSeed struct {
	News       []models.NewsItem
	Courses    []models.Course
	Lecturers  []models.Lecturer
	Facilities []models.Facility
	Statistics models.Statistics
}

// DefaultSeed returns the demo records shipped with the portal.
func DefaultSeed() ContentSeed {
	return ContentSeed{
		News:       models.SeedNews(),
		Courses:    models.SeedCourses(),
		Lecturers:  models.SeedLecturers(),
		Facilities: models.SeedFacilities(),
		Statistics: models.SeedStatistics(),
	}
}

// NewContent builds fresh containers from seed. The curriculum document
// starts absent.
func NewContent(seed ContentSeed) *Content {
	return &Content{
		News: NewCollection(NewsCollection,
			func(n models.NewsItem) string { return n.ID }, Prepend, seed.News),
		Courses: NewCollection(CourseCollection,
			func(c models.Course) string { return c.Code }, Append, seed.Courses,
			WithPrepare(models.Course.WithDerivedCredits)),
		Lecturers: NewCollection(LecturerCollection,
			func(l models.Lecturer) string { return l.ID }, Append, seed.Lecturers),
		Facilities: NewCollection(FacilityCollection,
			func(f models.Facility) string { return f.ID }, Append, seed.Facilities),
		Statistics: NewSingletonWith(StatisticsCollection, seed.Statistics),
		Curriculum: NewSingleton[models.CurriculumFile](CurriculumCollection),
	}
}

// Observables lists every container for subscribers that watch them all.
func (c *Content) Observables() []Observable {
	return []Observable{c.News, c.Courses, c.Lecturers, c.Facilities, c.Statistics, c.Curriculum}
}

// ---------------- news authoring ----------------

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}

// NewArticle fills the defaults of a freshly authored article: id, today's
// date, "Admin" as author, "General" as category and an empty attachment list.
func NewArticle(item models.NewsItem, now time.Time) models.NewsItem {
	if item.ID == "" {
		item.ID = NewID()
	}
	if item.PublishedAt == "" {
		item.PublishedAt = now.Format("2006-01-02")
	}
	if item.AuthorName == "" {
		item.AuthorName = "Admin"
	}
	if item.Category == "" {
		item.Category = models.CategoryGeneral
	}
	if item.Attachments == nil {
		item.Attachments = []models.Attachment{}
	}
	return item
}

// RemoveAttachment drops the attachment with id from item.
func RemoveAttachment(item models.NewsItem, id string) (models.NewsItem, bool) {
	kept := make([]models.Attachment, 0, len(item.Attachments))
	found := false
	for _, a := range item.Attachments {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	item.Attachments = kept
	return item, found
}
