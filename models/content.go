// Package models file: models/content.go
package models

import "strings"

// ----------------------- attachments -----------------------

// AttachmentKind is the coarse media classification of an uploaded file.
type AttachmentKind string

const (
	KindImage    AttachmentKind = "image"
	KindVideo    AttachmentKind = "video"
	KindDocument AttachmentKind = "document"
)

// KindForMediaType maps a media type onto image, video or document.
func KindForMediaType(mediaType string) AttachmentKind {
	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return KindImage
	case strings.HasPrefix(mediaType, "video/"):
		return KindVideo
	default:
		return KindDocument
	}
}

// Attachment is a normalized file owned by exactly one news item.
// URL is either an external link or a data URI.
type Attachment struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Type     AttachmentKind `json:"type"`
	MimeType string         `json:"mimeType"`
	Size     int64          `json:"size,omitempty"`
}

// ----------------------- news -----------------------

// News categories.
const (
	CategoryEvent    = "Event"
	CategoryAcademic = "Academic"
	CategoryResearch = "Research"
	CategoryGeneral  = "General"
	CategoryStudent  = "Student"
)

// Link is a titled external or internal reference.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewsItem is an article. Collections keep these newest first.
type NewsItem struct {
	ID           string       `json:"id"`
	Title        string       `json:"title" binding:"required"`
	Summary      string       `json:"summary"`
	Content      string       `json:"content" binding:"required"`
	ImageURL     string       `json:"image_url"`
	PublishedAt  string       `json:"published_at"`
	AuthorName   string       `json:"author_name"`
	Category     string       `json:"category" binding:"omitempty,oneof=Event Academic Research General Student"`
	GalleryURLs  []string     `json:"gallery_urls,omitempty"`
	PDFURL       string       `json:"pdf_url,omitempty"`
	PDFName      string       `json:"pdf_name,omitempty"`
	Attachments  []Attachment `json:"attachments"`
	RelatedLinks []Link       `json:"related_links,omitempty"`
}

// AttachmentsOfKind filters the item's attachments by kind.
func (n NewsItem) AttachmentsOfKind(kind AttachmentKind) []Attachment {
	var out []Attachment
	for _, a := range n.Attachments {
		if a.Type == kind {
			out = append(out, a)
		}
	}
	return out
}

// ParseGalleryText splits newline separated URLs, trimming and dropping blanks.
func ParseGalleryText(text string) []string {
	urls := []string{}
	for _, line := range strings.Split(text, "\n") {
		if u := strings.TrimSpace(line); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// ----------------------- facilities -----------------------

// Facility is a lab, workshop or room shown on the facilities page.
type Facility struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Capacity    int      `json:"capacity" binding:"gte=0"`
	GalleryURLs []string `json:"gallery_urls,omitempty"`
}

// ----------------------- lecturers -----------------------

// SocialLinks groups academic and social profile links of a lecturer.
type SocialLinks struct {
	Sinta         string      `json:"sinta,omitempty"`
	Scopus        string      `json:"scopus,omitempty"`
	GoogleScholar string      `json:"google_scholar,omitempty"`
	LinkedIn      string      `json:"linkedin,omitempty"`
	Instagram     string      `json:"instagram,omitempty"`
	Facebook      string      `json:"facebook,omitempty"`
	Twitter       string      `json:"twitter,omitempty"`
	TikTok        string      `json:"tiktok,omitempty"`
	Others        []LabelLink `json:"others,omitempty"`
}

// LabelLink is a custom profile link.
type LabelLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Lecturer is a staff profile.
type Lecturer struct {
	ID               string       `json:"id"`
	Name             string       `json:"name" binding:"required"`
	Title            string       `json:"title"`
	Specialization   string       `json:"specialization"`
	ImageURL         string       `json:"image_url"`
	Email            string       `json:"email" binding:"omitempty,email"`
	EmailSecondary   string       `json:"email_secondary,omitempty"`
	NIK              string       `json:"nik,omitempty"`
	ProgramStudy     string       `json:"program_study,omitempty"`
	LastEducation    string       `json:"last_education,omitempty"`
	EducationHistory []string     `json:"education_history,omitempty"`
	SocialLinks      *SocialLinks `json:"social_links,omitempty"`
}

// ----------------------- courses -----------------------

// Course types.
const (
	CourseMandatory = "Wajib"
	CourseElective  = "Pilihan"
)

// Course is keyed by its code. Credits is always the sum of its three components.
type Course struct {
	Code                     string   `json:"code" binding:"required"`
	Name                     string   `json:"name" binding:"required"`
	NameEN                   string   `json:"name_en"`
	Type                     string   `json:"type" binding:"omitempty,oneof=Wajib Pilihan"`
	Semester                 int      `json:"semester" binding:"gte=0"`
	Credits                  int      `json:"credits"`
	CreditsTheory            int      `json:"credits_theory" binding:"gte=0"`
	CreditsSeminar           int      `json:"credits_seminar" binding:"gte=0"`
	CreditsPracticum         int      `json:"credits_practicum" binding:"gte=0"`
	Description              string   `json:"description"`
	SyllabusURL              string   `json:"syllabus_url,omitempty"`
	LearningOutcomesGeneral  []string `json:"learning_outcomes_general,omitempty"`
	LearningOutcomesSpecific string   `json:"learning_outcomes_specific,omitempty"`
	References               []string `json:"references,omitempty"`
}

// TotalCredits is the derived credit total.
func (c Course) TotalCredits() int {
	return c.CreditsTheory + c.CreditsSeminar + c.CreditsPracticum
}

// WithDerivedCredits returns c with Credits recomputed from its components.
func (c Course) WithDerivedCredits() Course {
	c.Credits = c.TotalCredits()
	return c
}
