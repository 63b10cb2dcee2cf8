// Package services file: services/attachment.go
package services

import (
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"rpe-portal/logger"
	"rpe-portal/models"
)

// FileSelection is a file handed over by the host, already resolved.
type FileSelection interface {
	Name() string
	Size() int64
	MediaType() string
	Open() (io.ReadCloser, error)
}

// multipartSelection adapts an uploaded multipart file.
type multipartSelection struct {
	fh *multipart.FileHeader
}

// FromMultipart wraps uploaded form files as selections.
func FromMultipart(files []*multipart.FileHeader) []FileSelection {
	out := make([]FileSelection, 0, len(files))
	for _, fh := range files {
		out = append(out, multipartSelection{fh: fh})
	}
	return out
}

func (m multipartSelection) Name() string { return m.fh.Filename }
func (m multipartSelection) Size() int64 { return m.fh.Size }
func (m multipartSelection) MediaType() string { return m.fh.Header.Get("Content-Type") }
func (m multipartSelection) Open() (io.ReadCloser, error) {
	return m.fh.Open()
}

// Rejection names a file that was skipped and why.
type Rejection struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// BatchResult is the outcome of attaching a batch of files.
type BatchResult struct {
	Item     models.NewsItem     `json:"item"`
	Added    []models.Attachment `json:"added"`
	Rejected []Rejection         `json:"rejected"`
}

// Normalizer turns file selections into self-contained attachments.
type Normalizer struct {
	maxBytes int64
	newID    func() string
}

// NewNormalizer creates a normalizer with the given size ceiling in bytes.
func NewNormalizer(maxBytes int64) *Normalizer {
	return &Normalizer{maxBytes: maxBytes, newID: NewID}
}

// MaxBytes is the configured ceiling.
func (n *Normalizer) MaxBytes() int64 { return n.maxBytes }

// Normalize reads f in full and encodes it as a data URI attachment.
func (n *Normalizer) Normalize(f FileSelection) (models.Attachment, error) {
	if f.Size() > n.maxBytes {
		return models.Attachment{}, errors.Wrapf(ErrFileTooLarge, "%s (%d bytes)", f.Name(), f.Size())
	}
	rc, err := f.Open()
	if err != nil {
		return models.Attachment{}, errors.Wrapf(err, "open %s", f.Name())
	}
	defer rc.Close()

	// A declared size can lie; never hold more than the ceiling.
	data, err := io.ReadAll(io.LimitReader(rc, n.maxBytes+1))
	if err != nil {
		return models.Attachment{}, errors.Wrapf(err, "read %s", f.Name())
	}
	if int64(len(data)) > n.maxBytes {
		return models.Attachment{}, errors.Wrapf(ErrFileTooLarge, "%s", f.Name())
	}

	mediaType := baseMediaType(f.MediaType())
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = baseMediaType(mimetype.Detect(data).String())
	}

	return models.Attachment{
		ID:       n.newID(),
		Name:     f.Name(),
		URL:      DataURI(mediaType, data),
		Type:     models.KindForMediaType(mediaType),
		MimeType: mediaType,
		Size:     int64(len(data)),
	}, nil
}

// Prepare normalizes files without touching any article. A failing file is
// recorded and skipped; the rest of the batch still runs.
func (n *Normalizer) Prepare(files []FileSelection) BatchResult {
	res := BatchResult{Added: []models.Attachment{}, Rejected: []Rejection{}}
	for _, f := range files {
		att, err := n.Normalize(f)
		if err != nil {
			if errors.Is(err, ErrFileTooLarge) {
				logger.Warn.Printf("[Normalizer.Prepare] Skipping %s: too large (max %d bytes)", f.Name(), n.maxBytes)
			} else {
				logger.Error.Printf("[Normalizer.Prepare] Skipping %s: %v", f.Name(), err)
			}
			res.Rejected = append(res.Rejected, Rejection{File: f.Name(), Reason: rejectionReason(err)})
			continue
		}
		res.Added = append(res.Added, att)
	}
	return res
}

// Apply appends the batch to item. The first image of the batch becomes the
// main image when item has none.
func (r BatchResult) Apply(item models.NewsItem) models.NewsItem {
	if item.ImageURL == "" {
		for _, att := range r.Added {
			if att.Type == models.KindImage {
				item.ImageURL = att.URL
				break
			}
		}
	}
	item.Attachments = append(append([]models.Attachment{}, item.Attachments...), r.Added...)
	return item
}

// AttachTo normalizes files and appends the accepted ones to item.
func (n *Normalizer) AttachTo(item models.NewsItem, files []FileSelection) BatchResult {
	res := n.Prepare(files)
	res.Item = res.Apply(item)
	return res
}

// CurriculumDocument normalizes f as the curriculum document uploaded at now.
func (n *Normalizer) CurriculumDocument(f FileSelection, now time.Time) (models.CurriculumFile, error) {
	att, err := n.Normalize(f)
	if err != nil {
		return models.CurriculumFile{}, err
	}
	return models.CurriculumFile{
		Name: att.Name,
		URL:  att.URL,
		Date: now.Format("2/1/2006"),
	}, nil
}

// DataURI embeds data and its media type in one string.
func DataURI(mediaType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(mediaType) + base64.StdEncoding.EncodedLen(len(data)) + 13)
	b.WriteString("data:")
	b.WriteString(mediaType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

func baseMediaType(v string) string {
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.SplitN(v, ";", 2)[0]))
	}
	return mt
}

func rejectionReason(err error) string {
	if errors.Is(err, ErrFileTooLarge) {
		return ErrFileTooLarge.Error()
	}
	return "file could not be read"
}
