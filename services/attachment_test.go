// file: services/attachment_test.go
package services

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rpe-portal/models"
)

type fakeFile struct {
	name      string
	mediaType string
	data      []byte
	size      int64
	openErr   error
}

func (f fakeFile) Name() string { return f.name }
func (f fakeFile) MediaType() string { return f.mediaType }
func (f fakeFile) Size() int64 {
	if f.size != 0 {
		return f.size
	}
	return int64(len(f.data))
}
func (f fakeFile) Open() (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestNormalize_DataURI(t *testing.T) {
	n := NewNormalizer(1024)
	att, err := n.Normalize(fakeFile{name: "notes.txt", mediaType: "text/plain; charset=utf-8", data: []byte("hello")})
	require.NoError(t, err)

	assert.Equal(t, "data:text/plain;base64,"+base64.StdEncoding.EncodeToString([]byte("hello")), att.URL)
	assert.Equal(t, models.KindDocument, att.Type)
	assert.Equal(t, "text/plain", att.MimeType)
	assert.Equal(t, int64(5), att.Size)
	assert.Equal(t, "notes.txt", att.Name)
	assert.NotEmpty(t, att.ID)
}

func TestNormalize_Kinds(t *testing.T) {
	n := NewNormalizer(1024)
	for mediaType, kind := range map[string]models.AttachmentKind{
		"image/jpeg":      models.KindImage,
		"video/mp4":       models.KindVideo,
		"application/pdf": models.KindDocument,
	} {
		att, err := n.Normalize(fakeFile{name: "f", mediaType: mediaType, data: []byte("x")})
		require.NoError(t, err)
		assert.Equal(t, kind, att.Type, mediaType)
	}
}

func TestNormalize_SniffsMissingMediaType(t *testing.T) {
	n := NewNormalizer(1024)
	att, err := n.Normalize(fakeFile{name: "photo", data: pngHeader})
	require.NoError(t, err)
	assert.Equal(t, "image/png", att.MimeType)
	assert.Equal(t, models.KindImage, att.Type)
	assert.True(t, strings.HasPrefix(att.URL, "data:image/png;base64,"))
}

func TestNormalize_TooLarge(t *testing.T) {
	n := NewNormalizer(4)
	_, err := n.Normalize(fakeFile{name: "big", mediaType: "text/plain", data: []byte("12345")})
	assert.True(t, errors.Is(err, ErrFileTooLarge))

	// declared size understated
	_, err = n.Normalize(fakeFile{name: "liar", mediaType: "text/plain", data: []byte("12345"), size: 1})
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}

func TestAttachTo_PartialSuccess(t *testing.T) {
	n := NewNormalizer(8)
	item := models.NewsItem{ID: "1", Attachments: []models.Attachment{{ID: "old"}}}
	files := []FileSelection{
		fakeFile{name: "a.txt", mediaType: "text/plain", data: []byte("a")},
		fakeFile{name: "huge.jpg", mediaType: "image/jpeg", data: bytes.Repeat([]byte("x"), 9)},
		fakeFile{name: "broken.pdf", mediaType: "application/pdf", openErr: errors.New("disk gone")},
		fakeFile{name: "first.jpg", mediaType: "image/jpeg", data: []byte("img1")},
		fakeFile{name: "second.png", mediaType: "image/png", data: []byte("img2")},
		fakeFile{name: "huge2.mp4", mediaType: "video/mp4", data: bytes.Repeat([]byte("x"), 100)},
	}

	res := n.AttachTo(item, files)

	// N=6, K=2 oversized, 1 unreadable
	assert.Len(t, res.Added, 3)
	assert.Len(t, res.Item.Attachments, 1+3)
	assert.Equal(t, "old", res.Item.Attachments[0].ID)
	assert.Equal(t, res.Added[1].URL, res.Item.ImageURL, "first accepted image becomes the main image")
	assert.Equal(t, []Rejection{
		{File: "huge.jpg", Reason: ErrFileTooLarge.Error()},
		{File: "broken.pdf", Reason: "file could not be read"},
		{File: "huge2.mp4", Reason: ErrFileTooLarge.Error()},
	}, res.Rejected)
}

func TestAttachTo_OversizedOnlyGrowsByNMinusK(t *testing.T) {
	n := NewNormalizer(3)
	files := []FileSelection{
		fakeFile{name: "1", mediaType: "text/plain", data: []byte("a")},
		fakeFile{name: "2", mediaType: "text/plain", data: []byte("toolong")},
		fakeFile{name: "3", mediaType: "text/plain", data: []byte("b")},
	}
	res := n.AttachTo(models.NewsItem{}, files)
	assert.Len(t, res.Item.Attachments, 2)
}

func TestAttachTo_KeepsExistingMainImage(t *testing.T) {
	n := NewNormalizer(1024)
	item := models.NewsItem{ImageURL: "https://example.com/cover.jpg"}
	res := n.AttachTo(item, []FileSelection{fakeFile{name: "p.jpg", mediaType: "image/jpeg", data: []byte("x")}})

	assert.Equal(t, "https://example.com/cover.jpg", res.Item.ImageURL)
	assert.Len(t, res.Item.Attachments, 1)
}

func TestAttachTo_DoesNotAliasInput(t *testing.T) {
	n := NewNormalizer(1024)
	existing := make([]models.Attachment, 1, 4)
	item := models.NewsItem{Attachments: existing}
	n.AttachTo(item, []FileSelection{fakeFile{name: "a", mediaType: "text/plain", data: []byte("a")}})
	assert.Len(t, item.Attachments, 1)
}

func TestCurriculumDocument(t *testing.T) {
	n := NewNormalizer(1024)
	doc, err := n.CurriculumDocument(fakeFile{name: "kurikulum.pdf", mediaType: "application/pdf", data: []byte("%PDF")}, mustDate(t, "2026-03-04"))
	require.NoError(t, err)
	assert.Equal(t, "kurikulum.pdf", doc.Name)
	assert.Equal(t, "4/3/2026", doc.Date)
	assert.True(t, strings.HasPrefix(doc.URL, "data:application/pdf;base64,"))
}

func TestPrepare_InterleavedBatchesKeepBoth(t *testing.T) {
	n := NewNormalizer(1024)
	news := NewCollection(NewsCollection, newsKey, Prepend, []models.NewsItem{{ID: "1", Title: "t", Content: "c"}})

	// both batches are read before either is applied
	a := n.Prepare([]FileSelection{fakeFile{name: "a.txt", mediaType: "text/plain", data: []byte("a")}})
	b := n.Prepare([]FileSelection{fakeFile{name: "b.txt", mediaType: "text/plain", data: []byte("b")}})
	for _, batch := range []BatchResult{a, b} {
		_, err := news.Modify("1", func(cur models.NewsItem) (models.NewsItem, error) {
			return batch.Apply(cur), nil
		})
		require.NoError(t, err)
	}

	item, _ := news.Get("1")
	names := []string{}
	for _, att := range item.Attachments {
		names = append(names, att.Name)
	}
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestApply_FirstImageOfBatchOnly(t *testing.T) {
	n := NewNormalizer(1024)
	res := n.Prepare([]FileSelection{
		fakeFile{name: "doc.pdf", mediaType: "application/pdf", data: []byte("%PDF")},
		fakeFile{name: "one.png", mediaType: "image/png", data: pngHeader},
		fakeFile{name: "two.png", mediaType: "image/png", data: pngHeader},
	})
	item := res.Apply(models.NewsItem{})
	require.Len(t, item.Attachments, 3)
	assert.Equal(t, item.Attachments[1].URL, item.ImageURL)
	assert.Equal(t, "keep", res.Apply(models.NewsItem{ImageURL: "keep"}).ImageURL)
}
