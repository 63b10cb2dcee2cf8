// Package services file: services/language.go
package services

import "github.com/pkg/errors"

// Display languages.
const (
	LangID = "id"
	LangEN = "en"
)

// LanguageStore keeps the display language of one browser.
type LanguageStore struct {
	storage Storage
}

// NewLanguageStore binds to storage.
func NewLanguageStore(storage Storage) *LanguageStore {
	return &LanguageStore{storage: storage}
}

// Current returns the stored language, defaulting to Indonesian.
func (l *LanguageStore) Current() string {
	if v, ok := l.storage.Get(LanguageKey); ok && (v == LangID || v == LangEN) {
		return v
	}
	return LangID
}

// Set stores lang.
func (l *LanguageStore) Set(lang string) error {
	if lang != LangID && lang != LangEN {
		return errors.Wrapf(ErrInvalidLanguage, "%q", lang)
	}
	return l.storage.Set(LanguageKey, lang)
}

// Toggle flips between id and en and returns the new value.
func (l *LanguageStore) Toggle() (string, error) {
	next := LangEN
	if l.Current() == LangEN {
		next = LangID
	}
	return next, l.Set(next)
}
