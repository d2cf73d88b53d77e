package articles

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSlugRequired     = errors.New("articles: slug is required")
	ErrSlugInvalid      = errors.New("articles: slug contains invalid characters")
	ErrSlugExists       = errors.New("articles: slug already exists")
	ErrTitleRequired    = errors.New("articles: title is required")
	ErrSummaryRequired  = errors.New("articles: summary is required")
	ErrDateRequired     = errors.New("articles: date is required")
	ErrDateImmutable    = errors.New("articles: date cannot change after create")
	ErrDateAfterLastmod = errors.New("articles: lastmod must not be earlier than date")
	ErrTagsRequired     = errors.New("articles: at least one tag is required")
	ErrTagEmpty         = errors.New("articles: tags must be non-empty strings")
	ErrAuthorsRequired  = errors.New("articles: at least one author is required")
	ErrAuthorEmpty      = errors.New("articles: authors must be non-empty strings")
	ErrArticleIDRequired = errors.New("articles: article id required")
	ErrNotFound         = errors.New("articles: not found")
)

// NotFoundError captures lookups that missed, keeping the resource and key
// for log context while unwrapping to ErrNotFound for callers using errors.Is.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return fmt.Sprintf("%s: %s", ErrNotFound.Error(), e.Resource)
	}
	return fmt.Sprintf("%s: %s %q", ErrNotFound.Error(), e.Resource, key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// SlugConflictError reports slug collisions surfaced during create.
type SlugConflictError struct {
	Slug       string
	ExistingID string
}

func (e *SlugConflictError) Error() string {
	if e == nil {
		return ErrSlugExists.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrSlugExists.Error(), slug)
	}
	return ErrSlugExists.Error()
}

func (e *SlugConflictError) Unwrap() error {
	return ErrSlugExists
}

// DateOrderError reports a record whose lastmod precedes its date.
type DateOrderError struct {
	Slug    string
	Date    string
	Lastmod string
}

func (e *DateOrderError) Error() string {
	if e == nil {
		return ErrDateAfterLastmod.Error()
	}
	return fmt.Sprintf("%s: slug=%s date=%s lastmod=%s", ErrDateAfterLastmod.Error(), e.Slug, e.Date, e.Lastmod)
}

func (e *DateOrderError) Unwrap() error {
	return ErrDateAfterLastmod
}
