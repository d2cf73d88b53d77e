package articles

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service exposes article record use cases.
type Service interface {
	Create(ctx context.Context, req CreateArticleRequest) (*Article, error)
	Update(ctx context.Context, req UpdateArticleRequest) (*Article, error)
	Delete(ctx context.Context, req DeleteArticleRequest) error
	Get(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context, opts ...ListOption) ([]*Article, error)
}

// ListOption configures list behaviour. Options stack; conflicting filters
// narrow the result set.
type ListOption = string

const (
	listWithDrafts         ListOption = "articles:list:with_drafts"
	listTagFilterPrefix    ListOption = "articles:list:tag:"
	listAuthorFilterPrefix ListOption = "articles:list:author:"
)

// WithDrafts includes draft records, which are hidden from listings by default.
func WithDrafts() ListOption {
	return listWithDrafts
}

// WithTag narrows a listing to records carrying the supplied tag. Matching is
// case-insensitive on the normalized tag value.
func WithTag(tag string) ListOption {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return ""
	}
	return ListOption(string(listTagFilterPrefix) + normalized)
}

// WithAuthor narrows a listing to records referencing the supplied author key.
func WithAuthor(author string) ListOption {
	normalized := strings.ToLower(strings.TrimSpace(author))
	if normalized == "" {
		return ""
	}
	return ListOption(string(listAuthorFilterPrefix) + normalized)
}

// ParseListOptions folds option tokens into a single filter description.
// Unknown tokens are ignored so future options stay backwards compatible.
func ParseListOptions(opts ...ListOption) ListFilter {
	filter := ListFilter{}
	for _, opt := range opts {
		switch {
		case opt == listWithDrafts:
			filter.IncludeDrafts = true
		case strings.HasPrefix(string(opt), string(listTagFilterPrefix)):
			filter.Tag = strings.TrimPrefix(string(opt), string(listTagFilterPrefix))
		case strings.HasPrefix(string(opt), string(listAuthorFilterPrefix)):
			filter.Author = strings.TrimPrefix(string(opt), string(listAuthorFilterPrefix))
		}
	}
	return filter
}

// ListFilter is the resolved form of a set of list options.
type ListFilter struct {
	IncludeDrafts bool
	Tag           string
	Author        string
}

// CreateArticleRequest captures the information required to create a record.
type CreateArticleRequest struct {
	Slug     string
	Title    string
	Summary  string
	Date     time.Time
	Lastmod  time.Time
	Draft    bool
	Tags     []string
	Authors  []string
	Path     string
	Checksum []byte
	Body     string
	BodyHTML string
	Metadata map[string]any
}

// UpdateArticleRequest captures mutable fields for an existing record. The
// create date is immutable; only lastmod moves on edits. Date may be supplied
// to assert the expected value, a mismatch fails with ErrDateImmutable.
type UpdateArticleRequest struct {
	ID       uuid.UUID
	Date     time.Time
	Title    string
	Summary  string
	Lastmod  time.Time
	Draft    bool
	Tags     []string
	Authors  []string
	Path     string
	Checksum []byte
	Body     string
	BodyHTML string
	Metadata map[string]any
}

// DeleteArticleRequest captures the information required to remove a record.
type DeleteArticleRequest struct {
	ID         uuid.UUID
	HardDelete bool
}
