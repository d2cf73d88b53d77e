package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ArticleService abstracts the corpus article store so MDX imports can
// provision or update records without depending on internal implementations.
type ArticleService interface {
	Create(ctx context.Context, req ArticleCreateRequest) (*ArticleRecord, error)
	Update(ctx context.Context, req ArticleUpdateRequest) (*ArticleRecord, error)
	GetBySlug(ctx context.Context, slug string) (*ArticleRecord, error)
	List(ctx context.Context, opts ArticleListOptions) ([]*ArticleRecord, error)
	Delete(ctx context.Context, req ArticleDeleteRequest) error
}

// ArticleListOptions defines read-time filtering behaviour.
//
// Behaviour contract:
//   - Drafts are excluded unless IncludeDrafts is true.
//   - Tag and Author narrow the result set when non-empty.
//   - Results are ordered by date descending, slug ascending on ties.
type ArticleListOptions struct {
	IncludeDrafts bool
	Tag           string
	Author        string
}

// ArticleCreateRequest captures the details required to create an article record.
type ArticleCreateRequest struct {
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

// ArticleUpdateRequest captures the mutable fields for an existing record.
// Date is immutable after create; implementations reject attempts to move it.
type ArticleUpdateRequest struct {
	ID       uuid.UUID
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

// ArticleDeleteRequest captures the information required to remove an article.
// When HardDelete is false, implementations may opt for soft-deletion.
type ArticleDeleteRequest struct {
	ID         uuid.UUID
	HardDelete bool
}

// ArticleRecord reflects the persisted state returned by the article service.
type ArticleRecord struct {
	ID       uuid.UUID
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
