package articles

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/simonmumina/codingeasypeasy-sub006/domain"
)

// Article is the canonical record for one corpus entry: the YAML front
// matter fields every MDX file carries plus the body and bookkeeping the
// importer maintains. The filesystem remains the source of truth; rows here
// are a queryable projection of it.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID      uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug    string    `bun:"slug,notnull" json:"slug"`
	Title   string    `bun:"title,notnull" json:"title"`
	Summary string    `bun:"summary,notnull" json:"summary"`
	// Date is the creation date declared in front matter; immutable after create.
	Date time.Time `bun:"date,notnull" json:"date"`
	// Lastmod tracks body edits and is never earlier than Date.
	Lastmod time.Time `bun:"lastmod,notnull" json:"lastmod"`
	Draft   bool      `bun:"draft,notnull,default:false" json:"draft"`
	Tags    []string  `bun:"tags,type:jsonb" json:"tags"`
	Authors []string  `bun:"authors,type:jsonb" json:"authors"`
	// Path records the corpus-relative file the record was imported from.
	Path     string         `bun:"path" json:"path,omitempty"`
	Checksum []byte         `bun:"checksum" json:"checksum,omitempty"`
	Body     string         `bun:"body" json:"body,omitempty"`
	BodyHTML string         `bun:"body_html" json:"body_html,omitempty"`
	Metadata map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`

	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Status derives the lifecycle state from the draft flag.
func (a *Article) Status() domain.Status {
	if a != nil && a.Draft {
		return domain.StatusDraft
	}
	return domain.StatusPublished
}

// TagCount summarises how often a tag appears across the public corpus.
type TagCount struct {
	Tag   string `json:"tag"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// AuthorCount summarises how many public articles reference an author key.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}
