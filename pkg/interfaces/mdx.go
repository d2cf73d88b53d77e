package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MDXParser defines how raw MDX body bytes are converted into HTML. The body
// of an article is treated as GitHub-flavoured Markdown; embedded JSX survives
// as raw markup unless sanitisation is requested. Implementations should be
// reusable across goroutines without additional locking.
type MDXParser interface {
	// Parse converts an MDX body into HTML using the parser's default settings.
	Parse(source []byte) ([]byte, error)
	// ParseWithOptions converts an MDX body into HTML using the supplied overrides.
	ParseWithOptions(source []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises body rendering behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MDXService exposes the high-level file workflows for an MDX article corpus:
// loading documents from disk, rendering bodies, and synchronising the
// filesystem state with the article store.
type MDXService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, source []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	Import(ctx context.Context, doc *Document, opts ImportOptions) (*ImportResult, error)
	ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (*ImportResult, error)
	Sync(ctx context.Context, dir string, opts SyncOptions) (*SyncResult, error)
}

// Document represents a single MDX file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so sync
	// workflows can detect changes without re-importing unchanged files.
	Checksum []byte
}

// FrontMatter models the YAML metadata block every corpus article starts
// with. Title, date, tags, draft, summary, and authors are the required
// record fields; lastmod is a near-universal convention that defaults to
// date when absent. Unknown keys are preserved in Custom and the complete
// decoded map in Raw.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Authors []string       `yaml:"authors" json:"authors"`
	Date    time.Time      `yaml:"date" json:"date"`
	Lastmod time.Time      `yaml:"lastmod" json:"lastmod"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}

// ImportOptions controls how MDX documents are converted into article records.
type ImportOptions struct {
	DryRun bool
	// IncludeDrafts keeps draft documents in the import set. Drafts are
	// imported by default; gating them is a read-side concern.
	IncludeDrafts *bool
}

// SyncOptions extends ImportOptions to handle update/delete semantics for
// repeated synchronisation runs. DeleteOrphaned completes the corpus
// lifecycle: removing a file destroys its record on the next sync.
type SyncOptions struct {
	ImportOptions
	DeleteOrphaned bool
}

// ImportResult reports the outcome of a single import operation, exposing
// counts and IDs so callers can audit behaviour or trigger follow-up actions.
type ImportResult struct {
	CreatedArticleIDs []uuid.UUID
	UpdatedArticleIDs []uuid.UUID
	SkippedArticleIDs []uuid.UUID
	Errors            []error
}

// SyncResult summarises a bulk sync run across many files.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
	Skipped int
	Errors  []error
}
