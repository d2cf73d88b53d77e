package articles

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	pub "github.com/simonmumina/codingeasypeasy-sub006/articles"
	"github.com/simonmumina/codingeasypeasy-sub006/internal/identity"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

// Repository abstracts storage operations for article records.
type Repository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID, hardDelete bool) error
}

// IDGenerator derives a record identifier from its slug. The default is
// deterministic so repeated imports of the same corpus converge on the same
// IDs.
type IDGenerator func(slug string) uuid.UUID

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides how record identifiers are derived.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger for record lifecycle events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	records Repository
	now     func() time.Time
	id      IDGenerator
	logger  interfaces.Logger
}

// NewService constructs an article service over the supplied repository.
func NewService(records Repository, opts ...ServiceOption) pub.Service {
	s := &service{
		records: records,
		now:     time.Now,
		id:      identity.ArticleUUID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Create(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, pub.ErrSlugRequired
	}
	if !pub.IsValidSlug(slug) {
		return nil, pub.ErrSlugInvalid
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, pub.ErrTitleRequired
	}
	if strings.TrimSpace(req.Summary) == "" {
		return nil, pub.ErrSummaryRequired
	}
	if req.Date.IsZero() {
		return nil, pub.ErrDateRequired
	}

	tags, err := requireTerms(req.Tags, pub.ErrTagsRequired, pub.ErrTagEmpty)
	if err != nil {
		return nil, err
	}
	authors, err := requireTerms(req.Authors, pub.ErrAuthorsRequired, pub.ErrAuthorEmpty)
	if err != nil {
		return nil, err
	}

	lastmod := req.Lastmod
	if lastmod.IsZero() {
		lastmod = req.Date
	}
	if lastmod.Before(req.Date) {
		return nil, &DateOrderError{
			Slug:    slug,
			Date:    req.Date.Format(time.RFC3339),
			Lastmod: lastmod.Format(time.RFC3339),
		}
	}

	if existing, lookupErr := s.records.GetBySlug(ctx, slug); lookupErr == nil && existing != nil {
		return nil, &SlugConflictError{Slug: slug, ExistingID: existing.ID.String()}
	} else if lookupErr != nil && !errors.Is(lookupErr, pub.ErrNotFound) {
		return nil, lookupErr
	}

	now := s.now()
	record := &Article{
		ID:        s.id(slug),
		Slug:      slug,
		Title:     strings.TrimSpace(req.Title),
		Summary:   strings.TrimSpace(req.Summary),
		Date:      req.Date,
		Lastmod:   lastmod,
		Draft:     req.Draft,
		Tags:      tags,
		Authors:   authors,
		Path:      req.Path,
		Checksum:  req.Checksum,
		Body:      req.Body,
		BodyHTML:  req.BodyHTML,
		Metadata:  req.Metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Debug("article created", "slug", created.Slug, "id", created.ID.String())
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, req UpdateArticleRequest) (*Article, error) {
	if req.ID == uuid.Nil {
		return nil, pub.ErrArticleIDRequired
	}

	existing, err := s.records.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !req.Date.IsZero() && !req.Date.Equal(existing.Date) {
		return nil, pub.ErrDateImmutable
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, pub.ErrTitleRequired
	}
	if strings.TrimSpace(req.Summary) == "" {
		return nil, pub.ErrSummaryRequired
	}

	tags, err := requireTerms(req.Tags, pub.ErrTagsRequired, pub.ErrTagEmpty)
	if err != nil {
		return nil, err
	}
	authors, err := requireTerms(req.Authors, pub.ErrAuthorsRequired, pub.ErrAuthorEmpty)
	if err != nil {
		return nil, err
	}

	lastmod := req.Lastmod
	if lastmod.IsZero() {
		lastmod = existing.Date
	}
	if lastmod.Before(existing.Date) {
		return nil, &DateOrderError{
			Slug:    existing.Slug,
			Date:    existing.Date.Format(time.RFC3339),
			Lastmod: lastmod.Format(time.RFC3339),
		}
	}

	existing.Title = strings.TrimSpace(req.Title)
	existing.Summary = strings.TrimSpace(req.Summary)
	existing.Lastmod = lastmod
	existing.Draft = req.Draft
	existing.Tags = tags
	existing.Authors = authors
	existing.Path = req.Path
	existing.Checksum = req.Checksum
	existing.Body = req.Body
	existing.BodyHTML = req.BodyHTML
	existing.Metadata = req.Metadata
	existing.UpdatedAt = s.now()

	updated, err := s.records.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Debug("article updated", "slug", updated.Slug, "id", updated.ID.String())
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, req DeleteArticleRequest) error {
	if req.ID == uuid.Nil {
		return pub.ErrArticleIDRequired
	}
	if err := s.records.Delete(ctx, req.ID, req.HardDelete); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Debug("article deleted", "id", req.ID.String(), "hard", req.HardDelete)
	}
	return nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	if id == uuid.Nil {
		return nil, pub.ErrArticleIDRequired
	}
	return s.records.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pub.ErrSlugRequired
	}
	return s.records.GetBySlug(ctx, slug)
}

// List applies the supplied options and returns records ordered by date
// descending, slug ascending on ties. Filtering happens here rather than in
// storage so every repository behaves identically.
func (s *service) List(ctx context.Context, opts ...pub.ListOption) ([]*Article, error) {
	filter := pub.ParseListOptions(opts...)

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*Article, 0, len(records))
	for _, record := range records {
		if record == nil || record.DeletedAt != nil {
			continue
		}
		if record.Draft && !filter.IncludeDrafts {
			continue
		}
		if filter.Tag != "" && !pub.ContainsTerm(record.Tags, filter.Tag) {
			continue
		}
		if filter.Author != "" && !pub.ContainsTerm(record.Authors, filter.Author) {
			continue
		}
		out = append(out, record)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Slug < out[j].Slug
	})

	return out, nil
}

func requireTerms(values []string, missing, empty error) ([]string, error) {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return nil, empty
		}
	}
	normalized := pub.NormalizeTerms(values)
	if len(normalized) == 0 {
		return nil, missing
	}
	return normalized, nil
}
