package articles

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryArticleRepository is an in-memory implementation for scaffolding and tests.
type MemoryArticleRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*Article
	slugIndex map[string]uuid.UUID
	now       func() time.Time
}

// NewMemoryArticleRepository creates an empty in-memory article repository.
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		records:   make(map[uuid.UUID]*Article),
		slugIndex: make(map[string]uuid.UUID),
		now:       time.Now,
	}
}

// Create inserts the supplied record.
func (m *MemoryArticleRepository) Create(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneArticle(record)
	m.records[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneArticle(copied), nil
}

// GetByID retrieves a record by identifier.
func (m *MemoryArticleRepository) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok || rec.DeletedAt != nil {
		return nil, &NotFoundError{Resource: "article", Key: id.String()}
	}
	return cloneArticle(rec), nil
}

// GetBySlug retrieves a record by slug, returning NotFoundError when absent.
func (m *MemoryArticleRepository) GetBySlug(_ context.Context, slug string) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: slug}
	}
	rec := m.records[id]
	if rec == nil || rec.DeletedAt != nil {
		return nil, &NotFoundError{Resource: "article", Key: slug}
	}
	return cloneArticle(rec), nil
}

// List returns all live records.
func (m *MemoryArticleRepository) List(_ context.Context) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Article, 0, len(m.records))
	for _, rec := range m.records {
		if rec.DeletedAt != nil {
			continue
		}
		out = append(out, cloneArticle(rec))
	}
	return out, nil
}

// Update replaces a stored record.
func (m *MemoryArticleRepository) Update(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[record.ID]
	if !ok || existing.DeletedAt != nil {
		return nil, &NotFoundError{Resource: "article", Key: record.ID.String()}
	}

	copied := cloneArticle(record)
	m.records[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneArticle(copied), nil
}

// Delete removes a record. Soft deletion stamps DeletedAt and keeps the row.
func (m *MemoryArticleRepository) Delete(_ context.Context, id uuid.UUID, hardDelete bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok || rec.DeletedAt != nil {
		return &NotFoundError{Resource: "article", Key: id.String()}
	}

	if hardDelete {
		delete(m.slugIndex, rec.Slug)
		delete(m.records, id)
		return nil
	}

	now := m.now()
	rec.DeletedAt = &now
	delete(m.slugIndex, rec.Slug)
	return nil
}

func cloneArticle(src *Article) *Article {
	if src == nil {
		return nil
	}

	copied := *src
	if len(src.Tags) > 0 {
		copied.Tags = append([]string(nil), src.Tags...)
	}
	if len(src.Authors) > 0 {
		copied.Authors = append([]string(nil), src.Authors...)
	}
	if len(src.Checksum) > 0 {
		copied.Checksum = append([]byte(nil), src.Checksum...)
	}
	if src.Metadata != nil {
		copied.Metadata = make(map[string]any, len(src.Metadata))
		for key, value := range src.Metadata {
			copied.Metadata[key] = value
		}
	}
	if src.DeletedAt != nil {
		at := *src.DeletedAt
		copied.DeletedAt = &at
	}
	return &copied
}
