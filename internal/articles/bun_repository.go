package articles

import (
	"context"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunArticleRepository implements Repository on top of bun with optional
// read-through caching.
type BunArticleRepository struct {
	db   *bun.DB
	repo repository.Repository[*Article]
}

func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return NewBunArticleRepositoryWithCache(db, nil, nil)
}

func NewBunArticleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunArticleRepository {
	base := NewArticleRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunArticleRepository{db: db, repo: wrapped}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *Article) (*Article, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("article repository create: %w", err)
	}
	return created, nil
}

func (r *BunArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "article", id.String())
	}
	return result, nil
}

func (r *BunArticleRepository) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "article", slug)
	}
	return result, nil
}

func (r *BunArticleRepository) List(ctx context.Context) ([]*Article, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.deleted_at IS NULL")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("article repository list: %w", err)
	}
	return records, nil
}

func (r *BunArticleRepository) Update(ctx context.Context, record *Article) (*Article, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "article", record.ID.String())
	}
	return updated, nil
}

func (r *BunArticleRepository) Delete(ctx context.Context, id uuid.UUID, hardDelete bool) error {
	if r.db == nil {
		return fmt.Errorf("article repository: database not configured")
	}

	if !hardDelete {
		result, err := r.db.NewUpdate().
			Model((*Article)(nil)).
			Set("deleted_at = ?", time.Now()).
			Where("?TableAlias.id = ?", id).
			Where("?TableAlias.deleted_at IS NULL").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("soft delete article: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("article delete rows affected: %w", err)
		}
		if affected == 0 {
			return &NotFoundError{Resource: "article", Key: id.String()}
		}
		return nil
	}

	result, err := r.db.NewDelete().
		Model((*Article)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("article delete rows affected: %w", err)
	}
	if affected == 0 {
		return &NotFoundError{Resource: "article", Key: id.String()}
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
