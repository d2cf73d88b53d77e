package di

import (
	"context"
	"errors"

	pubarticles "github.com/simonmumina/codingeasypeasy-sub006/articles"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

// articleServiceAdapter exposes the articles service behind the stable
// interfaces contract the MDX importer consumes.
type articleServiceAdapter struct {
	service pubarticles.Service
}

func newArticleServiceAdapter(service pubarticles.Service) interfaces.ArticleService {
	if service == nil {
		return nil
	}
	return &articleServiceAdapter{service: service}
}

func (a *articleServiceAdapter) Create(ctx context.Context, req interfaces.ArticleCreateRequest) (*interfaces.ArticleRecord, error) {
	if a == nil || a.service == nil {
		return nil, errors.New("article service unavailable")
	}
	record, err := a.service.Create(ctx, pubarticles.CreateArticleRequest{
		Slug:     req.Slug,
		Title:    req.Title,
		Summary:  req.Summary,
		Date:     req.Date,
		Lastmod:  req.Lastmod,
		Draft:    req.Draft,
		Tags:     req.Tags,
		Authors:  req.Authors,
		Path:     req.Path,
		Checksum: req.Checksum,
		Body:     req.Body,
		BodyHTML: req.BodyHTML,
		Metadata: req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return toArticleRecord(record), nil
}

func (a *articleServiceAdapter) Update(ctx context.Context, req interfaces.ArticleUpdateRequest) (*interfaces.ArticleRecord, error) {
	if a == nil || a.service == nil {
		return nil, errors.New("article service unavailable")
	}
	record, err := a.service.Update(ctx, pubarticles.UpdateArticleRequest{
		ID:       req.ID,
		Title:    req.Title,
		Summary:  req.Summary,
		Lastmod:  req.Lastmod,
		Draft:    req.Draft,
		Tags:     req.Tags,
		Authors:  req.Authors,
		Path:     req.Path,
		Checksum: req.Checksum,
		Body:     req.Body,
		BodyHTML: req.BodyHTML,
		Metadata: req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return toArticleRecord(record), nil
}

func (a *articleServiceAdapter) GetBySlug(ctx context.Context, slug string) (*interfaces.ArticleRecord, error) {
	if a == nil || a.service == nil {
		return nil, errors.New("article service unavailable")
	}
	record, err := a.service.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toArticleRecord(record), nil
}

func (a *articleServiceAdapter) List(ctx context.Context, opts interfaces.ArticleListOptions) ([]*interfaces.ArticleRecord, error) {
	if a == nil || a.service == nil {
		return nil, errors.New("article service unavailable")
	}
	listOpts := []pubarticles.ListOption{}
	if opts.IncludeDrafts {
		listOpts = append(listOpts, pubarticles.WithDrafts())
	}
	if opts.Tag != "" {
		listOpts = append(listOpts, pubarticles.WithTag(opts.Tag))
	}
	if opts.Author != "" {
		listOpts = append(listOpts, pubarticles.WithAuthor(opts.Author))
	}
	records, err := a.service.List(ctx, listOpts...)
	if err != nil {
		return nil, err
	}
	out := make([]*interfaces.ArticleRecord, 0, len(records))
	for _, record := range records {
		out = append(out, toArticleRecord(record))
	}
	return out, nil
}

func (a *articleServiceAdapter) Delete(ctx context.Context, req interfaces.ArticleDeleteRequest) error {
	if a == nil || a.service == nil {
		return errors.New("article service unavailable")
	}
	return a.service.Delete(ctx, pubarticles.DeleteArticleRequest{
		ID:         req.ID,
		HardDelete: req.HardDelete,
	})
}

func toArticleRecord(record *pubarticles.Article) *interfaces.ArticleRecord {
	if record == nil {
		return nil
	}
	return &interfaces.ArticleRecord{
		ID:       record.ID,
		Slug:     record.Slug,
		Title:    record.Title,
		Summary:  record.Summary,
		Date:     record.Date,
		Lastmod:  record.Lastmod,
		Draft:    record.Draft,
		Tags:     record.Tags,
		Authors:  record.Authors,
		Path:     record.Path,
		Checksum: record.Checksum,
		Body:     record.Body,
		BodyHTML: record.BodyHTML,
		Metadata: record.Metadata,
	}
}
