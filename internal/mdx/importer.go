package mdx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/simonmumina/codingeasypeasy-sub006/articles"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

var (
	ErrArticleServiceRequired = errors.New("mdx importer: article service is required")
	ErrSlugUnresolvable       = errors.New("mdx importer: slug could not be resolved from frontmatter or file path")
)

// ImporterConfig encapsulates dependencies required to persist MDX documents.
type ImporterConfig struct {
	Articles interfaces.ArticleService
	Logger   interfaces.Logger
}

// Importer converts parsed MDX documents into article records. Each document
// maps to exactly one record keyed by slug; repeated runs use the stored
// checksum to skip files whose content has not changed.
type Importer struct {
	articles interfaces.ArticleService
	logger   interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	return &Importer{
		articles: cfg.Articles,
		logger:   cfg.Logger,
	}
}

// ImportDocument imports a single MDX document.
func (i *Importer) ImportDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if i.articles == nil {
		return nil, ErrArticleServiceRequired
	}
	acc := newImportAccumulator()
	if err := i.applyDocument(ctx, doc, opts, acc); err != nil {
		acc.addError(err)
	}
	return acc.result(), firstError(acc.errors)
}

// ImportDocuments imports an arbitrary slice of documents, grouping them by
// slug so duplicate slugs surface as import errors instead of silent
// overwrites.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.ImportOptions) (*interfaces.ImportResult, error) {
	if i.articles == nil {
		return nil, ErrArticleServiceRequired
	}

	acc := newImportAccumulator()
	for _, group := range groupBySlug(docs) {
		doc := group.primary()
		if len(group.docs) > 1 {
			acc.addError(fmt.Errorf("mdx importer: slug %q claimed by %d files, importing %s", group.slug, len(group.docs), doc.FilePath))
		}
		if err := i.applyDocument(ctx, doc, opts, acc); err != nil {
			acc.addError(err)
		}
	}
	return acc.result(), firstError(acc.errors)
}

// SyncDocuments imports all provided documents and optionally deletes records
// whose source files no longer exist.
func (i *Importer) SyncDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	if i.articles == nil {
		return nil, ErrArticleServiceRequired
	}

	groups := groupBySlug(docs)
	acc := newSyncAccumulator()

	for _, group := range groups {
		doc := group.primary()
		res := newImportAccumulator()
		if len(group.docs) > 1 {
			res.addError(fmt.Errorf("mdx importer: slug %q claimed by %d files, importing %s", group.slug, len(group.docs), doc.FilePath))
		}
		if err := i.applyDocument(ctx, doc, opts.ImportOptions, res); err != nil {
			res.addError(err)
		}
		acc.merge(res.result())
	}

	if opts.DeleteOrphaned {
		if err := i.deleteOrphaned(ctx, groups, opts, acc); err != nil {
			acc.addError(err)
		}
	}

	return acc.result(), firstError(acc.errors)
}

func (i *Importer) applyDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ImportOptions, acc *importAccumulator) error {
	if doc == nil {
		return errors.New("mdx importer: nil document")
	}

	slug, err := resolveSlug(doc)
	if err != nil {
		return err
	}

	// Drafts flow into the store by default; excluding them is an explicit
	// request used by publish-only pipelines.
	if opts.IncludeDrafts != nil && !*opts.IncludeDrafts && doc.FrontMatter.Draft {
		acc.skip(uuid.Nil)
		return nil
	}

	existing, lookupErr := i.articles.GetBySlug(ctx, slug)
	if lookupErr != nil && !errors.Is(lookupErr, articles.ErrNotFound) {
		return fmt.Errorf("mdx importer: article lookup %s: %w", slug, lookupErr)
	}

	if existing == nil {
		if opts.DryRun {
			acc.skip(uuid.Nil)
			return nil
		}

		record, createErr := i.articles.Create(ctx, buildCreateRequest(slug, doc))
		if createErr != nil {
			return fmt.Errorf("mdx importer: create article %s: %w", slug, createErr)
		}
		acc.created(record.ID)
		i.logImport(doc, slug, "created")
		return nil
	}

	if bytes.Equal(existing.Checksum, doc.Checksum) {
		acc.skip(existing.ID)
		return nil
	}

	if opts.DryRun {
		acc.skip(existing.ID)
		return nil
	}

	updated, updateErr := i.articles.Update(ctx, buildUpdateRequest(existing.ID, slug, doc))
	if updateErr != nil {
		return fmt.Errorf("mdx importer: update article %s: %w", slug, updateErr)
	}
	acc.updated(updated.ID)
	i.logImport(doc, slug, "updated")
	return nil
}

func (i *Importer) deleteOrphaned(ctx context.Context, groups []slugGroup, opts interfaces.SyncOptions, acc *syncAccumulator) error {
	existing, err := i.articles.List(ctx, interfaces.ArticleListOptions{IncludeDrafts: true})
	if err != nil {
		return fmt.Errorf("mdx importer: list articles: %w", err)
	}

	docSlugs := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		docSlugs[group.slug] = struct{}{}
	}

	for _, record := range existing {
		if _, ok := docSlugs[record.Slug]; ok {
			continue
		}
		if opts.DryRun {
			acc.deleted++
			continue
		}
		deleteReq := interfaces.ArticleDeleteRequest{
			ID:         record.ID,
			HardDelete: true,
		}
		if err := i.articles.Delete(ctx, deleteReq); err != nil {
			return fmt.Errorf("mdx importer: delete article %s: %w", record.Slug, err)
		}
		acc.deleted++
		if i.logger != nil {
			i.logger.Info("article removed, source file gone", "slug", record.Slug)
		}
	}

	return nil
}

func (i *Importer) logImport(doc *interfaces.Document, slug, action string) {
	if i.logger == nil {
		return
	}
	i.logger.Info("article imported",
		"slug", slug,
		"path", doc.FilePath,
		"action", action,
	)
}

// resolveSlug prefers an explicit frontmatter slug and falls back to the file
// name without its extension, normalised to the canonical slug form.
func resolveSlug(doc *interfaces.Document) (string, error) {
	if doc == nil {
		return "", ErrSlugUnresolvable
	}

	candidate := strings.TrimSpace(doc.FrontMatter.Slug)
	if candidate == "" {
		base := path.Base(doc.FilePath)
		candidate = strings.TrimSuffix(base, path.Ext(base))
	}
	if candidate == "" || candidate == "." {
		return "", ErrSlugUnresolvable
	}

	normalized, err := articles.NormalizeSlug(candidate)
	if err != nil {
		return "", fmt.Errorf("mdx importer: normalize slug %q: %w", candidate, err)
	}
	return normalized, nil
}

func buildCreateRequest(slug string, doc *interfaces.Document) interfaces.ArticleCreateRequest {
	fm := doc.FrontMatter

	date := fm.Date
	lastmod := fm.Lastmod
	if lastmod.IsZero() {
		lastmod = date
	}

	return interfaces.ArticleCreateRequest{
		Slug:     slug,
		Title:    fallbackTitle(strings.TrimSpace(fm.Title), slug),
		Summary:  strings.TrimSpace(fm.Summary),
		Date:     date,
		Lastmod:  lastmod,
		Draft:    fm.Draft,
		Tags:     articles.NormalizeTerms(fm.Tags),
		Authors:  articles.NormalizeTerms(fm.Authors),
		Path:     doc.FilePath,
		Checksum: doc.Checksum,
		Body:     string(doc.Body),
		BodyHTML: string(doc.BodyHTML),
		Metadata: documentMetadata(doc),
	}
}

func buildUpdateRequest(id uuid.UUID, slug string, doc *interfaces.Document) interfaces.ArticleUpdateRequest {
	fm := doc.FrontMatter

	lastmod := fm.Lastmod
	if lastmod.IsZero() {
		lastmod = fm.Date
	}

	return interfaces.ArticleUpdateRequest{
		ID:       id,
		Title:    fallbackTitle(strings.TrimSpace(fm.Title), slug),
		Summary:  strings.TrimSpace(fm.Summary),
		Lastmod:  lastmod,
		Draft:    fm.Draft,
		Tags:     articles.NormalizeTerms(fm.Tags),
		Authors:  articles.NormalizeTerms(fm.Authors),
		Path:     doc.FilePath,
		Checksum: doc.Checksum,
		Body:     string(doc.Body),
		BodyHTML: string(doc.BodyHTML),
		Metadata: documentMetadata(doc),
	}
}

func documentMetadata(doc *interfaces.Document) map[string]any {
	meta := map[string]any{
		"source": "mdx",
	}
	if len(doc.FrontMatter.Custom) > 0 {
		meta["frontmatter"] = doc.FrontMatter.Custom
	}
	if !doc.LastModified.IsZero() {
		meta["file_modified"] = doc.LastModified
	}
	return meta
}

func fallbackTitle(title, slug string) string {
	if title != "" {
		return title
	}
	if slug == "" {
		return "Untitled"
	}
	words := strings.Fields(strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " "))
	for idx, word := range words {
		words[idx] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

type slugGroup struct {
	slug string
	docs []*interfaces.Document
}

// primary returns the group's representative document. Groups are path-sorted
// so the winner is deterministic when a slug is claimed twice.
func (g slugGroup) primary() *interfaces.Document {
	if len(g.docs) == 0 {
		return nil
	}
	return g.docs[0]
}

func groupBySlug(docs []*interfaces.Document) []slugGroup {
	index := map[string]int{}
	var groups []slugGroup

	for _, doc := range docs {
		slug, err := resolveSlug(doc)
		if err != nil {
			slug = ""
		}
		pos, ok := index[slug]
		if !ok {
			pos = len(groups)
			index[slug] = pos
			groups = append(groups, slugGroup{slug: slug})
		}
		groups[pos].docs = append(groups[pos].docs, doc)
	}

	for pos := range groups {
		slices.SortFunc(groups[pos].docs, func(a, b *interfaces.Document) int {
			return strings.Compare(a.FilePath, b.FilePath)
		})
	}

	slices.SortFunc(groups, func(a, b slugGroup) int {
		return strings.Compare(a.slug, b.slug)
	})

	return groups
}

type importAccumulator struct {
	createdIDs []uuid.UUID
	updatedIDs []uuid.UUID
	skippedIDs []uuid.UUID
	errors     []error
}

func newImportAccumulator() *importAccumulator {
	return &importAccumulator{
		createdIDs: []uuid.UUID{},
		updatedIDs: []uuid.UUID{},
		skippedIDs: []uuid.UUID{},
		errors:     []error{},
	}
}

func (a *importAccumulator) created(id uuid.UUID) {
	if id != uuid.Nil {
		a.createdIDs = append(a.createdIDs, id)
	}
}

func (a *importAccumulator) updated(id uuid.UUID) {
	if id != uuid.Nil {
		a.updatedIDs = append(a.updatedIDs, id)
	}
}

func (a *importAccumulator) skip(id uuid.UUID) {
	if id != uuid.Nil {
		a.skippedIDs = append(a.skippedIDs, id)
	}
}

func (a *importAccumulator) addError(err error) {
	if err != nil {
		a.errors = append(a.errors, err)
	}
}

func (a *importAccumulator) result() *interfaces.ImportResult {
	return &interfaces.ImportResult{
		CreatedArticleIDs: a.createdIDs,
		UpdatedArticleIDs: a.updatedIDs,
		SkippedArticleIDs: a.skippedIDs,
		Errors:            a.errors,
	}
}

type syncAccumulator struct {
	created int
	updated int
	deleted int
	skipped int
	errors  []error
}

func newSyncAccumulator() *syncAccumulator {
	return &syncAccumulator{
		errors: []error{},
	}
}

func (s *syncAccumulator) merge(res *interfaces.ImportResult) {
	if res == nil {
		return
	}
	s.created += len(res.CreatedArticleIDs)
	s.updated += len(res.UpdatedArticleIDs)
	s.skipped += len(res.SkippedArticleIDs)
	s.errors = append(s.errors, res.Errors...)
}

func (s *syncAccumulator) addError(err error) {
	if err != nil {
		s.errors = append(s.errors, err)
	}
}

func (s *syncAccumulator) result() *interfaces.SyncResult {
	return &interfaces.SyncResult{
		Created: s.created,
		Updated: s.updated,
		Deleted: s.deleted,
		Skipped: s.skipped,
		Errors:  s.errors,
	}
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
