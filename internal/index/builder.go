package index

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/simonmumina/codingeasypeasy-sub006/articles"
	"github.com/simonmumina/codingeasypeasy-sub006/pkg/interfaces"
)

// ListEntry is one row of the public article listing.
type ListEntry struct {
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Summary string    `json:"summary"`
	Date    time.Time `json:"date"`
	Lastmod time.Time `json:"lastmod"`
	Tags    []string  `json:"tags"`
	Authors []string  `json:"authors"`
	URL     string    `json:"url,omitempty"`
}

// TagIndexEntry aggregates one tag across the public corpus.
type TagIndexEntry struct {
	Tag   string   `json:"tag"`
	Slug  string   `json:"slug"`
	Count int      `json:"count"`
	URL   string   `json:"url,omitempty"`
	Posts []string `json:"posts"`
}

// AuthorIndexEntry aggregates one author key across the public corpus.
type AuthorIndexEntry struct {
	Author string   `json:"author"`
	Count  int      `json:"count"`
	URL    string   `json:"url,omitempty"`
	Posts  []string `json:"posts"`
}

// Feed is a JSON Feed style rendition of the public listing.
type Feed struct {
	Version string     `json:"version"`
	Title   string     `json:"title"`
	Items   []FeedItem `json:"items"`
}

// FeedItem is a single feed entry.
type FeedItem struct {
	ID            string    `json:"id"`
	URL           string    `json:"url,omitempty"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	DatePublished time.Time `json:"date_published"`
	DateModified  time.Time `json:"date_modified"`
	Tags          []string  `json:"tags"`
	Authors       []string  `json:"authors"`
}

const feedVersion = "https://jsonfeed.org/version/1.1"

// BuilderConfig carries the builder dependencies.
type BuilderConfig struct {
	Articles  articles.Service
	URLs      *URLResolver
	Logger    interfaces.Logger
	FeedTitle string
}

// Builder derives the read-side projections of the corpus: the public
// listing, tag and author indexes, and a feed. Drafts never appear in any of
// them; as far as the builder is concerned a draft does not exist.
type Builder struct {
	articles  articles.Service
	urls      *URLResolver
	logger    interfaces.Logger
	feedTitle string
}

// NewBuilder constructs an index builder.
func NewBuilder(cfg BuilderConfig) *Builder {
	title := strings.TrimSpace(cfg.FeedTitle)
	if title == "" {
		title = "Articles"
	}
	return &Builder{
		articles:  cfg.Articles,
		urls:      cfg.URLs,
		logger:    cfg.Logger,
		feedTitle: title,
	}
}

// PublicList returns all published records ordered by date descending, slug
// ascending on ties.
func (b *Builder) PublicList(ctx context.Context) ([]ListEntry, error) {
	records, err := b.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ListEntry, 0, len(records))
	for _, record := range records {
		url, err := b.urls.ArticleURL(record.Slug)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ListEntry{
			Slug:    record.Slug,
			Title:   record.Title,
			Summary: record.Summary,
			Date:    record.Date,
			Lastmod: record.Lastmod,
			Tags:    record.Tags,
			Authors: record.Authors,
			URL:     url,
		})
	}

	if b.logger != nil {
		b.logger.Debug("public list built", "entries", len(entries))
	}
	return entries, nil
}

// TagIndex aggregates tags across published records, ordered by count
// descending, tag ascending on ties.
func (b *Builder) TagIndex(ctx context.Context) ([]TagIndexEntry, error) {
	records, err := b.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	byKey := map[string]*TagIndexEntry{}
	var order []string

	for _, record := range records {
		for _, tag := range record.Tags {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" {
				continue
			}
			entry, ok := byKey[key]
			if !ok {
				slug, normErr := articles.NormalizeSlug(tag)
				if normErr != nil {
					slug = key
				}
				entry = &TagIndexEntry{Tag: tag, Slug: slug}
				byKey[key] = entry
				order = append(order, key)
			}
			entry.Count++
			entry.Posts = append(entry.Posts, record.Slug)
		}
	}

	entries := make([]TagIndexEntry, 0, len(byKey))
	for _, key := range order {
		entry := byKey[key]
		url, err := b.urls.TagURL(entry.Slug)
		if err != nil {
			return nil, err
		}
		entry.URL = url
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Slug < entries[j].Slug
	})

	return entries, nil
}

// AuthorIndex aggregates author keys across published records, ordered by
// count descending, author ascending on ties.
func (b *Builder) AuthorIndex(ctx context.Context) ([]AuthorIndexEntry, error) {
	records, err := b.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	byKey := map[string]*AuthorIndexEntry{}
	var order []string

	for _, record := range records {
		for _, author := range record.Authors {
			key := strings.ToLower(strings.TrimSpace(author))
			if key == "" {
				continue
			}
			entry, ok := byKey[key]
			if !ok {
				entry = &AuthorIndexEntry{Author: author}
				byKey[key] = entry
				order = append(order, key)
			}
			entry.Count++
			entry.Posts = append(entry.Posts, record.Slug)
		}
	}

	entries := make([]AuthorIndexEntry, 0, len(byKey))
	for _, key := range order {
		entry := byKey[key]
		url, err := b.urls.AuthorURL(key)
		if err != nil {
			return nil, err
		}
		entry.URL = url
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return strings.ToLower(entries[i].Author) < strings.ToLower(entries[j].Author)
	})

	return entries, nil
}

// Feed renders the public listing as a feed document.
func (b *Builder) Feed(ctx context.Context) (*Feed, error) {
	records, err := b.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	feed := &Feed{
		Version: feedVersion,
		Title:   b.feedTitle,
		Items:   make([]FeedItem, 0, len(records)),
	}

	for _, record := range records {
		url, err := b.urls.ArticleURL(record.Slug)
		if err != nil {
			return nil, err
		}
		feed.Items = append(feed.Items, FeedItem{
			ID:            record.ID.String(),
			URL:           url,
			Title:         record.Title,
			Summary:       record.Summary,
			DatePublished: record.Date,
			DateModified:  record.Lastmod,
			Tags:          record.Tags,
			Authors:       record.Authors,
		})
	}

	return feed, nil
}
