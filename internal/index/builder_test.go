package index

import (
	"context"
	"testing"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	pub "github.com/simonmumina/codingeasypeasy-sub006/articles"
	internalarticles "github.com/simonmumina/codingeasypeasy-sub006/internal/articles"
)

func newTestResolver() *URLResolver {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "site",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"post":   "/blog/:slug",
					"tag":    "/tags/:tag",
					"author": "/about/:author",
				},
			},
		},
	})

	return NewURLResolver(URLResolverConfig{Manager: manager})
}

func seedArticles(t *testing.T) pub.Service {
	t.Helper()

	svc := internalarticles.NewService(internalarticles.NewMemoryArticleRepository())
	seed := []pub.CreateArticleRequest{
		{
			Slug: "css-grid-areas", Title: "CSS Grid Areas", Summary: "s",
			Date:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"CSS", "layout"},
			Authors: []string{"default"},
		},
		{
			Slug: "django-signals", Title: "Django Signals", Summary: "s",
			Date:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Lastmod: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"django", "python"},
			Authors: []string{"default", "guest"},
		},
		{
			Slug: "sql-window-functions", Title: "SQL Window Functions", Summary: "s",
			Date:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"sql", "css"},
			Authors: []string{"guest"},
		},
		{
			Slug: "unpublished-notes", Title: "Unpublished", Summary: "s", Draft: true,
			Date:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Tags:    []string{"css"},
			Authors: []string{"default"},
		},
	}
	for _, req := range seed {
		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Fatalf("seed %s: %v", req.Slug, err)
		}
	}
	return svc
}

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(BuilderConfig{
		Articles:  seedArticles(t),
		URLs:      newTestResolver(),
		FeedTitle: "Test Corpus",
	})
}

func TestPublicListExcludesDraftsAndOrders(t *testing.T) {
	builder := newTestBuilder(t)

	entries, err := builder.PublicList(context.Background())
	if err != nil {
		t.Fatalf("PublicList: %v", err)
	}

	want := []string{"sql-window-functions", "css-grid-areas", "django-signals"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, slug := range want {
		if entries[i].Slug != slug {
			t.Fatalf("entry %d mismatch: got %q want %q", i, entries[i].Slug, slug)
		}
	}

	if entries[0].URL != "https://example.com/blog/sql-window-functions" {
		t.Fatalf("unexpected URL: %q", entries[0].URL)
	}
	// Lastmod defaults to date when the source never declared one.
	if !entries[1].Lastmod.Equal(entries[1].Date) {
		t.Fatalf("lastmod should equal date for %q", entries[1].Slug)
	}
}

func TestTagIndexCountsAcrossRecords(t *testing.T) {
	builder := newTestBuilder(t)

	entries, err := builder.TagIndex(context.Background())
	if err != nil {
		t.Fatalf("TagIndex: %v", err)
	}

	if len(entries) != 5 {
		t.Fatalf("expected 5 tags, got %d", len(entries))
	}

	top := entries[0]
	if top.Slug != "css" || top.Count != 2 {
		t.Fatalf("expected css to lead with 2 posts, got %#v", top)
	}
	if top.URL != "https://example.com/tags/css" {
		t.Fatalf("unexpected tag URL: %q", top.URL)
	}
	// Tag matching is case-insensitive; the first authored casing wins.
	if top.Tag != "CSS" {
		t.Fatalf("expected authored casing preserved, got %q", top.Tag)
	}

	for _, entry := range entries {
		for _, post := range entry.Posts {
			if post == "unpublished-notes" {
				t.Fatalf("draft leaked into tag index: %#v", entry)
			}
		}
	}
}

func TestAuthorIndexCounts(t *testing.T) {
	builder := newTestBuilder(t)

	entries, err := builder.AuthorIndex(context.Background())
	if err != nil {
		t.Fatalf("AuthorIndex: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Count != 2 {
			t.Fatalf("expected each author on 2 public posts, got %#v", entry)
		}
	}
	if entries[0].Author != "default" {
		t.Fatalf("tie should break alphabetically, got %q first", entries[0].Author)
	}
	if entries[0].URL != "https://example.com/about/default" {
		t.Fatalf("unexpected author URL: %q", entries[0].URL)
	}
}

func TestFeed(t *testing.T) {
	builder := newTestBuilder(t)

	feed, err := builder.Feed(context.Background())
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}

	if feed.Version != feedVersion || feed.Title != "Test Corpus" {
		t.Fatalf("feed header mismatch: %#v", feed)
	}
	if len(feed.Items) != 3 {
		t.Fatalf("expected 3 feed items, got %d", len(feed.Items))
	}
	first := feed.Items[0]
	if first.Title != "SQL Window Functions" || first.ID == "" {
		t.Fatalf("unexpected first item: %#v", first)
	}
}

func TestBuilderWithoutRouteManager(t *testing.T) {
	builder := NewBuilder(BuilderConfig{
		Articles: seedArticles(t),
		URLs:     NewURLResolver(URLResolverConfig{}),
	})

	entries, err := builder.PublicList(context.Background())
	if err != nil {
		t.Fatalf("PublicList: %v", err)
	}
	for _, entry := range entries {
		if entry.URL != "" {
			t.Fatalf("expected empty URLs without a route manager, got %q", entry.URL)
		}
	}
}
