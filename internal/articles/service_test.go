package articles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	pub "github.com/simonmumina/codingeasypeasy-sub006/articles"
)

func testClock() func() time.Time {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func validCreateRequest() CreateArticleRequest {
	return CreateArticleRequest{
		Slug:    "goroutine-scheduling",
		Title:   "Understanding Goroutine Scheduling",
		Summary: "How the runtime multiplexes goroutines onto threads.",
		Date:    time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		Lastmod: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		Tags:    []string{"go", "concurrency"},
		Authors: []string{"default"},
	}
}

func newTestService(t *testing.T) (pub.Service, *MemoryArticleRepository) {
	t.Helper()
	repo := NewMemoryArticleRepository()
	svc := NewService(repo, WithClock(testClock()))
	return svc, repo
}

func TestCreateArticle(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if record.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if record.Slug != "goroutine-scheduling" {
		t.Fatalf("slug mismatch: %q", record.Slug)
	}
	if record.Status() != "published" {
		t.Fatalf("expected published status, got %q", record.Status())
	}
}

func TestCreateArticleDeterministicID(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := NewService(NewMemoryArticleRepository(), WithClock(testClock()))
	again, err := other.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create (fresh store): %v", err)
	}

	if record.ID != again.ID {
		t.Fatalf("expected deterministic IDs, got %s vs %s", record.ID, again.ID)
	}
}

func TestCreateArticleValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name    string
		mutate  func(*CreateArticleRequest)
		wantErr error
	}{
		{"missing slug", func(r *CreateArticleRequest) { r.Slug = " " }, pub.ErrSlugRequired},
		{"invalid slug", func(r *CreateArticleRequest) { r.Slug = "Spaces And Caps" }, pub.ErrSlugInvalid},
		{"missing title", func(r *CreateArticleRequest) { r.Title = "" }, pub.ErrTitleRequired},
		{"missing summary", func(r *CreateArticleRequest) { r.Summary = "  " }, pub.ErrSummaryRequired},
		{"missing date", func(r *CreateArticleRequest) { r.Date = time.Time{} }, pub.ErrDateRequired},
		{"no tags", func(r *CreateArticleRequest) { r.Tags = nil }, pub.ErrTagsRequired},
		{"blank tag", func(r *CreateArticleRequest) { r.Tags = []string{"go", " "} }, pub.ErrTagEmpty},
		{"no authors", func(r *CreateArticleRequest) { r.Authors = []string{} }, pub.ErrAuthorsRequired},
		{"blank author", func(r *CreateArticleRequest) { r.Authors = []string{""} }, pub.ErrAuthorEmpty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			if _, err := svc.Create(context.Background(), req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateArticleLastmodDefaultsToDate(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.Lastmod = time.Time{}

	record, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !record.Lastmod.Equal(record.Date) {
		t.Fatalf("expected lastmod to default to date")
	}
}

func TestCreateArticleRejectsLastmodBeforeDate(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.Lastmod = req.Date.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, pub.ErrDateAfterLastmod) {
		t.Fatalf("expected date order error, got %v", err)
	}

	var orderErr *DateOrderError
	if !errors.As(err, &orderErr) || orderErr.Slug != "goroutine-scheduling" {
		t.Fatalf("expected structured DateOrderError, got %#v", err)
	}
}

func TestCreateArticleSlugConflict(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), validCreateRequest())
	if !errors.Is(err, pub.ErrSlugExists) {
		t.Fatalf("expected slug conflict, got %v", err)
	}
}

func TestCreateArticleDeduplicatesTags(t *testing.T) {
	svc, _ := newTestService(t)

	req := validCreateRequest()
	req.Tags = []string{"Go", "go", "concurrency", "GO"}

	record, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(record.Tags) != 2 || record.Tags[0] != "Go" || record.Tags[1] != "concurrency" {
		t.Fatalf("tags not de-duplicated preserving order: %#v", record.Tags)
	}
}

func TestUpdateArticle(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), UpdateArticleRequest{
		ID:      created.ID,
		Title:   "Understanding Goroutine Scheduling, Revised",
		Summary: created.Summary,
		Lastmod: created.Lastmod.AddDate(0, 1, 0),
		Tags:    created.Tags,
		Authors: created.Authors,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "Understanding Goroutine Scheduling, Revised" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if !updated.Date.Equal(created.Date) {
		t.Fatalf("date must not move on update")
	}
}

func TestUpdateArticleDateImmutable(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(context.Background(), UpdateArticleRequest{
		ID:      created.ID,
		Date:    created.Date.AddDate(0, 0, 1),
		Title:   created.Title,
		Summary: created.Summary,
		Tags:    created.Tags,
		Authors: created.Authors,
	})
	if !errors.Is(err, pub.ErrDateImmutable) {
		t.Fatalf("expected immutable date error, got %v", err)
	}
}

func TestUpdateArticleRejectsLastmodBeforeDate(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(context.Background(), UpdateArticleRequest{
		ID:      created.ID,
		Title:   created.Title,
		Summary: created.Summary,
		Lastmod: created.Date.AddDate(0, 0, -2),
		Tags:    created.Tags,
		Authors: created.Authors,
	})
	if !errors.Is(err, pub.ErrDateAfterLastmod) {
		t.Fatalf("expected date order error, got %v", err)
	}
}

func TestUpdateArticleMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), UpdateArticleRequest{
		ID:      uuid.New(),
		Title:   "x",
		Summary: "y",
		Tags:    []string{"go"},
		Authors: []string{"default"},
	})
	if !errors.Is(err, pub.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetBySlug(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	record, err := svc.GetBySlug(context.Background(), created.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if record.ID != created.ID {
		t.Fatalf("record mismatch")
	}

	if _, err := svc.GetBySlug(context.Background(), "missing-slug"); !errors.Is(err, pub.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListOrderingAndFilters(t *testing.T) {
	svc, _ := newTestService(t)

	seed := []CreateArticleRequest{
		{
			Slug: "older-post", Title: "Older", Summary: "s",
			Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Tags: []string{"go"}, Authors: []string{"default"},
		},
		{
			Slug: "newer-post", Title: "Newer", Summary: "s",
			Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Tags: []string{"go", "concurrency"}, Authors: []string{"guest"},
		},
		{
			Slug: "a-same-day", Title: "Tie A", Summary: "s",
			Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Tags: []string{"testing"}, Authors: []string{"default"},
		},
		{
			Slug: "b-same-day", Title: "Tie B", Summary: "s",
			Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Tags: []string{"testing"}, Authors: []string{"default"},
		},
		{
			Slug: "hidden-draft", Title: "Draft", Summary: "s", Draft: true,
			Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Tags: []string{"go"}, Authors: []string{"default"},
		},
	}
	for _, req := range seed {
		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Fatalf("seed %s: %v", req.Slug, err)
		}
	}

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	got := make([]string, 0, len(records))
	for _, record := range records {
		got = append(got, record.Slug)
	}
	want := []string{"newer-post", "a-same-day", "b-same-day", "older-post"}
	if len(got) != len(want) {
		t.Fatalf("unexpected listing: %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %#v want %#v", i, got, want)
		}
	}

	withDrafts, err := svc.List(context.Background(), pub.WithDrafts())
	if err != nil {
		t.Fatalf("List with drafts: %v", err)
	}
	if len(withDrafts) != 5 || withDrafts[0].Slug != "hidden-draft" {
		t.Fatalf("draft listing mismatch: %#v", withDrafts)
	}

	tagged, err := svc.List(context.Background(), pub.WithTag("Concurrency"))
	if err != nil {
		t.Fatalf("List by tag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].Slug != "newer-post" {
		t.Fatalf("tag filter mismatch: %#v", tagged)
	}

	byAuthor, err := svc.List(context.Background(), pub.WithAuthor("guest"))
	if err != nil {
		t.Fatalf("List by author: %v", err)
	}
	if len(byAuthor) != 1 || byAuthor[0].Slug != "newer-post" {
		t.Fatalf("author filter mismatch: %#v", byAuthor)
	}
}

func TestDeleteArticle(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), DeleteArticleRequest{ID: created.ID}); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.GetBySlug(context.Background(), created.Slug); !errors.Is(err, pub.ErrNotFound) {
		t.Fatalf("soft-deleted record should be hidden, got %v", err)
	}

	// Soft delete keeps the row.
	if _, ok := repo.records[created.ID]; !ok {
		t.Fatalf("soft delete should retain the record")
	}

	if err := svc.Delete(context.Background(), DeleteArticleRequest{ID: created.ID, HardDelete: true}); !errors.Is(err, pub.ErrNotFound) {
		t.Fatalf("deleting a soft-deleted record should report not found, got %v", err)
	}
}
