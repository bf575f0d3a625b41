package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
)

type stubBlogRepo struct {
	posts map[string]*domain.BlogPost // keyed by slug
	next  int
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{posts: make(map[string]*domain.BlogPost)}
}

func (r *stubBlogRepo) List(_ context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	out := make([]domain.BlogPost, 0, len(r.posts))
	for _, p := range r.posts {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubBlogRepo) FindBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	p, ok := r.posts[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubBlogRepo) Create(_ context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	if _, exists := r.posts[post.Slug]; exists {
		return nil, domain.ErrSlugExists
	}
	r.next++
	clone := *post
	clone.ID = fmt.Sprintf("p%d", r.next)
	r.posts[post.Slug] = &clone
	out := clone
	return &out, nil
}

func (r *stubBlogRepo) Update(_ context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error) {
	for slug, existing := range r.posts {
		if existing.ID == id {
			clone := *post
			clone.ID = id
			delete(r.posts, slug)
			r.posts[post.Slug] = &clone
			out := clone
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubBlogRepo) Delete(_ context.Context, id string) error {
	for slug, existing := range r.posts {
		if existing.ID == id {
			delete(r.posts, slug)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestBlogService_CreatePublished_StampsPublishedAt(t *testing.T) {
	svc := NewBlogService(newStubBlogRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.BlogPost{
		Slug:      "launch",
		Title:     "Launch",
		Content:   "We launched.",
		Published: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.PublishedAt == nil {
		t.Fatalf("expected PublishedAt set on a published post")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps set: %+v", created)
	}
}

func TestBlogService_CreateDraft_NoPublishedAt(t *testing.T) {
	svc := NewBlogService(newStubBlogRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.BlogPost{
		Slug:    "draft",
		Title:   "Draft",
		Content: "wip",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.PublishedAt != nil {
		t.Fatalf("draft must not carry PublishedAt")
	}
}

func TestBlogService_PublishOnUpdate(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, zerolog.Nop())

	draft, err := svc.Create(context.Background(), &domain.BlogPost{Slug: "post", Title: "Post", Content: "body"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), draft.ID, &domain.BlogPost{
		Slug:      "post",
		Title:     "Post",
		Content:   "body",
		Published: true,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PublishedAt == nil {
		t.Fatalf("publishing via update must stamp PublishedAt")
	}
}

func TestBlogService_DuplicateSlug(t *testing.T) {
	svc := NewBlogService(newStubBlogRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.BlogPost{Slug: "one", Title: "A", Content: "a"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.BlogPost{Slug: "one", Title: "B", Content: "b"}); !errors.Is(err, domain.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestBlogService_ListPublishedFilters(t *testing.T) {
	repo := newStubBlogRepo()
	svc := NewBlogService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.BlogPost{Slug: "live", Title: "Live", Content: "x", Published: true}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.BlogPost{Slug: "hidden", Title: "Hidden", Content: "y"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	published, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(published) != 1 || published[0].Slug != "live" {
		t.Fatalf("unexpected published list: %+v", published)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 posts in admin view, got %d", len(all))
	}
}
