package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// BlogService manages blog posts. Public reads see published posts only;
// the admin area sees everything.
type BlogService struct {
	repo ports.BlogRepository
	log  zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, log: log}
}

func (s *BlogService) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repo.List(ctx, true)
}

func (s *BlogService) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repo.List(ctx, false)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *BlogService) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.log.Info().Str("slug", created.Slug).Bool("published", created.Published).Msg("blog post created")
	return created, nil
}

func (s *BlogService) Update(ctx context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error) {
	now := time.Now().UTC()
	post.UpdatedAt = now
	if post.Published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	updated, err := s.repo.Update(ctx, id, post)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.log.Info().Str("id", id).Msg("blog post deleted")
	return nil
}
