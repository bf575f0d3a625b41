package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// TalentService manages the talent roster. Public reads see active talents
// only.
type TalentService struct {
	repo ports.TalentRepository
	log  zerolog.Logger
}

func NewTalentService(repo ports.TalentRepository, log zerolog.Logger) *TalentService {
	return &TalentService{repo: repo, log: log}
}

func (s *TalentService) ListActive(ctx context.Context) ([]domain.Talent, error) {
	return s.repo.List(ctx, true)
}

func (s *TalentService) ListAll(ctx context.Context) ([]domain.Talent, error) {
	return s.repo.List(ctx, false)
}

func (s *TalentService) GetBySlug(ctx context.Context, slug string) (*domain.Talent, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *TalentService) Create(ctx context.Context, talent *domain.Talent) (*domain.Talent, error) {
	now := time.Now().UTC()
	talent.CreatedAt = now
	talent.UpdatedAt = now

	created, err := s.repo.Create(ctx, talent)
	if err != nil {
		return nil, fmt.Errorf("create talent: %w", err)
	}
	s.log.Info().Str("slug", created.Slug).Msg("talent created")
	return created, nil
}

func (s *TalentService) Update(ctx context.Context, id string, talent *domain.Talent) (*domain.Talent, error) {
	talent.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, id, talent)
	if err != nil {
		return nil, fmt.Errorf("update talent: %w", err)
	}
	return updated, nil
}

func (s *TalentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete talent: %w", err)
	}
	s.log.Info().Str("id", id).Msg("talent deleted")
	return nil
}
