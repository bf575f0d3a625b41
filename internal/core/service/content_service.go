package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// ContentService groups the thin CRUD surfaces that carry no logic beyond
// timestamps and visibility filters: team members, services, projects, and
// brands.
type ContentService struct {
	team     ports.TeamRepository
	services ports.ServiceRepository
	projects ports.ProjectRepository
	brands   ports.BrandRepository
	log      zerolog.Logger
}

func NewContentService(
	team ports.TeamRepository,
	services ports.ServiceRepository,
	projects ports.ProjectRepository,
	brands ports.BrandRepository,
	log zerolog.Logger,
) *ContentService {
	return &ContentService{team: team, services: services, projects: projects, brands: brands, log: log}
}

// --- Team members ---

func (s *ContentService) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	return s.team.List(ctx)
}

func (s *ContentService) CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	stamp(&m.CreatedAt, &m.UpdatedAt)
	return s.team.Create(ctx, m)
}

func (s *ContentService) UpdateTeamMember(ctx context.Context, id string, m *domain.TeamMember) (*domain.TeamMember, error) {
	m.UpdatedAt = time.Now().UTC()
	return s.team.Update(ctx, id, m)
}

func (s *ContentService) DeleteTeamMember(ctx context.Context, id string) error {
	return s.team.Delete(ctx, id)
}

// --- Services ---

func (s *ContentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *ContentService) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	stamp(&svc.CreatedAt, &svc.UpdatedAt)
	return s.services.Create(ctx, svc)
}

func (s *ContentService) UpdateService(ctx context.Context, id string, svc *domain.Service) (*domain.Service, error) {
	svc.UpdatedAt = time.Now().UTC()
	return s.services.Update(ctx, id, svc)
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

// --- Projects ---

func (s *ContentService) ListPublishedProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx, true)
}

func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx, false)
}

func (s *ContentService) CreateProject(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	stamp(&p.CreatedAt, &p.UpdatedAt)
	return s.projects.Create(ctx, p)
}

func (s *ContentService) UpdateProject(ctx context.Context, id string, p *domain.Project) (*domain.Project, error) {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, id, p)
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

// --- Brands ---

func (s *ContentService) ListActiveBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx, true)
}

func (s *ContentService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.brands.List(ctx, false)
}

func (s *ContentService) CreateBrand(ctx context.Context, b *domain.Brand) (*domain.Brand, error) {
	stamp(&b.CreatedAt, &b.UpdatedAt)
	return s.brands.Create(ctx, b)
}

func (s *ContentService) UpdateBrand(ctx context.Context, id string, b *domain.Brand) (*domain.Brand, error) {
	b.UpdatedAt = time.Now().UTC()
	return s.brands.Update(ctx, id, b)
}

func (s *ContentService) DeleteBrand(ctx context.Context, id string) error {
	return s.brands.Delete(ctx, id)
}

func stamp(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}
