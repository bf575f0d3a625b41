package ports

import (
	"context"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// BlogRepository persists blog posts. FindBySlug returns domain.ErrNotFound
// for unknown slugs; Create returns domain.ErrSlugExists on a slug collision.
type BlogRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

// TalentRepository persists roster entries.
type TalentRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Talent, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Talent, error)
	Create(ctx context.Context, talent *domain.Talent) (*domain.Talent, error)
	Update(ctx context.Context, id string, talent *domain.Talent) (*domain.Talent, error)
	Delete(ctx context.Context, id string) error
}

// TeamRepository persists team members, listed by display order.
type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, id string, member *domain.TeamMember) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository persists marketing offerings.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id string, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// ProjectRepository persists portfolio entries.
type ProjectRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// BrandRepository persists brand logos.
type BrandRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Brand, error)
	Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	Update(ctx context.Context, id string, brand *domain.Brand) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}

// BlogService exposes blog operations to the transport layer.
type BlogService interface {
	ListPublished(ctx context.Context) ([]domain.BlogPost, error)
	ListAll(ctx context.Context) ([]domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

// ContentService exposes the remaining site sections — team, offerings,
// projects, brands — to the transport layer.
type ContentService interface {
	ListTeam(ctx context.Context) ([]domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, member *domain.TeamMember) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, svc *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListPublishedProjects(ctx context.Context) ([]domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, project *domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListActiveBrands(ctx context.Context) ([]domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, id string, brand *domain.Brand) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

// TalentService exposes roster operations to the transport layer.
type TalentService interface {
	ListActive(ctx context.Context) ([]domain.Talent, error)
	ListAll(ctx context.Context) ([]domain.Talent, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Talent, error)
	Create(ctx context.Context, talent *domain.Talent) (*domain.Talent, error)
	Update(ctx context.Context, id string, talent *domain.Talent) (*domain.Talent, error)
	Delete(ctx context.Context, id string) error
}
