package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/torch-group/torch-api/internal/core/domain"
)

// The four thin content collections share the same persistence shape, so
// their repositories live together here.

const (
	teamCollection     = "team_members"
	servicesCollection = "services"
	projectsCollection = "projects"
	brandsCollection   = "brands"
)

// decodeAll drains a cursor into out via the given per-document decode step.
func decodeAll[T any](ctx context.Context, cur *mongo.Cursor, decode func(*mongo.Cursor) (T, error)) ([]T, error) {
	defer cur.Close(ctx)
	var out []T
	for cur.Next(ctx) {
		item, err := decode(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, cur.Err()
}

func idFilter(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return bson.M{"_id": oid}, nil
}

// --- Team members ---

type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(teamCollection)}
}

type teamDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Title     string             `bson:"title"`
	Photo     string             `bson:"photo,omitempty"`
	Order     int                `bson:"order"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return decodeAll(ctx, cur, func(c *mongo.Cursor) (domain.TeamMember, error) {
		var d teamDoc
		if err := c.Decode(&d); err != nil {
			return domain.TeamMember{}, fmt.Errorf("decode team member: %w", err)
		}
		return domain.TeamMember{
			ID: d.ID.Hex(), Name: d.Name, Title: d.Title, Photo: d.Photo,
			Order: d.Order, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		}, nil
	})
}

func (r *TeamRepository) Create(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	doc := teamDoc{Name: m.Name, Title: m.Title, Photo: m.Photo, Order: m.Order, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert team member: %w", err)
	}
	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TeamRepository) Update(ctx context.Context, id string, m *domain.TeamMember) (*domain.TeamMember, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"name": m.Name, "title": m.Title, "photo": m.Photo, "order": m.Order, "updated_at": m.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	updated := *m
	updated.ID = id
	return &updated, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Services ---

type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection(servicesCollection)}
}

type serviceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"`
	Name        string             `bson:"name"`
	Summary     string             `bson:"summary,omitempty"`
	Description string             `bson:"description,omitempty"`
	Order       int                `bson:"order"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return decodeAll(ctx, cur, func(c *mongo.Cursor) (domain.Service, error) {
		var d serviceDoc
		if err := c.Decode(&d); err != nil {
			return domain.Service{}, fmt.Errorf("decode service: %w", err)
		}
		return domain.Service{
			ID: d.ID.Hex(), Slug: d.Slug, Name: d.Name, Summary: d.Summary,
			Description: d.Description, Order: d.Order, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		}, nil
	})
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	doc := serviceDoc{
		Slug: svc.Slug, Name: svc.Name, Summary: svc.Summary,
		Description: svc.Description, Order: svc.Order, CreatedAt: svc.CreatedAt, UpdatedAt: svc.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("insert service: %w", err)
	}
	created := *svc
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, svc *domain.Service) (*domain.Service, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"slug": svc.Slug, "name": svc.Name, "summary": svc.Summary,
		"description": svc.Description, "order": svc.Order, "updated_at": svc.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	updated := *svc
	updated.ID = id
	return &updated, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Projects ---

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type projectDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Slug       string             `bson:"slug"`
	Name       string             `bson:"name"`
	Summary    string             `bson:"summary,omitempty"`
	CoverImage string             `bson:"cover_image,omitempty"`
	BrandID    string             `bson:"brand_id,omitempty"`
	Published  bool               `bson:"published"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r *ProjectRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Project, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return decodeAll(ctx, cur, func(c *mongo.Cursor) (domain.Project, error) {
		var d projectDoc
		if err := c.Decode(&d); err != nil {
			return domain.Project{}, fmt.Errorf("decode project: %w", err)
		}
		return domain.Project{
			ID: d.ID.Hex(), Slug: d.Slug, Name: d.Name, Summary: d.Summary,
			CoverImage: d.CoverImage, BrandID: d.BrandID, Published: d.Published,
			CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		}, nil
	})
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	doc := projectDoc{
		Slug: p.Slug, Name: p.Name, Summary: p.Summary, CoverImage: p.CoverImage,
		BrandID: p.BrandID, Published: p.Published, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}
	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, p *domain.Project) (*domain.Project, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"slug": p.Slug, "name": p.Name, "summary": p.Summary, "cover_image": p.CoverImage,
		"brand_id": p.BrandID, "published": p.Published, "updated_at": p.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	updated := *p
	updated.ID = id
	return &updated, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Brands ---

type BrandRepository struct {
	coll *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{coll: db.Collection(brandsCollection)}
}

type brandDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Slug      string             `bson:"slug"`
	Name      string             `bson:"name"`
	Logo      string             `bson:"logo,omitempty"`
	Website   string             `bson:"website,omitempty"`
	Active    bool               `bson:"active"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *BrandRepository) List(ctx context.Context, activeOnly bool) ([]domain.Brand, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return decodeAll(ctx, cur, func(c *mongo.Cursor) (domain.Brand, error) {
		var d brandDoc
		if err := c.Decode(&d); err != nil {
			return domain.Brand{}, fmt.Errorf("decode brand: %w", err)
		}
		return domain.Brand{
			ID: d.ID.Hex(), Slug: d.Slug, Name: d.Name, Logo: d.Logo,
			Website: d.Website, Active: d.Active, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		}, nil
	})
}

func (r *BrandRepository) Create(ctx context.Context, b *domain.Brand) (*domain.Brand, error) {
	doc := brandDoc{
		Slug: b.Slug, Name: b.Name, Logo: b.Logo, Website: b.Website,
		Active: b.Active, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("insert brand: %w", err)
	}
	created := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BrandRepository) Update(ctx context.Context, id string, b *domain.Brand) (*domain.Brand, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"slug": b.Slug, "name": b.Name, "logo": b.Logo, "website": b.Website,
		"active": b.Active, "updated_at": b.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("update brand: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	updated := *b
	updated.ID = id
	return &updated, nil
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
