package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/torch-group/torch-api/internal/core/domain"
)

const talentsCollection = "talents"

// TalentRepository implements ports.TalentRepository on MongoDB. The
// collection carries a unique index on slug.
type TalentRepository struct {
	coll *mongo.Collection
}

func NewTalentRepository(db *mongo.Database) *TalentRepository {
	return &TalentRepository{coll: db.Collection(talentsCollection)}
}

type talentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Slug       string             `bson:"slug"`
	Name       string             `bson:"name"`
	Discipline string             `bson:"discipline,omitempty"`
	Bio        string             `bson:"bio,omitempty"`
	Photo      string             `bson:"photo,omitempty"`
	Active     bool               `bson:"active"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func talentFromDoc(d talentDoc) domain.Talent {
	return domain.Talent{
		ID:         d.ID.Hex(),
		Slug:       d.Slug,
		Name:       d.Name,
		Discipline: d.Discipline,
		Bio:        d.Bio,
		Photo:      d.Photo,
		Active:     d.Active,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *TalentRepository) List(ctx context.Context, activeOnly bool) ([]domain.Talent, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list talents: %w", err)
	}
	defer cur.Close(ctx)

	var talents []domain.Talent
	for cur.Next(ctx) {
		var d talentDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode talent: %w", err)
		}
		talents = append(talents, talentFromDoc(d))
	}
	return talents, cur.Err()
}

func (r *TalentRepository) FindBySlug(ctx context.Context, slug string) (*domain.Talent, error) {
	var d talentDoc
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find talent: %w", err)
	}
	talent := talentFromDoc(d)
	return &talent, nil
}

func (r *TalentRepository) Create(ctx context.Context, talent *domain.Talent) (*domain.Talent, error) {
	doc := talentDoc{
		Slug:       talent.Slug,
		Name:       talent.Name,
		Discipline: talent.Discipline,
		Bio:        talent.Bio,
		Photo:      talent.Photo,
		Active:     talent.Active,
		CreatedAt:  talent.CreatedAt,
		UpdatedAt:  talent.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("insert talent: %w", err)
	}

	created := *talent
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TalentRepository) Update(ctx context.Context, id string, talent *domain.Talent) (*domain.Talent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"slug":       talent.Slug,
		"name":       talent.Name,
		"discipline": talent.Discipline,
		"bio":        talent.Bio,
		"photo":      talent.Photo,
		"active":     talent.Active,
		"updated_at": talent.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("update talent: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}

	updated := *talent
	updated.ID = id
	return &updated, nil
}

func (r *TalentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete talent: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
