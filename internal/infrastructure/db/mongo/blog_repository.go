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

const postsCollection = "blog_posts"

// BlogRepository implements ports.BlogRepository on MongoDB. The collection
// carries a unique index on slug.
type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(postsCollection)}
}

type blogDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Slug        string             `bson:"slug"`
	Title       string             `bson:"title"`
	Excerpt     string             `bson:"excerpt,omitempty"`
	Content     string             `bson:"content"`
	CoverImage  string             `bson:"cover_image,omitempty"`
	Published   bool               `bson:"published"`
	PublishedAt *time.Time         `bson:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func blogFromDoc(d blogDoc) domain.BlogPost {
	return domain.BlogPost{
		ID:          d.ID.Hex(),
		Slug:        d.Slug,
		Title:       d.Title,
		Excerpt:     d.Excerpt,
		Content:     d.Content,
		CoverImage:  d.CoverImage,
		Published:   d.Published,
		PublishedAt: d.PublishedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func blogToDoc(p *domain.BlogPost) blogDoc {
	return blogDoc{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		CoverImage:  p.CoverImage,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *BlogRepository) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []domain.BlogPost
	for cur.Next(ctx) {
		var d blogDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, blogFromDoc(d))
	}
	return posts, cur.Err()
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var d blogDoc
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	post := blogFromDoc(d)
	return &post, nil
}

func (r *BlogRepository) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	res, err := r.coll.InsertOne(ctx, blogToDoc(post))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BlogRepository) Update(ctx context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	doc := blogToDoc(post)
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"slug":         doc.Slug,
		"title":        doc.Title,
		"excerpt":      doc.Excerpt,
		"content":      doc.Content,
		"cover_image":  doc.CoverImage,
		"published":    doc.Published,
		"published_at": doc.PublishedAt,
		"updated_at":   doc.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSlugExists
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}

	updated := *post
	updated.ID = id
	return &updated, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
