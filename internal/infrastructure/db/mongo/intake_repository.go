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

const (
	contactsCollection   = "contact_messages"
	newsletterCollection = "newsletter_subscribers"
)

// ContactRepository implements ports.ContactRepository on MongoDB.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactsCollection)}
}

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject,omitempty"`
	Message   string             `bson:"message"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ContactRepository) Insert(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	doc := contactDoc{
		Name: msg.Name, Email: msg.Email, Subject: msg.Subject,
		Message: msg.Message, CreatedAt: msg.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	created := *msg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return decodeAll(ctx, cur, func(c *mongo.Cursor) (domain.ContactMessage, error) {
		var d contactDoc
		if err := c.Decode(&d); err != nil {
			return domain.ContactMessage{}, fmt.Errorf("decode contact: %w", err)
		}
		return domain.ContactMessage{
			ID: d.ID.Hex(), Name: d.Name, Email: d.Email, Subject: d.Subject,
			Message: d.Message, Read: d.Read, CreatedAt: d.CreatedAt,
		}, nil
	})
}

// NewsletterRepository implements ports.NewsletterRepository on MongoDB. The
// collection carries a unique index on email.
type NewsletterRepository struct {
	coll *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{coll: db.Collection(newsletterCollection)}
}

type subscriberDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Unsubscribed bool               `bson:"unsubscribed"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	var d subscriberDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	return &domain.NewsletterSubscriber{
		ID: d.ID.Hex(), Email: d.Email, Unsubscribed: d.Unsubscribed,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}, nil
}

func (r *NewsletterRepository) Insert(ctx context.Context, sub *domain.NewsletterSubscriber) (*domain.NewsletterSubscriber, error) {
	doc := subscriberDoc{
		Email: sub.Email, Unsubscribed: sub.Unsubscribed,
		CreatedAt: sub.CreatedAt, UpdatedAt: sub.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}
	created := *sub
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *NewsletterRepository) SetUnsubscribed(ctx context.Context, email string, unsubscribed bool) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"unsubscribed": unsubscribed,
		"updated_at":   time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update subscriber: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NewsletterRepository) List(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return decodeAll(ctx, cur, func(c *mongo.Cursor) (domain.NewsletterSubscriber, error) {
		var d subscriberDoc
		if err := c.Decode(&d); err != nil {
			return domain.NewsletterSubscriber{}, fmt.Errorf("decode subscriber: %w", err)
		}
		return domain.NewsletterSubscriber{
			ID: d.ID.Hex(), Email: d.Email, Unsubscribed: d.Unsubscribed,
			CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		}, nil
	})
}
