package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/torch-group/torch-api/internal/core/domain"
)

const eventsCollection = "analytics_events"

// AnalyticsRepository implements ports.EventRepository on MongoDB.
type AnalyticsRepository struct {
	coll *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{coll: db.Collection(eventsCollection)}
}

// Insert persists one analytics event. Events are append-only.
func (r *AnalyticsRepository) Insert(ctx context.Context, event *domain.AnalyticsEvent) error {
	doc := bson.M{
		"type":       event.Type.String(),
		"created_at": event.CreatedAt,
	}
	if len(event.Meta) > 0 {
		meta := bson.M{}
		for k, v := range event.Meta {
			meta[k] = v
		}
		doc["meta"] = meta
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
