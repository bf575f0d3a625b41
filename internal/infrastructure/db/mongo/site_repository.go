package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/torch-group/torch-api/internal/core/domain"
)

const settingsCollection = "site_settings"

// settingsDocID keys the single settings document so Put stays an upsert.
const settingsDocID = "site"

// SettingsRepository implements ports.SettingsRepository on MongoDB.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

type settingsDoc struct {
	ID           string            `bson:"_id"`
	SiteName     string            `bson:"site_name"`
	Tagline      string            `bson:"tagline,omitempty"`
	ContactEmail string            `bson:"contact_email,omitempty"`
	SocialLinks  map[string]string `bson:"social_links,omitempty"`
	UpdatedAt    time.Time         `bson:"updated_at"`
}

// Get returns the settings singleton, or defaults when none has been saved.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	var d settingsDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.SiteSettings{SiteName: "Torch Group"}, nil
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &domain.SiteSettings{
		SiteName:     d.SiteName,
		Tagline:      d.Tagline,
		ContactEmail: d.ContactEmail,
		SocialLinks:  d.SocialLinks,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func (r *SettingsRepository) Put(ctx context.Context, s *domain.SiteSettings) error {
	doc := settingsDoc{
		ID:           settingsDocID,
		SiteName:     s.SiteName,
		Tagline:      s.Tagline,
		ContactEmail: s.ContactEmail,
		SocialLinks:  s.SocialLinks,
		UpdatedAt:    s.UpdatedAt,
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// StatsRepository implements ports.StatsRepository by counting the content
// collections.
type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Counts(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	counts := []struct {
		collection string
		dest       *int64
	}{
		{postsCollection, &stats.Posts},
		{talentsCollection, &stats.Talents},
		{projectsCollection, &stats.Projects},
		{contactsCollection, &stats.Contacts},
		{newsletterCollection, &stats.Subscribers},
	}
	for _, c := range counts {
		n, err := r.db.Collection(c.collection).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.collection, err)
		}
		*c.dest = n
	}
	return stats, nil
}
