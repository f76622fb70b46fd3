package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mamanmange/internal/models"
)

// SettingsStore manages the site_settings singleton document.
type SettingsStore struct {
	db *mongo.Database
}

func NewSettingsStore(db *mongo.Database) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the settings document, or mongo.ErrNoDocuments when the site
// has never been configured.
func (s *SettingsStore) Get(ctx context.Context) (models.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var settings models.SiteSettings
	err := s.db.Collection("site_settings").FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// Replace overwrites the singleton wholesale, creating it on first save. The
// settings form always submits the full object, so a field-level patch is
// never needed.
func (s *SettingsStore) Replace(ctx context.Context, settings models.SiteSettings) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	settings.ID = primitive.NilObjectID
	_, err := s.db.Collection("site_settings").ReplaceOne(
		ctx,
		bson.M{},
		settings,
		options.Replace().SetUpsert(true),
	)
	return err
}
