// File: database/repository/settings/settings.go
package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"haulify/database"
	"haulify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pricingDocID = "pricing"

// SettingsRepository persists admin-managed configuration documents.
type SettingsRepository interface {
	GetPricing(ctx context.Context) (*models.PricingSettings, error)
	SavePricing(ctx context.Context, settings *models.PricingSettings) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.Database()
	return &mongoSettingsRepo{
		coll: db.Collection("settings"),
	}
}

func (repo *mongoSettingsRepo) GetPricing(ctx context.Context) (*models.PricingSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		Pricing models.PricingSettings `bson:"pricing"`
	}
	err := repo.coll.FindOne(ctx, bson.M{"_id": pricingDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing settings: %w", err)
	}
	return &doc.Pricing, nil
}

func (repo *mongoSettingsRepo) SavePricing(ctx context.Context, settings *models.PricingSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	settings.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{"pricing": settings}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"_id": pricingDocID}, update, opts); err != nil {
		return fmt.Errorf("failed to save pricing settings: %w", err)
	}
	return nil
}
