package tenantRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"turnero/config"
	"turnero/database"
	"turnero/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no tenant matches the slug.
var ErrNotFound = errors.New("tenant not found")

// MongoTenantRepo implements TenantRepository using MongoDB.
type MongoTenantRepo struct {
	coll *mongo.Collection
}

func NewMongoTenantRepo() *MongoTenantRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("tenants")
	return &MongoTenantRepo{coll: coll}
}

func (repo *MongoTenantRepo) GetBySlug(slug string) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var tenant models.Tenant
	err := repo.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&tenant)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant %s: %w", slug, err)
	}
	return &tenant, nil
}

func (repo *MongoTenantRepo) UpdateServices(slug string, services []models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{"$set": bson.M{"services": services}},
	)
	if err != nil {
		return fmt.Errorf("failed to update services for tenant %s: %w", slug, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
