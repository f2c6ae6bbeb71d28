package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"turnero/config"
	"turnero/database"
	"turnero/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("appointments")
	return &MongoAppointmentRepo{coll: coll}
}

func (repo *MongoAppointmentRepo) Insert(appt models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Upsert on the event ID so a retried task never duplicates the record.
	_, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": appt.ID},
		bson.M{"$setOnInsert": appt},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to insert appointment %s: %w", appt.ID, err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) ListByTenant(tenantID string, limit int64) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"startAt": 1}).SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, bson.M{"tenantId": tenantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for tenant %s: %w", tenantID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	return nil
}
