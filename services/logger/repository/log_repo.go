package repository

import (
	"context"
	"fmt"
	"time"

	"wax/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LogRepository struct {
	collection *mongo.Collection
}

func NewLogRepository(client *mongo.Client) *LogRepository {
	return &LogRepository{
		collection: client.Database("log_db").Collection("logs"),
	}
}

func (r *LogRepository) Insert(entry models.BaseLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to insert log: %v", err)
	}

	return nil
}

// ListRecent: 서비스별 최근 로그 조회 (service < 0이면 전체)
func (r *LogRepository) ListRecent(service int, limit int64) ([]models.BaseLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if service >= 0 {
		filter["service"] = service
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %v", err)
	}
	defer cursor.Close(ctx)

	var logs []models.BaseLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode logs: %v", err)
	}

	return logs, nil
}
