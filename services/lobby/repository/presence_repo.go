package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"wax/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PresenceRepository struct {
	collection *mongo.Collection
}

func NewPresenceRepository(client *mongo.Client) (*PresenceRepository, error) {
	collection := client.Database("lobby_db").Collection("presence")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// user_id 기준 유니크 인덱스 (중복 조인 방지)
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "last_seen", Value: -1}},
		},
	})
	if err != nil {
		log.Printf("Error creating indexes for presence: %v", err)
		return nil, err
	}

	return &PresenceRepository{collection: collection}, nil
}

// Get: 유저의 프레즌스 조회, 없으면 nil
func (r *PresenceRepository) Get(userID int) (*models.Presence, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var presence models.Presence
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&presence)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to find presence for user %d: %v", userID, err)
	}

	return &presence, nil
}

// Upsert: 프레즌스 생성 또는 덮어쓰기 (조인은 멱등)
func (r *PresenceRepository) Upsert(presence models.Presence) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": presence.UserID}
	update := bson.M{"$set": presence}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert presence for user %d: %v", presence.UserID, err)
	}

	return nil
}

// Delete: 프레즌스 삭제
func (r *PresenceRepository) Delete(userID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete presence for user %d: %v", userID, err)
	}

	return nil
}

// ListSince: cutoff 이후에 하트비트가 있었던 프레즌스 목록
func (r *PresenceRepository) ListSince(cutoff time.Time) ([]models.Presence, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"last_seen": bson.M{"$gte": cutoff}}
	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list presence: %v", err)
	}
	defer cursor.Close(ctx)

	var presences []models.Presence
	if err := cursor.All(ctx, &presences); err != nil {
		return nil, fmt.Errorf("failed to decode presence list: %v", err)
	}

	return presences, nil
}

// DeleteOlderThan: cutoff 이전의 오래된 프레즌스 제거 (스테일 스윕)
func (r *PresenceRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{"last_seen": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale presence: %v", err)
	}

	return result.DeletedCount, nil
}
