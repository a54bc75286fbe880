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

type TakeoverRepository struct {
	collection *mongo.Collection
}

func NewTakeoverRepository(client *mongo.Client) (*TakeoverRepository, error) {
	collection := client.Database("lobby_db").Collection("takeover_requests")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// key 기준 유니크 인덱스 (정방향/미러 문서 키 중복 방지)
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "expires_at", Value: 1}},
		},
	})
	if err != nil {
		log.Printf("Error creating indexes for takeover_requests: %v", err)
		return nil, err
	}

	return &TakeoverRepository{collection: collection}, nil
}

// GetByKey: 키로 요청 문서 조회, 없으면 nil
func (r *TakeoverRepository) GetByKey(key string) (*models.TakeoverRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var request models.TakeoverRequest
	err := r.collection.FindOne(ctx, bson.M{"key": key}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to find takeover request %s: %v", key, err)
	}

	return &request, nil
}

// InsertPair: 정방향 문서와 미러 문서를 함께 생성
func (r *TakeoverRepository) InsertPair(forward, mirror models.TakeoverRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertMany(ctx, []interface{}{forward, mirror})
	if err != nil {
		return fmt.Errorf("failed to insert takeover request pair: %v", err)
	}

	return nil
}

// UpdatePairStatus: 두 문서의 상태를 갱신, 승인 시 스트림 접속 정보도 기록
func (r *TakeoverRepository) UpdatePairStatus(keys []string, status, streamKey, serverURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if streamKey != "" {
		set["stream_key"] = streamKey
		set["server_url"] = serverURL
	}

	_, err := r.collection.UpdateMany(ctx, bson.M{"key": bson.M{"$in": keys}}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update takeover requests %v: %v", keys, err)
	}

	return nil
}

// DeletePair: 정방향/미러 문서를 함께 삭제
func (r *TakeoverRepository) DeletePair(keys []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{"key": bson.M{"$in": keys}})
	if err != nil {
		return fmt.Errorf("failed to delete takeover requests %v: %v", keys, err)
	}

	return nil
}

// ExpirePending: 만료 시각이 지난 pending 요청을 expired로 전환
func (r *TakeoverRepository) ExpirePending(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":     models.TakeoverStatusPending,
		"expires_at": bson.M{"$lt": now},
	}
	update := bson.M{"$set": bson.M{
		"status":     models.TakeoverStatusExpired,
		"updated_at": now,
	}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending takeover requests: %v", err)
	}

	return result.ModifiedCount, nil
}
