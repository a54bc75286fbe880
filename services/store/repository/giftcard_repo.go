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

type GiftCardRepository struct {
	collection *mongo.Collection
}

func NewGiftCardRepository(client *mongo.Client) (*GiftCardRepository, error) {
	collection := client.Database("store_db").Collection("gift_cards")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 코드 기준 유니크 인덱스
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Error creating index for gift_cards: %v", err)
		return nil, err
	}

	return &GiftCardRepository{collection: collection}, nil
}

func (r *GiftCardRepository) Insert(card models.GiftCard) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, card)
	if err != nil {
		return fmt.Errorf("failed to insert gift card: %v", err)
	}

	return nil
}

// GetByCode: 코드로 기프트 카드 조회, 없으면 nil
func (r *GiftCardRepository) GetByCode(code string) (*models.GiftCard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var card models.GiftCard
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to find gift card %s: %v", code, err)
	}

	return &card, nil
}

// Deduct: 잔액이 충분한 active 카드에서만 차감하고 갱신된 카드를 반환.
// 조건에 맞는 카드가 없으면 nil. 검증과 차감이 한 문서 연산이라
// 동시 사용 시에도 잔액이 음수가 될 수 없다.
func (r *GiftCardRepository) Deduct(code string, amountCents int) (*models.GiftCard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"code":          code,
		"status":        models.GiftCardStatusActive,
		"balance_cents": bson.M{"$gte": amountCents},
	}
	update := bson.M{
		"$inc": bson.M{"balance_cents": -amountCents},
		"$set": bson.M{"updated_at": time.Now()},
	}

	var card models.GiftCard
	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to deduct gift card %s: %v", code, err)
	}

	return &card, nil
}

// UpdateBalance: 잔액과 상태 갱신
func (r *GiftCardRepository) UpdateBalance(code string, balanceCents int, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"balance_cents": balanceCents,
		"status":        status,
		"updated_at":    time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"code": code}, update)
	if err != nil {
		return fmt.Errorf("failed to update gift card %s: %v", code, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("gift card %s not found", code)
	}

	return nil
}
