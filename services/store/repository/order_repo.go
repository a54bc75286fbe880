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

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(client *mongo.Client) (*OrderRepository, error) {
	collection := client.Database("store_db").Collection("orders")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		log.Printf("Error creating indexes for orders: %v", err)
		return nil, err
	}

	return &OrderRepository{collection: collection}, nil
}

func (r *OrderRepository) Insert(order models.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to insert order: %v", err)
	}

	return nil
}

func (r *OrderRepository) Get(id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %v", id, err)
	}

	return &order, nil
}

func (r *OrderRepository) ListByUser(userID int) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %v", userID, err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %v", err)
	}

	return orders, nil
}

// UpdateStatus: 주문 상태와 송장 번호 갱신
func (r *OrderRepository) UpdateStatus(id string, status, trackingNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if trackingNumber != "" {
		set["tracking_number"] = trackingNumber
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update order %s: %v", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", id)
	}

	return nil
}
