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

type VinylRepository struct {
	collection *mongo.Collection
}

func NewVinylRepository(client *mongo.Client) *VinylRepository {
	return &VinylRepository{
		collection: client.Database("store_db").Collection("vinyl_listings"),
	}
}

func (r *VinylRepository) Insert(listing models.VinylListing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, listing)
	if err != nil {
		return fmt.Errorf("failed to insert vinyl listing: %v", err)
	}

	return nil
}

func (r *VinylRepository) Get(id string) (*models.VinylListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var listing models.VinylListing
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to find vinyl listing %s: %v", id, err)
	}

	return &listing, nil
}

// ListActive: 판매 중인 리스팅 목록
func (r *VinylRepository) ListActive() ([]models.VinylListing, error) {
	return r.list(bson.M{"status": models.ListingStatusActive})
}

// ListBySeller: 판매자의 리스팅 목록 (상태 무관)
func (r *VinylRepository) ListBySeller(sellerID int) ([]models.VinylListing, error) {
	return r.list(bson.M{"seller_id": sellerID})
}

func (r *VinylRepository) list(filter bson.M) ([]models.VinylListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vinyl listings: %v", err)
	}
	defer cursor.Close(ctx)

	var listings []models.VinylListing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode vinyl listings: %v", err)
	}

	return listings, nil
}

// UpdateStatus: 리스팅 상태 변경 (sold, removed)
func (r *VinylRepository) UpdateStatus(id string, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update vinyl listing %s: %v", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vinyl listing %s not found", id)
	}

	return nil
}

func (r *VinylRepository) Update(listing models.VinylListing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": listing.ID}, listing)
	if err != nil {
		return fmt.Errorf("failed to update vinyl listing %s: %v", listing.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vinyl listing %s not found", listing.ID)
	}

	return nil
}
