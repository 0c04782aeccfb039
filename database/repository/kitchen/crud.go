// File: database/repository/kitchen/crud.go
package kitchenRepo

import (
	"context"
	"fmt"
	"time"

	"tiffin/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *mongoKitchenRepo) Create(ctx context.Context, kitchen *models.Kitchen) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if kitchen.ID == "" {
		kitchen.ID = uuid.New().String()
	}
	now := time.Now()
	kitchen.CreatedAt = now
	kitchen.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, kitchen); err != nil {
		return fmt.Errorf("failed to insert kitchen: %w", err)
	}
	return nil
}

func (r *mongoKitchenRepo) GetByID(ctx context.Context, id string) (*models.Kitchen, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var kitchen models.Kitchen
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&kitchen); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch kitchen %s: %w", id, err)
	}
	return &kitchen, nil
}

func (r *mongoKitchenRepo) GetByCity(ctx context.Context, normalizedCity string) ([]models.Kitchen, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"address.normalizedCity": normalizedCity})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve kitchens for city %s: %w", normalizedCity, err)
	}
	defer cursor.Close(ctx)

	var kitchens []models.Kitchen
	if err := cursor.All(ctx, &kitchens); err != nil {
		return nil, fmt.Errorf("failed to decode kitchens: %w", err)
	}
	return kitchens, nil
}

func (r *mongoKitchenRepo) Update(ctx context.Context, kitchen *models.Kitchen) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	kitchen.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": kitchen.ID}, kitchen)
	if err != nil {
		return fmt.Errorf("failed to update kitchen %s: %w", kitchen.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoKitchenRepo) UpdateMealSlots(ctx context.Context, id string, slots map[string]models.MealSlotConfig) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"mealSlots": slots, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update meal slots for kitchen %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
