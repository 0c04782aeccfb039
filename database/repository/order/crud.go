// File: database/repository/order/crud.go
package orderRepo

import (
	"context"
	"fmt"
	"time"

	"tiffin/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	// createdAt is stamped here, at the write boundary, so every writer agrees
	// on the clock orders are sorted by.
	order.CreatedAt = time.Now()
	order.Status = models.NormalizeOrderStatus(string(order.Status))

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	return order.ID, nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, kitchenID, orderID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	filter := bson.M{"kitchenId": kitchenID, "id": orderID}
	if err := r.coll.FindOne(ctx, filter).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	order.Status = models.NormalizeOrderStatus(string(order.Status))
	return &order, nil
}

// statusPattern matches the stored spellings that normalize to one canonical
// status, so the conditional write below also guards documents written before
// the spellings were unified.
func statusPattern(status models.OrderStatus) primitive.Regex {
	pattern := "^confirmed$"
	switch status {
	case models.OrderStatusPending:
		pattern = "^(pending|placed)$"
	case models.OrderStatusCompleted:
		pattern = "^(completed|delivered)$"
	}
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, kitchenID, orderID string, from, to models.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Conditioning on the current status makes the transition atomic: a stale
	// writer matches nothing instead of regressing a later state.
	filter := bson.M{"kitchenId": kitchenID, "id": orderID, "status": statusPattern(from)}
	update := bson.M{"$set": bson.M{"status": to}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	if res.MatchedCount == 0 {
		count, err := r.coll.CountDocuments(ctx, bson.M{"kitchenId": kitchenID, "id": orderID})
		if err != nil {
			return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
		}
		if count == 0 {
			return mongo.ErrNoDocuments
		}
		return ErrStatusConflict
	}
	return nil
}
