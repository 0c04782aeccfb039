// File: database/repository/order/queries.go
package orderRepo

import (
	"context"
	"fmt"
	"time"

	"tiffin/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findNewestFirst runs a filtered query sorted by creation time descending and
// normalizes historical status spellings on the way out.
func (r *mongoOrderRepo) findNewestFirst(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	for i := range orders {
		orders[i].Status = models.NormalizeOrderStatus(string(orders[i].Status))
	}
	return orders, nil
}

// userFilter matches a student's orders by userId, falling back to
// phoneNumber for manual entries keyed in before the student had an account.
func userFilter(kitchenID, userID, phoneNumber string) bson.M {
	if phoneNumber == "" {
		return bson.M{"kitchenId": kitchenID, "userId": userID}
	}
	return bson.M{
		"kitchenId": kitchenID,
		"$or": []bson.M{
			{"userId": userID},
			{"phoneNumber": phoneNumber},
		},
	}
}

func (r *mongoOrderRepo) GetByKitchenAndDate(ctx context.Context, kitchenID, dateID string) ([]models.Order, error) {
	return r.findNewestFirst(ctx, bson.M{"kitchenId": kitchenID, "dateId": dateID})
}

func (r *mongoOrderRepo) GetByUser(ctx context.Context, kitchenID, userID, phoneNumber string) ([]models.Order, error) {
	return r.findNewestFirst(ctx, userFilter(kitchenID, userID, phoneNumber))
}

func (r *mongoOrderRepo) GetNonTrialByUser(ctx context.Context, kitchenID, userID string) ([]models.Order, error) {
	filter := bson.M{
		"kitchenId": kitchenID,
		"userId":    userID,
		"isTrial":   bson.M{"$ne": true},
	}
	return r.findNewestFirst(ctx, filter)
}
