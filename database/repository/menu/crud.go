// File: database/repository/menu/crud.go
package menuRepo

import (
	"context"
	"fmt"
	"time"

	"tiffin/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoMenuRepo) Upsert(ctx context.Context, menu *models.Menu) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	menu.UpdatedAt = time.Now()

	filter := bson.M{"kitchenId": menu.KitchenID, "dateId": menu.DateID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, menu, opts); err != nil {
		return fmt.Errorf("failed to upsert menu for kitchen %s date %s: %w", menu.KitchenID, menu.DateID, err)
	}
	return nil
}

func (r *mongoMenuRepo) GetByKitchenAndDate(ctx context.Context, kitchenID, dateID string) (*models.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var menu models.Menu
	filter := bson.M{"kitchenId": kitchenID, "dateId": dateID}
	if err := r.coll.FindOne(ctx, filter).Decode(&menu); err != nil {
		if err == mongo.ErrNoDocuments {
			// No menu set yet is a valid empty state, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch menu for kitchen %s date %s: %w", kitchenID, dateID, err)
	}
	return &menu, nil
}
