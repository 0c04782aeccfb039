// File: database/repository/order/interface.go
package orderRepo

import (
	"context"
	"fmt"

	"tiffin/database"
	"tiffin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Unsubscribe tears down a live query. Callers must invoke it when the
// consuming scope ends or the change-stream listener leaks.
type Unsubscribe func()

// ErrStatusConflict is returned when a status update's expected current
// status no longer matches: a concurrent writer advanced the order first.
var ErrStatusConflict = fmt.Errorf("order status changed concurrently")

// OrderRepository defines methods for order data access. Orders are
// append-only documents; only their status field is ever rewritten.
type OrderRepository interface {
	// Create inserts a new order and returns its ID.
	Create(ctx context.Context, order *models.Order) (string, error)
	// GetByID retrieves one order scoped to a kitchen.
	GetByID(ctx context.Context, kitchenID, orderID string) (*models.Order, error)
	// UpdateStatus moves one order from an expected current status to the
	// next one. It is a single-document conditional write: ErrStatusConflict
	// when a concurrent writer got there first, mongo.ErrNoDocuments when the
	// order does not exist.
	UpdateStatus(ctx context.Context, kitchenID, orderID string, from, to models.OrderStatus) error
	// GetByKitchenAndDate retrieves a business date's orders, newest first.
	GetByKitchenAndDate(ctx context.Context, kitchenID, dateID string) ([]models.Order, error)
	// GetByUser retrieves a student's orders, matching by userId with a
	// phoneNumber fallback for pre-account manual entries, newest first.
	GetByUser(ctx context.Context, kitchenID, userID, phoneNumber string) ([]models.Order, error)
	// GetNonTrialByUser retrieves the orders that count toward the khata.
	GetNonTrialByUser(ctx context.Context, kitchenID, userID string) ([]models.Order, error)
	// SubscribeByDate delivers the full (kitchenId, dateId) result set on
	// every matching change. Errors go to onError without ending the stream.
	SubscribeByDate(kitchenID, dateID string, onChange func([]models.Order), onError func(error)) (Unsubscribe, error)
	// SubscribeByUser is the live form of GetByUser.
	SubscribeByUser(kitchenID, userID, phoneNumber string, onChange func([]models.Order), onError func(error)) (Unsubscribe, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	repo := &mongoOrderRepo{
		coll: database.DB().Collection("orders"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create order indexes: %v\n", err)
	}
	return repo
}
