// File: database/repository/payment/crud.go
package paymentRepo

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

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	payment.Status = models.NormalizePaymentStatus(string(payment.Status))

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return "", fmt.Errorf("failed to insert payment: %w", err)
	}
	return payment.ID, nil
}

func (r *mongoPaymentRepo) GetByID(ctx context.Context, kitchenID, paymentID string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	filter := bson.M{"kitchenId": kitchenID, "id": paymentID}
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}
	payment.Status = models.NormalizePaymentStatus(string(payment.Status))
	return &payment, nil
}

func (r *mongoPaymentRepo) GetByUserAndStatus(ctx context.Context, kitchenID, userID string, status models.PaymentStatus) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"kitchenId": kitchenID, "userId": userID, "status": status}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

func (r *mongoPaymentRepo) Settle(ctx context.Context, kitchenID, paymentID string, status models.PaymentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Condition on pending status so a concurrent second review loses cleanly;
	// the transaction scope stays one document.
	filter := bson.M{"kitchenId": kitchenID, "id": paymentID, "status": models.PaymentStatusPending}
	update := bson.M{"$set": bson.M{"status": status, "processedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to settle payment %s: %w", paymentID, err)
	}
	if res.MatchedCount == 0 {
		existing, err := r.GetByID(ctx, kitchenID, paymentID)
		if err != nil {
			return err
		}
		if existing == nil {
			return mongo.ErrNoDocuments
		}
		return ErrAlreadySettled
	}
	return nil
}
