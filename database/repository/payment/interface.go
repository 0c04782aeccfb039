// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"
	"fmt"

	"tiffin/database"
	"tiffin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadySettled is returned when an accept/reject targets a payment that
// is no longer pending. Both outcomes are terminal.
var ErrAlreadySettled = fmt.Errorf("payment already settled")

// PaymentRepository defines methods for payment data access.
type PaymentRepository interface {
	// Create inserts a new payment claim and returns its ID.
	Create(ctx context.Context, payment *models.Payment) (string, error)
	// GetByID retrieves one payment scoped to a kitchen.
	GetByID(ctx context.Context, kitchenID, paymentID string) (*models.Payment, error)
	// GetByUserAndStatus retrieves a student's payments in one status, newest first.
	GetByUserAndStatus(ctx context.Context, kitchenID, userID string, status models.PaymentStatus) ([]models.Payment, error)
	// Settle moves a pending payment to accepted or rejected. It is a
	// single-document conditional write: ErrAlreadySettled when the payment
	// was settled concurrently, mongo.ErrNoDocuments when it does not exist.
	Settle(ctx context.Context, kitchenID, paymentID string, status models.PaymentStatus) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a new MongoDB PaymentRepository.
func NewMongoPaymentRepo() PaymentRepository {
	return &mongoPaymentRepo{
		coll: database.DB().Collection("payments"),
	}
}
