package khata

import (
	"context"

	orderRepo "tiffin/database/repository/order"
	paymentRepo "tiffin/database/repository/payment"
	"tiffin/models"
	"tiffin/services/notification"
)

// KhataService reconciles a student's running ledger: orders are debits,
// accepted payments are credits.
type KhataService interface {
	GetStudentBalance(ctx context.Context, kitchenID, userID string) (*models.StudentKhata, error)
	RecordPayment(ctx context.Context, kitchenID string, payment models.Payment) (string, error)
	ReviewPayment(ctx context.Context, kitchenID, paymentID string, accept bool) error
}

// DefaultKhataService implements KhataService.
type DefaultKhataService struct {
	Orders   orderRepo.OrderRepository
	Payments paymentRepo.PaymentRepository
	Notifier notification.NotificationService
}
