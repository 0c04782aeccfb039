package khata

import (
	"context"
	"fmt"
	"time"

	"tiffin/models"
	"tiffin/utils"

	"go.uber.org/zap"
)

// GetStudentBalance recomputes the khata from source documents on every
// call: sum of non-trial order totals minus sum of accepted payments.
// Positive means the student owes the kitchen. There is deliberately no
// stored running total to drift from the underlying facts; the two queries
// are independent, so a concurrent write may be visible in one and not the
// other for a single read. Balance is advisory, so that staleness is
// tolerated.
func (s *DefaultKhataService) GetStudentBalance(ctx context.Context, kitchenID, userID string) (*models.StudentKhata, error) {
	orders, err := s.Orders.GetNonTrialByUser(ctx, kitchenID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders for khata: %w", err)
	}

	accepted, err := s.Payments.GetByUserAndStatus(ctx, kitchenID, userID, models.PaymentStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accepted payments for khata: %w", err)
	}

	// Pending claims are listed for history but never counted.
	pending, err := s.Payments.GetByUserAndStatus(ctx, kitchenID, userID, models.PaymentStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending payments for khata: %w", err)
	}

	var totalDebits float64
	for _, o := range orders {
		totalDebits += o.TotalAmount
	}
	var totalCredits float64
	for _, p := range accepted {
		totalCredits += p.Amount
	}

	return &models.StudentKhata{
		Balance:         totalDebits - totalCredits,
		TotalOrders:     totalDebits,
		TotalPaid:       totalCredits,
		Orders:          orders,
		Payments:        accepted,
		PendingPayments: pending,
	}, nil
}

// RecordPayment stores a credit claim. Student claims start pending and wait
// for admin review; manual cash entries keyed in by an admin are accepted on
// the spot.
func (s *DefaultKhataService) RecordPayment(ctx context.Context, kitchenID string, payment models.Payment) (string, error) {
	if payment.Amount <= 0 {
		return "", fmt.Errorf("payment amount must be positive")
	}
	if payment.UserID == "" {
		return "", fmt.Errorf("payment requires a student")
	}
	switch payment.Method {
	case models.PaymentMethodUPI, models.PaymentMethodCash:
	default:
		return "", fmt.Errorf("unknown payment method %q", payment.Method)
	}

	payment.KitchenID = kitchenID
	if payment.RecordedBy != "" && payment.Method == models.PaymentMethodCash {
		now := time.Now()
		payment.Status = models.PaymentStatusAccepted
		payment.ProcessedAt = &now
	} else {
		payment.Status = models.PaymentStatusPending
	}

	id, err := s.Payments.Create(ctx, &payment)
	if err != nil {
		return "", fmt.Errorf("failed to record payment: %w", err)
	}
	return id, nil
}

// ReviewPayment is the admin accept/reject action: pending -> accepted or
// pending -> rejected, both terminal. A rejected payment never entered the
// credit sum, so no reversal is needed.
func (s *DefaultKhataService) ReviewPayment(ctx context.Context, kitchenID, paymentID string, accept bool) error {
	status := models.PaymentStatusRejected
	if accept {
		status = models.PaymentStatusAccepted
	}

	if err := s.Payments.Settle(ctx, kitchenID, paymentID, status); err != nil {
		return err
	}

	s.notifyReview(ctx, kitchenID, paymentID, status)
	return nil
}

func (s *DefaultKhataService) notifyReview(ctx context.Context, kitchenID, paymentID string, status models.PaymentStatus) {
	if s.Notifier == nil {
		return
	}
	payment, err := s.Payments.GetByID(ctx, kitchenID, paymentID)
	if err != nil || payment == nil {
		return
	}

	title := "Payment rejected"
	body := fmt.Sprintf("Your payment of ₹%.0f could not be verified. Please contact the kitchen.", payment.Amount)
	if status == models.PaymentStatusAccepted {
		title = "Payment received"
		body = fmt.Sprintf("₹%.0f has been credited to your khata.", payment.Amount)
	}
	data := map[string]string{"paymentId": payment.ID, "status": string(status)}
	if err := s.Notifier.SendStudentPush(ctx, payment.UserID, title, body, data); err != nil {
		utils.GetLogger().Warn("payment review push failed",
			zap.String("paymentId", payment.ID), zap.Error(err))
	}
}
