package models

import (
	"strings"
	"time"
)

// PaymentStatus is the closed set of payment states. pending -> accepted and
// pending -> rejected are the only transitions; both results are terminal.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusAccepted PaymentStatus = "accepted"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// NormalizePaymentStatus maps historical spellings onto the canonical enum.
func NormalizePaymentStatus(raw string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "accepted", "approved":
		return PaymentStatusAccepted
	case "rejected", "declined":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// PaymentMethod is how the student claims to have paid.
type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCash PaymentMethod = "CASH"
)

// Payment is a credit claim against a student's khata. Only accepted payments
// count toward the balance; pending and rejected ones are history only.
type Payment struct {
	ID          string        `bson:"id" json:"id"`
	KitchenID   string        `bson:"kitchenId" json:"kitchenId"`
	UserID      string        `bson:"userId" json:"userId"`
	Amount      float64       `bson:"amount" json:"amount"`
	Method      PaymentMethod `bson:"method" json:"method"`
	ReceiptURL  string        `bson:"receiptUrl,omitempty" json:"receiptUrl,omitempty"`
	Note        string        `bson:"note,omitempty" json:"note,omitempty"`
	Status      PaymentStatus `bson:"status" json:"status"`
	RecordedBy  string        `bson:"recordedBy,omitempty" json:"recordedBy,omitempty"` // admin id on manual cash entries
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	ProcessedAt *time.Time    `bson:"processedAt,omitempty" json:"processedAt,omitempty"`
}
