package models

import (
	"strings"
	"time"
)

// OrderStatus is the closed set of order lifecycle states.
// Forward-only: PENDING -> CONFIRMED -> COMPLETED.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// NormalizeOrderStatus maps historical status spellings ("placed", mixed
// casing) onto the canonical enum. Unknown values are treated as PENDING so
// that a malformed document never skips the confirmation step.
func NormalizeOrderStatus(raw string) OrderStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONFIRMED":
		return OrderStatusConfirmed
	case "COMPLETED", "DELIVERED":
		return OrderStatusCompleted
	case "PENDING", "PLACED", "":
		return OrderStatusPending
	default:
		return OrderStatusPending
	}
}

// OrderComponent is a per-extra snapshot taken at order time, so later menu
// edits cannot change what was agreed.
type OrderComponent struct {
	Name     string  `bson:"name" json:"name"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// Order is a single student's meal request for one slot of one business date.
type Order struct {
	ID          string           `bson:"id" json:"id"`
	KitchenID   string           `bson:"kitchenId" json:"kitchenId"`
	UserID      string           `bson:"userId,omitempty" json:"userId,omitempty"`
	PhoneNumber string           `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"` // manual entries recorded before the student had an account
	DateID      string           `bson:"dateId" json:"dateId"`
	Slot        string           `bson:"slot" json:"slot"`
	ItemType    MenuType         `bson:"itemType" json:"itemType"`
	ItemName    string           `bson:"itemName" json:"itemName"`
	Quantity    int              `bson:"quantity" json:"quantity"`
	Components  []OrderComponent `bson:"components,omitempty" json:"components,omitempty"`
	TotalAmount float64          `bson:"totalAmount" json:"totalAmount"`
	IsPriority  bool             `bson:"isPriority,omitempty" json:"isPriority,omitempty"` // early-collection request, lunch only
	IsTrial     bool             `bson:"isTrial,omitempty" json:"isTrial,omitempty"`       // pre-membership trial, excluded from khata
	Status      OrderStatus      `bson:"status" json:"status"`
	PaymentStatus string         `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"` // "due" on manual entries
	RecordedBy  string           `bson:"recordedBy,omitempty" json:"recordedBy,omitempty"`       // admin who keyed in a manual order
	CreatedAt   time.Time        `bson:"createdAt" json:"createdAt"`
}
