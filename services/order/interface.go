package order

import (
	"context"
	"time"

	menuRepo "tiffin/database/repository/menu"
	orderRepo "tiffin/database/repository/order"
	"tiffin/models"
	"tiffin/services/kitchen"
	"tiffin/services/notification"
)

// OrderService is the order ledger: it creates orders, drives their status
// lifecycle and exposes filtered live views.
type OrderService interface {
	PlaceOrder(ctx context.Context, kitchenID string, ord models.Order) (string, error)
	PlaceManualOrder(ctx context.Context, kitchenID string, ord models.Order, recordedBy string) (string, error)
	UpdateOrderStatus(ctx context.Context, kitchenID, orderID string, newStatus models.OrderStatus) error
	GetOrdersForDate(ctx context.Context, kitchenID, dateID string) ([]models.Order, error)
	GetMyOrders(ctx context.Context, kitchenID, userID, phoneNumber string) ([]models.Order, error)
	SubscribeToOrders(kitchenID, dateID string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error)
	SubscribeToMyOrders(kitchenID, userID, phoneNumber string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error)
	CookingSummaryForSlot(ctx context.Context, kitchenID, dateID, slotID string) (*models.CookingSummary, error)
}

// DefaultOrderService implements OrderService.
type DefaultOrderService struct {
	Repo       orderRepo.OrderRepository
	MenuRepo   menuRepo.MenuRepository
	KitchenSvc kitchen.KitchenService
	Notifier   notification.NotificationService

	// Now is the clock used for slot/date resolution; tests pin it.
	Now func() time.Time
}

func (s *DefaultOrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
