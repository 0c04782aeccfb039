package order

import (
	"context"
	"errors"
	"fmt"

	orderRepo "tiffin/database/repository/order"
	"tiffin/models"
	"tiffin/services/slotclock"
	"tiffin/services/summary"
	"tiffin/utils"

	"go.uber.org/zap"
)

// PlaceOrder records a student self-service order. The order is stamped
// PENDING, keyed under the slot's business date, and appended as one
// immutable document so concurrent placements never conflict.
func (s *DefaultOrderService) PlaceOrder(ctx context.Context, kitchenID string, ord models.Order) (string, error) {
	if err := s.validateOrder(&ord); err != nil {
		return "", err
	}

	kitchen, err := s.KitchenSvc.GetKitchen(ctx, kitchenID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve kitchen %s: %w", kitchenID, err)
	}
	if kitchen == nil {
		return "", NewValidationError("kitchen not found")
	}

	now := s.now()
	cfg, ok := kitchen.MealSlots[ord.Slot]
	if !ok || !cfg.Active {
		return "", NewValidationError(fmt.Sprintf("slot %q is not open for ordering", ord.Slot))
	}
	available := false
	for _, id := range slotclock.AvailableSlotsForOrdering(kitchen, now) {
		if id == ord.Slot {
			available = true
			break
		}
	}
	if !available {
		return "", NewValidationError(fmt.Sprintf("slot %q has closed for today", ord.Slot))
	}

	dateID := slotclock.SlotDateKey(ord.Slot, kitchen, now)
	menu, err := s.MenuRepo.GetByKitchenAndDate(ctx, kitchenID, dateID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch menu for %s: %w", dateID, err)
	}
	if !menu.SlotOrderable(ord.Slot) {
		return "", NewValidationError(fmt.Sprintf("no menu has been set for slot %q yet", ord.Slot))
	}

	ord.KitchenID = kitchenID
	ord.Status = models.OrderStatusPending
	ord.DateID = dateID

	id, err := s.Repo.Create(ctx, &ord)
	if err != nil {
		return "", fmt.Errorf("failed to place order: %w", err)
	}
	return id, nil
}

// PlaceManualOrder records a phone/walk-in order keyed in by an admin. The
// caller supplies the status (typically CONFIRMED, bypassing the pending
// step) and the amount is tagged as due in the khata.
func (s *DefaultOrderService) PlaceManualOrder(ctx context.Context, kitchenID string, ord models.Order, recordedBy string) (string, error) {
	if err := s.validateOrder(&ord); err != nil {
		return "", err
	}
	if recordedBy == "" {
		return "", NewValidationError("manual orders must record the admin who entered them")
	}

	kitchen, err := s.KitchenSvc.GetKitchen(ctx, kitchenID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve kitchen %s: %w", kitchenID, err)
	}
	if kitchen == nil {
		return "", NewValidationError("kitchen not found")
	}

	ord.KitchenID = kitchenID
	if ord.Status == "" {
		ord.Status = models.OrderStatusConfirmed
	}
	ord.PaymentStatus = "due"
	ord.RecordedBy = recordedBy
	ord.DateID = slotclock.SlotDateKey(ord.Slot, kitchen, s.now())

	id, err := s.Repo.Create(ctx, &ord)
	if err != nil {
		return "", fmt.Errorf("failed to record manual order: %w", err)
	}
	return id, nil
}

func (s *DefaultOrderService) validateOrder(ord *models.Order) error {
	if ord.ItemName == "" {
		return NewValidationError("an item must be selected")
	}
	if ord.Quantity < 1 {
		return NewValidationError("quantity must be at least 1")
	}
	if ord.Slot == "" {
		return NewValidationError("a meal slot must be selected")
	}
	// Early collection only exists for the lunch run.
	if ord.IsPriority && ord.Slot != "lunch" {
		return NewValidationError("priority collection is available for lunch only")
	}
	return nil
}

// UpdateOrderStatus applies one forward step of the order lifecycle. Illegal
// transitions are rejected with a TransitionError before any write.
func (s *DefaultOrderService) UpdateOrderStatus(ctx context.Context, kitchenID, orderID string, newStatus models.OrderStatus) error {
	ord, err := s.Repo.GetByID(ctx, kitchenID, orderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	if ord == nil {
		return NewValidationError("order not found")
	}

	if err := validateTransition(ord.Status, newStatus); err != nil {
		return err
	}
	if err := s.Repo.UpdateStatus(ctx, kitchenID, orderID, ord.Status, newStatus); err != nil {
		if errors.Is(err, orderRepo.ErrStatusConflict) {
			return err
		}
		return fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	s.notifyStatus(ctx, ord, newStatus)
	return nil
}

// notifyStatus pushes a best-effort FCM update; delivery failure never fails
// the transition.
func (s *DefaultOrderService) notifyStatus(ctx context.Context, ord *models.Order, status models.OrderStatus) {
	if s.Notifier == nil || ord.UserID == "" {
		return
	}
	var title, body string
	switch status {
	case models.OrderStatusConfirmed:
		title = "Order confirmed"
		body = fmt.Sprintf("Your %s order is confirmed.", ord.Slot)
	case models.OrderStatusCompleted:
		title = "Order delivered"
		body = fmt.Sprintf("Your %s order is on its way. Bon appétit!", ord.Slot)
	default:
		return
	}
	data := map[string]string{"orderId": ord.ID, "status": string(status)}
	if err := s.Notifier.SendStudentPush(ctx, ord.UserID, title, body, data); err != nil {
		utils.GetLogger().Warn("order status push failed",
			zap.String("orderId", ord.ID), zap.Error(err))
	}
}

func (s *DefaultOrderService) GetOrdersForDate(ctx context.Context, kitchenID, dateID string) ([]models.Order, error) {
	return s.Repo.GetByKitchenAndDate(ctx, kitchenID, dateID)
}

func (s *DefaultOrderService) GetMyOrders(ctx context.Context, kitchenID, userID, phoneNumber string) ([]models.Order, error) {
	return s.Repo.GetByUser(ctx, kitchenID, userID, phoneNumber)
}

func (s *DefaultOrderService) SubscribeToOrders(kitchenID, dateID string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error) {
	return s.Repo.SubscribeByDate(kitchenID, dateID, onChange, onError)
}

func (s *DefaultOrderService) SubscribeToMyOrders(kitchenID, userID, phoneNumber string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error) {
	return s.Repo.SubscribeByUser(kitchenID, userID, phoneNumber, onChange, onError)
}

// CookingSummaryForSlot aggregates a slot's confirmed orders into the
// production view shown on the admin dashboard. Nil when nothing is
// confirmed yet.
func (s *DefaultOrderService) CookingSummaryForSlot(ctx context.Context, kitchenID, dateID, slotID string) (*models.CookingSummary, error) {
	orders, err := s.Repo.GetByKitchenAndDate(ctx, kitchenID, dateID)
	if err != nil {
		return nil, err
	}
	var slotOrders []models.Order
	for _, o := range orders {
		if o.Slot == slotID {
			slotOrders = append(slotOrders, o)
		}
	}

	var menuSlot *models.MenuSlot
	menu, err := s.MenuRepo.GetByKitchenAndDate(ctx, kitchenID, dateID)
	if err != nil {
		return nil, err
	}
	if menu != nil {
		if slot, ok := menu.Slots[slotID]; ok {
			menuSlot = &slot
		}
	}

	return summary.CookingSummary(slotOrders, menuSlot), nil
}
