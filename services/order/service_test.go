package order

import (
	"context"
	"errors"
	"testing"
	"time"

	orderRepo "tiffin/database/repository/order"
	"tiffin/models"
	"tiffin/services/khata"
)

func testKitchen() *models.Kitchen {
	return &models.Kitchen{
		ID:   "kitchen-1",
		Name: "Sharma Tiffins",
		MealSlots: map[string]models.MealSlotConfig{
			"lunch": {Active: true, Start: "12:00", End: "15:00"},
		},
	}
}

func testMenu(dateID string, slots map[string]models.MenuSlot) *models.Menu {
	return &models.Menu{
		KitchenID: "kitchen-1",
		DateID:    dateID,
		Slots:     slots,
	}
}

func lunchMenu(dateID string) *models.Menu {
	return testMenu(dateID, map[string]models.MenuSlot{
		"lunch": {
			Status: models.MenuStatusSet,
			Type:   models.MenuTypeRotiSabzi,
			RotiSabzi: &models.RotiSabziMenu{
				Sabzi: "Aloo Gobi",
				Half:  models.MealVariant{Label: "Half Dabba", Price: 50},
				Full:  models.MealVariant{Label: "Full Dabba", Price: 80},
			},
		},
	})
}

func newTestService(repo *MockOrderRepo, k *models.Kitchen, now time.Time) *DefaultOrderService {
	return &DefaultOrderService{
		Repo:       repo,
		MenuRepo:   &MockMenuRepo{Menu: lunchMenu(now.Format("2006-01-02"))},
		KitchenSvc: &MockKitchenService{Kitchen: k},
		Now:        func() time.Time { return now },
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{"pendingToConfirmed", models.OrderStatusPending, models.OrderStatusConfirmed, false},
		{"confirmedToCompleted", models.OrderStatusConfirmed, models.OrderStatusCompleted, false},
		{"pendingSkipsToCompleted", models.OrderStatusPending, models.OrderStatusCompleted, true},
		{"completedBackToPending", models.OrderStatusCompleted, models.OrderStatusPending, true},
		{"confirmedBackToPending", models.OrderStatusConfirmed, models.OrderStatusPending, true},
		{"completedIsTerminal", models.OrderStatusCompleted, models.OrderStatusConfirmed, true},
		{"selfTransition", models.OrderStatusPending, models.OrderStatusPending, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTransition(tc.from, tc.to)
			if tc.wantErr && err == nil {
				t.Fatalf("validateTransition(%s, %s) allowed an illegal transition", tc.from, tc.to)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("validateTransition(%s, %s) unexpected error: %v", tc.from, tc.to, err)
			}
			if tc.wantErr {
				var te *TransitionError
				if !errors.As(err, &te) {
					t.Fatalf("expected *TransitionError, got %T", err)
				}
			}
		})
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	noon := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		ord  models.Order
	}{
		{"missingItem", models.Order{Slot: "lunch", Quantity: 1}},
		{"zeroQuantity", models.Order{ItemName: "Full Dabba", Slot: "lunch", Quantity: 0}},
		{"negativeQuantity", models.Order{ItemName: "Full Dabba", Slot: "lunch", Quantity: -2}},
		{"missingSlot", models.Order{ItemName: "Full Dabba", Quantity: 1}},
		{"priorityOutsideLunch", models.Order{ItemName: "Full Dabba", Slot: "dinner", Quantity: 1, IsPriority: true}},
		{"inactiveSlot", models.Order{ItemName: "Full Dabba", Slot: "breakfast", Quantity: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(NewMockOrderRepo(), testKitchen(), noon)
			_, err := svc.PlaceOrder(context.Background(), "kitchen-1", tc.ord)
			if err == nil {
				t.Fatal("expected a validation error, got nil")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestPlaceOrderRequiresSetMenu(t *testing.T) {
	noon := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		menu *models.Menu
	}{
		{"noMenuForDate", nil},
		{"slotUnset", testMenu("2026-03-10", map[string]models.MenuSlot{
			"lunch": {Status: models.MenuStatusUnset, Type: models.MenuTypeRotiSabzi},
		})},
		{"menuCoversOtherSlotOnly", testMenu("2026-03-10", map[string]models.MenuSlot{
			"dinner": {Status: models.MenuStatusSet, Type: models.MenuTypeOther, Other: &models.OtherMenu{ItemName: "Pulao", Price: 90}},
		})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(NewMockOrderRepo(), testKitchen(), noon)
			svc.MenuRepo = &MockMenuRepo{Menu: tc.menu}

			_, err := svc.PlaceOrder(context.Background(), "kitchen-1", models.Order{
				ItemName: "Full Dabba",
				Slot:     "lunch",
				Quantity: 1,
			})
			if err == nil {
				t.Fatal("order accepted for a slot without a SET menu")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestPlaceOrderClosedSlot(t *testing.T) {
	// Lunch ends at 15:00; at 16:00 the window has passed and ordering for
	// today is over.
	late := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	svc := newTestService(NewMockOrderRepo(), testKitchen(), late)

	_, err := svc.PlaceOrder(context.Background(), "kitchen-1", models.Order{
		ItemName: "Full Dabba",
		Slot:     "lunch",
		Quantity: 1,
	})
	if err == nil {
		t.Fatal("expected closed-slot rejection, got nil")
	}
}

func TestPlaceOrderStampsPendingAndDate(t *testing.T) {
	noon := time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)
	repo := NewMockOrderRepo()
	svc := newTestService(repo, testKitchen(), noon)

	id, err := svc.PlaceOrder(context.Background(), "kitchen-1", models.Order{
		UserID:   "student-1",
		ItemName: "Full Dabba",
		Slot:     "lunch",
		Quantity: 2,
		Status:   models.OrderStatusCompleted, // client-supplied status must be ignored
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	ord, _ := repo.GetByID(context.Background(), "kitchen-1", id)
	if ord == nil {
		t.Fatal("order was not persisted")
	}
	if ord.Status != models.OrderStatusPending {
		t.Errorf("status = %s, want PENDING", ord.Status)
	}
	if ord.DateID != "2026-03-10" {
		t.Errorf("dateId = %s, want 2026-03-10", ord.DateID)
	}
	if ord.KitchenID != "kitchen-1" {
		t.Errorf("kitchenId = %s, want kitchen-1", ord.KitchenID)
	}
}

func TestPlaceManualOrderDefaults(t *testing.T) {
	noon := time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)
	repo := NewMockOrderRepo()
	svc := newTestService(repo, testKitchen(), noon)

	t.Run("requiresRecordedBy", func(t *testing.T) {
		_, err := svc.PlaceManualOrder(context.Background(), "kitchen-1", models.Order{
			ItemName: "Full Dabba", Slot: "lunch", Quantity: 1,
		}, "")
		if err == nil {
			t.Fatal("expected rejection of a manual order without an admin")
		}
	})

	t.Run("defaultsToConfirmedAndDue", func(t *testing.T) {
		id, err := svc.PlaceManualOrder(context.Background(), "kitchen-1", models.Order{
			PhoneNumber: "+919812345678",
			ItemName:    "Half Dabba",
			Slot:        "lunch",
			Quantity:    1,
		}, "admin-1")
		if err != nil {
			t.Fatalf("PlaceManualOrder: %v", err)
		}
		ord, _ := repo.GetByID(context.Background(), "kitchen-1", id)
		if ord.Status != models.OrderStatusConfirmed {
			t.Errorf("status = %s, want CONFIRMED", ord.Status)
		}
		if ord.PaymentStatus != "due" {
			t.Errorf("paymentStatus = %s, want due", ord.PaymentStatus)
		}
		if ord.RecordedBy != "admin-1" {
			t.Errorf("recordedBy = %s, want admin-1", ord.RecordedBy)
		}
	})

	t.Run("allowsClosedSlot", func(t *testing.T) {
		// Admins key in phone orders after the window too; manual entry
		// skips the ordering-window check.
		late := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
		svcLate := newTestService(repo, testKitchen(), late)
		if _, err := svcLate.PlaceManualOrder(context.Background(), "kitchen-1", models.Order{
			ItemName: "Full Dabba", Slot: "lunch", Quantity: 1,
		}, "admin-1"); err != nil {
			t.Fatalf("manual order after slot close: %v", err)
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	noon := time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)
	repo := NewMockOrderRepo()
	notifier := &MockNotifier{}
	svc := newTestService(repo, testKitchen(), noon)
	svc.Notifier = notifier

	id, err := svc.PlaceOrder(context.Background(), "kitchen-1", models.Order{
		UserID: "student-1", ItemName: "Full Dabba", Slot: "lunch", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := svc.UpdateOrderStatus(context.Background(), "kitchen-1", id, models.OrderStatusCompleted); err == nil {
		t.Fatal("expected skip to COMPLETED to be rejected")
	}

	if err := svc.UpdateOrderStatus(context.Background(), "kitchen-1", id, models.OrderStatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := svc.UpdateOrderStatus(context.Background(), "kitchen-1", id, models.OrderStatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.UpdateOrderStatus(context.Background(), "kitchen-1", id, models.OrderStatusPending); err == nil {
		t.Fatal("expected reversal from COMPLETED to be rejected")
	}

	if len(notifier.Pushes) != 2 {
		t.Errorf("pushes = %d, want one per successful transition (2)", len(notifier.Pushes))
	}

	if err := svc.UpdateOrderStatus(context.Background(), "kitchen-1", "no-such-order", models.OrderStatusConfirmed); err == nil {
		t.Fatal("expected unknown order to be rejected")
	}
}

// TestUpdateOrderStatusConcurrentConflict interleaves two admin actions: a
// writer that read PENDING loses the conditional write to one that already
// advanced the order, instead of regressing it.
func TestUpdateOrderStatusConcurrentConflict(t *testing.T) {
	noon := time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)
	repo := NewMockOrderRepo()
	svc := newTestService(repo, testKitchen(), noon)

	id, err := svc.PlaceOrder(context.Background(), "kitchen-1", models.Order{
		UserID: "student-1", ItemName: "Full Dabba", Slot: "lunch", Quantity: 1,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// The slow writer reads the order while it is still PENDING.
	stale, _ := repo.GetByID(context.Background(), "kitchen-1", id)
	repo.GetByIDFunc = func(ctx context.Context, kitchenID, orderID string) (*models.Order, error) {
		clone := *stale
		return &clone, nil
	}

	// The fast writer confirms first.
	if err := repo.UpdateStatus(context.Background(), "kitchen-1", id, models.OrderStatusPending, models.OrderStatusConfirmed); err != nil {
		t.Fatalf("concurrent confirm: %v", err)
	}

	err = svc.UpdateOrderStatus(context.Background(), "kitchen-1", id, models.OrderStatusConfirmed)
	if !errors.Is(err, orderRepo.ErrStatusConflict) {
		t.Fatalf("stale transition error = %v, want ErrStatusConflict", err)
	}

	repo.GetByIDFunc = nil
	ord, _ := repo.GetByID(context.Background(), "kitchen-1", id)
	if ord.Status != models.OrderStatusConfirmed {
		t.Errorf("status after stale write = %s, want CONFIRMED", ord.Status)
	}
}

// stubPaymentRepo is the minimal payment store the day-in-the-life scenario
// needs; the khata package carries the full-featured mock.
type stubPaymentRepo struct {
	payments []models.Payment
}

func (s *stubPaymentRepo) Create(ctx context.Context, p *models.Payment) (string, error) {
	s.payments = append(s.payments, *p)
	return p.ID, nil
}

func (s *stubPaymentRepo) GetByID(ctx context.Context, kitchenID, paymentID string) (*models.Payment, error) {
	return nil, nil
}

func (s *stubPaymentRepo) GetByUserAndStatus(ctx context.Context, kitchenID, userID string, status models.PaymentStatus) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range s.payments {
		if p.KitchenID == kitchenID && p.UserID == userID && p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPaymentRepo) Settle(ctx context.Context, kitchenID, paymentID string, status models.PaymentStatus) error {
	return nil
}

// TestLunchServiceDay walks one order through the whole day: placed while
// lunch is open, confirmed by the admin, counted by the cooking summary, and
// finally owed on the student's khata.
func TestLunchServiceDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)
	repo := NewMockOrderRepo()
	menuRepo := &MockMenuRepo{Menu: lunchMenu("2026-03-10")}
	svc := &DefaultOrderService{
		Repo:       repo,
		MenuRepo:   menuRepo,
		KitchenSvc: &MockKitchenService{Kitchen: testKitchen()},
		Now:        func() time.Time { return now },
	}

	id, err := svc.PlaceOrder(context.Background(), "kitchen-1", models.Order{
		UserID:      "student-1",
		Slot:        "lunch",
		ItemType:    models.MenuTypeRotiSabzi,
		ItemName:    "Full Dabba",
		Quantity:    2,
		TotalAmount: 160,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// A pending order feeds nobody: the summary must stay empty until the
	// admin confirms.
	sum, err := svc.CookingSummaryForSlot(context.Background(), "kitchen-1", "2026-03-10", "lunch")
	if err != nil {
		t.Fatalf("CookingSummaryForSlot: %v", err)
	}
	if sum != nil {
		t.Fatalf("summary before confirmation = %+v, want nil", sum)
	}

	if err := svc.UpdateOrderStatus(context.Background(), "kitchen-1", id, models.OrderStatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	sum, err = svc.CookingSummaryForSlot(context.Background(), "kitchen-1", "2026-03-10", "lunch")
	if err != nil {
		t.Fatalf("CookingSummaryForSlot: %v", err)
	}
	if sum == nil {
		t.Fatal("summary after confirmation is nil")
	}
	if sum.FullDabba != 2 {
		t.Errorf("fullDabba = %d, want 2", sum.FullDabba)
	}
	if sum.HalfDabba != 0 {
		t.Errorf("halfDabba = %d, want 0", sum.HalfDabba)
	}

	khataSvc := &khata.DefaultKhataService{Orders: repo, Payments: &stubPaymentRepo{}}
	k, err := khataSvc.GetStudentBalance(context.Background(), "kitchen-1", "student-1")
	if err != nil {
		t.Fatalf("GetStudentBalance: %v", err)
	}
	if k.Balance != 160 {
		t.Errorf("balance = %.2f, want 160.00", k.Balance)
	}
}
