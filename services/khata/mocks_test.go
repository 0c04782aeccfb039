package khata

import (
	"context"

	orderRepo "tiffin/database/repository/order"
	"tiffin/models"
)

// MockOrderRepo is a mock implementation of orderRepo.OrderRepository for testing
type MockOrderRepo struct {
	GetNonTrialByUserFunc func(ctx context.Context, kitchenID, userID string) ([]models.Order, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, order *models.Order) (string, error) {
	return "", nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, kitchenID, orderID string) (*models.Order, error) {
	return nil, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, kitchenID, orderID string, from, to models.OrderStatus) error {
	return nil
}

func (m *MockOrderRepo) GetByKitchenAndDate(ctx context.Context, kitchenID, dateID string) ([]models.Order, error) {
	return nil, nil
}

func (m *MockOrderRepo) GetByUser(ctx context.Context, kitchenID, userID, phoneNumber string) ([]models.Order, error) {
	return nil, nil
}

func (m *MockOrderRepo) GetNonTrialByUser(ctx context.Context, kitchenID, userID string) ([]models.Order, error) {
	if m.GetNonTrialByUserFunc != nil {
		return m.GetNonTrialByUserFunc(ctx, kitchenID, userID)
	}
	return nil, nil
}

func (m *MockOrderRepo) SubscribeByDate(kitchenID, dateID string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error) {
	return func() {}, nil
}

func (m *MockOrderRepo) SubscribeByUser(kitchenID, userID, phoneNumber string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error) {
	return func() {}, nil
}

// MockPaymentRepo is a mock implementation of paymentRepo.PaymentRepository for testing
type MockPaymentRepo struct {
	payments   map[string]*models.Payment
	CreateFunc func(ctx context.Context, payment *models.Payment) (string, error)
	SettleFunc func(ctx context.Context, kitchenID, paymentID string, status models.PaymentStatus) error
}

func NewMockPaymentRepo(payments ...models.Payment) *MockPaymentRepo {
	m := &MockPaymentRepo{payments: make(map[string]*models.Payment)}
	for i := range payments {
		p := payments[i]
		m.payments[p.ID] = &p
	}
	return m
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *models.Payment) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	if payment.ID == "" {
		payment.ID = "pay-generated"
	}
	m.payments[payment.ID] = payment
	return payment.ID, nil
}

func (m *MockPaymentRepo) GetByID(ctx context.Context, kitchenID, paymentID string) (*models.Payment, error) {
	return m.payments[paymentID], nil
}

func (m *MockPaymentRepo) GetByUserAndStatus(ctx context.Context, kitchenID, userID string, status models.PaymentStatus) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if p.KitchenID == kitchenID && p.UserID == userID && p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *MockPaymentRepo) Settle(ctx context.Context, kitchenID, paymentID string, status models.PaymentStatus) error {
	if m.SettleFunc != nil {
		return m.SettleFunc(ctx, kitchenID, paymentID, status)
	}
	p, ok := m.payments[paymentID]
	if !ok {
		return nil
	}
	p.Status = status
	return nil
}
