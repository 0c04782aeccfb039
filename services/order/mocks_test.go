package order

import (
	"context"
	"sort"
	"strconv"
	"sync"

	orderRepo "tiffin/database/repository/order"
	"tiffin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockOrderRepo is an in-memory mock of orderRepo.OrderRepository for testing
type MockOrderRepo struct {
	mu     sync.Mutex
	seq    int
	orders map[string]*models.Order

	CreateFunc  func(ctx context.Context, order *models.Order) (string, error)
	GetByIDFunc func(ctx context.Context, kitchenID, orderID string) (*models.Order, error)
}

func NewMockOrderRepo() *MockOrderRepo {
	return &MockOrderRepo{orders: make(map[string]*models.Order)}
}

func (m *MockOrderRepo) Create(ctx context.Context, order *models.Order) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if order.ID == "" {
		order.ID = "order-" + strconv.Itoa(m.seq)
	}
	order.Status = models.NormalizeOrderStatus(string(order.Status))
	clone := *order
	m.orders[order.ID] = &clone
	return order.ID, nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, kitchenID, orderID string) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, kitchenID, orderID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok || o.KitchenID != kitchenID {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, kitchenID, orderID string, from, to models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok || o.KitchenID != kitchenID {
		return mongo.ErrNoDocuments
	}
	if o.Status != from {
		return orderRepo.ErrStatusConflict
	}
	o.Status = to
	return nil
}

func (m *MockOrderRepo) GetByKitchenAndDate(ctx context.Context, kitchenID, dateID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.KitchenID == kitchenID && o.DateID == dateID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockOrderRepo) GetByUser(ctx context.Context, kitchenID, userID, phoneNumber string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.KitchenID != kitchenID {
			continue
		}
		if o.UserID == userID || (phoneNumber != "" && o.PhoneNumber == phoneNumber) {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockOrderRepo) GetNonTrialByUser(ctx context.Context, kitchenID, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.KitchenID == kitchenID && o.UserID == userID && !o.IsTrial {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *MockOrderRepo) SubscribeByDate(kitchenID, dateID string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error) {
	orders, _ := m.GetByKitchenAndDate(context.Background(), kitchenID, dateID)
	onChange(orders)
	return func() {}, nil
}

func (m *MockOrderRepo) SubscribeByUser(kitchenID, userID, phoneNumber string, onChange func([]models.Order), onError func(error)) (orderRepo.Unsubscribe, error) {
	orders, _ := m.GetByUser(context.Background(), kitchenID, userID, phoneNumber)
	onChange(orders)
	return func() {}, nil
}

// MockMenuRepo is a mock implementation of menuRepo.MenuRepository for testing
type MockMenuRepo struct {
	Menu *models.Menu
}

func (m *MockMenuRepo) Upsert(ctx context.Context, menu *models.Menu) error {
	m.Menu = menu
	return nil
}

func (m *MockMenuRepo) GetByKitchenAndDate(ctx context.Context, kitchenID, dateID string) (*models.Menu, error) {
	if m.Menu != nil && m.Menu.KitchenID == kitchenID && m.Menu.DateID == dateID {
		return m.Menu, nil
	}
	return nil, nil
}

// MockKitchenService is a mock implementation of kitchen.KitchenService for testing
type MockKitchenService struct {
	Kitchen *models.Kitchen
}

func (m *MockKitchenService) RegisterKitchen(ctx context.Context, k *models.Kitchen, passcode string) error {
	return nil
}

func (m *MockKitchenService) GetKitchen(ctx context.Context, id string) (*models.Kitchen, error) {
	if m.Kitchen != nil && m.Kitchen.ID == id {
		return m.Kitchen, nil
	}
	return nil, nil
}

func (m *MockKitchenService) ListKitchensByCity(ctx context.Context, city string) ([]models.Kitchen, error) {
	return nil, nil
}

func (m *MockKitchenService) UpdateKitchen(ctx context.Context, k *models.Kitchen) error {
	return nil
}

func (m *MockKitchenService) UpdateMealSlots(ctx context.Context, id string, slots map[string]models.MealSlotConfig) error {
	return nil
}

func (m *MockKitchenService) AuthenticateAdmin(ctx context.Context, kitchenID, passcode string) (string, error) {
	return "", nil
}

// MockNotifier records pushes instead of sending them.
type MockNotifier struct {
	mu     sync.Mutex
	Pushes []string
}

func (m *MockNotifier) SendStudentPush(ctx context.Context, studentID, title, body string, data map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pushes = append(m.Pushes, studentID+": "+title)
	return nil
}
