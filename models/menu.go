package models

import "time"

// MenuStatus gates ordering: a slot is orderable only once its menu is SET.
type MenuStatus string

const (
	MenuStatusSet   MenuStatus = "SET"
	MenuStatusUnset MenuStatus = "UNSET"
)

// MenuType distinguishes the fixed roti-sabzi meal from a one-off named item.
type MenuType string

const (
	MenuTypeRotiSabzi MenuType = "ROTI_SABZI"
	MenuTypeOther     MenuType = "OTHER"
)

// MenuExtra is a paid extra offered alongside a slot's meal.
type MenuExtra struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// RotiSabziMenu is the fixed-meal payload: base dish plus the two priced
// portion variants and any free add-ons served with every dabba.
type RotiSabziMenu struct {
	Sabzi      string      `bson:"sabzi" json:"sabzi"`
	Half       MealVariant `bson:"half" json:"half"`
	Full       MealVariant `bson:"full" json:"full"`
	FreeAddOns []string    `bson:"freeAddOns,omitempty" json:"freeAddOns,omitempty"`
}

// OtherMenu is a single named item with a price.
type OtherMenu struct {
	ItemName string  `bson:"itemName" json:"itemName"`
	Price    float64 `bson:"price" json:"price"`
}

// MenuSlot is the per-slot payload of a day's menu. Exactly one of RotiSabzi
// or Other is non-nil, matching Type.
type MenuSlot struct {
	Status    MenuStatus     `bson:"status" json:"status"`
	Type      MenuType       `bson:"type" json:"type"`
	RotiSabzi *RotiSabziMenu `bson:"rotiSabzi,omitempty" json:"rotiSabzi,omitempty"`
	Other     *OtherMenu     `bson:"other,omitempty" json:"other,omitempty"`
	Extras    []MenuExtra    `bson:"extras,omitempty" json:"extras,omitempty"`
}

// Menu is one document per (kitchen, business date).
type Menu struct {
	ID        string              `bson:"id" json:"id"`
	KitchenID string              `bson:"kitchenId" json:"kitchenId"`
	DateID    string              `bson:"dateId" json:"dateId"` // "YYYY-MM-DD"
	Slots     map[string]MenuSlot `bson:"slots" json:"slots"`
	UpdatedBy string              `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// SlotOrderable reports whether the menu allows ordering for the given slot.
func (m *Menu) SlotOrderable(slotID string) bool {
	if m == nil {
		return false
	}
	slot, ok := m.Slots[slotID]
	return ok && slot.Status == MenuStatusSet
}
