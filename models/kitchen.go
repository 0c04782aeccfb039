package models

import "time"

// MealSlotConfig is a kitchen's schedule entry for one named meal period.
type MealSlotConfig struct {
	Active bool   `bson:"active" json:"active"`
	Start  string `bson:"start" json:"start"` // zero-padded 24h "HH:MM"
	End    string `bson:"end" json:"end"`     // same-day; overnight slots are not supported
}

// Address keeps the raw user input alongside the normalized form used for lookups.
type Address struct {
	Raw             string `bson:"raw" json:"raw"`
	City            string `bson:"city" json:"city"`
	State           string `bson:"state" json:"state"`
	NormalizedCity  string `bson:"normalizedCity" json:"normalizedCity"`
	NormalizedState string `bson:"normalizedState" json:"normalizedState"`
}

// MealVariant is one priced portion size of the fixed meal (e.g. "Half Dabba").
type MealVariant struct {
	Label string  `bson:"label" json:"label"`
	Price float64 `bson:"price" json:"price"`
}

// FixedMealConfig describes the kitchen's standard roti-sabzi meal and its
// optional add-on components.
type FixedMealConfig struct {
	BaseDish string        `bson:"baseDish" json:"baseDish"`
	Half     MealVariant   `bson:"half" json:"half"`
	Full     MealVariant   `bson:"full" json:"full"`
	AddOns   []MenuExtra   `bson:"addOns,omitempty" json:"addOns,omitempty"`
}

// Kitchen is a tenant: one mess/tiffin kitchen with its slot schedule.
type Kitchen struct {
	ID                string                    `bson:"id" json:"id"`
	Name              string                    `bson:"name" json:"name"`
	Address           Address                   `bson:"address" json:"address"`
	MealSlots         map[string]MealSlotConfig `bson:"mealSlots" json:"mealSlots"` // keyed by slot id, e.g. "lunch"
	FixedMealConfig   FixedMealConfig           `bson:"fixedMealConfig" json:"fixedMealConfig"`
	ThemeColor        string                    `bson:"themeColor,omitempty" json:"themeColor,omitempty"`
	AdminPasscodeHash string                    `bson:"adminPasscodeHash" json:"-"`
	CreatedAt         time.Time                 `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time                 `bson:"updatedAt" json:"updatedAt"`
}
