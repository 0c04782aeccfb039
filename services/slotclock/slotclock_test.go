package slotclock

import (
	"reflect"
	"testing"
	"time"

	"tiffin/models"
)

func kitchenWithSlots(slots map[string]models.MealSlotConfig) *models.Kitchen {
	return &models.Kitchen{ID: "k1", Name: "Annapurna Mess", MealSlots: slots}
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.Local)
}

func TestBusinessDateKey(t *testing.T) {
	got := BusinessDateKey(at(9, 30))
	want := "2026-03-10"
	if got != want {
		t.Errorf("BusinessDateKey() = %q, want %q", got, want)
	}
}

func TestEffectiveMealSlot(t *testing.T) {
	full := map[string]models.MealSlotConfig{
		"breakfast": {Active: true, Start: "08:00", End: "11:00"},
		"lunch":     {Active: true, Start: "10:00", End: "14:00"},
		"dinner":    {Active: true, Start: "18:00", End: "21:00"},
	}

	tests := []struct {
		name  string
		slots map[string]models.MealSlotConfig
		now   time.Time
		want  string
	}{
		{
			name:  "insideSingleWindow",
			slots: full,
			now:   at(8, 30),
			want:  "breakfast",
		},
		{
			name:  "overlapFavorsLaterStarted",
			slots: full,
			now:   at(10, 30),
			want:  "lunch",
		},
		{
			name:  "betweenWindowsReturnsUpcoming",
			slots: full,
			now:   at(15, 0),
			want:  "dinner",
		},
		{
			name:  "beforeFirstWindowReturnsFirst",
			slots: full,
			now:   at(6, 0),
			want:  "breakfast",
		},
		{
			name:  "allEndedFallsBackToFirstOfDay",
			slots: full,
			now:   at(22, 30),
			want:  "breakfast",
		},
		{
			name:  "inactiveSlotsNeverSelected",
			slots: map[string]models.MealSlotConfig{"lunch": {Active: false, Start: "12:00", End: "15:00"}},
			now:   at(12, 30),
			want:  "",
		},
		{
			name:  "noSlotsConfigured",
			slots: nil,
			now:   at(12, 0),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveMealSlot(kitchenWithSlots(tt.slots), tt.now)
			if got != tt.want {
				t.Errorf("EffectiveMealSlot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEffectiveMealSlotDeterministic(t *testing.T) {
	k := kitchenWithSlots(map[string]models.MealSlotConfig{
		"breakfast": {Active: true, Start: "08:00", End: "11:00"},
		"lunch":     {Active: true, Start: "10:00", End: "14:00"},
	})
	now := at(10, 30)

	first := EffectiveMealSlot(k, now)
	for i := 0; i < 50; i++ {
		if got := EffectiveMealSlot(k, now); got != first {
			t.Fatalf("EffectiveMealSlot() not deterministic: got %q then %q", first, got)
		}
	}
	if date := EffectiveMenuDateKey(k, now); date != EffectiveMenuDateKey(k, now) {
		t.Error("EffectiveMenuDateKey() not deterministic")
	}
}

func TestIsPastAllActiveSlots(t *testing.T) {
	tests := []struct {
		name  string
		slots map[string]models.MealSlotConfig
		now   time.Time
		want  bool
	}{
		{
			name:  "beforeLatestEnd",
			slots: map[string]models.MealSlotConfig{"dinner": {Active: true, Start: "18:00", End: "21:00"}},
			now:   at(20, 0),
			want:  false,
		},
		{
			name:  "exactlyAtLatestEnd",
			slots: map[string]models.MealSlotConfig{"dinner": {Active: true, Start: "18:00", End: "21:00"}},
			now:   at(21, 0),
			want:  false,
		},
		{
			name:  "strictlyPastLatestEnd",
			slots: map[string]models.MealSlotConfig{"dinner": {Active: true, Start: "18:00", End: "21:00"}},
			now:   at(22, 0),
			want:  true,
		},
		{
			name:  "noActiveSlotsNeverRollsOver",
			slots: map[string]models.MealSlotConfig{"dinner": {Active: false, Start: "18:00", End: "21:00"}},
			now:   at(23, 59),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPastAllActiveSlots(kitchenWithSlots(tt.slots), tt.now)
			if got != tt.want {
				t.Errorf("IsPastAllActiveSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveMenuDateKeyRollover(t *testing.T) {
	k := kitchenWithSlots(map[string]models.MealSlotConfig{
		"dinner": {Active: true, Start: "18:00", End: "21:00"},
	})

	if got := EffectiveMenuDateKey(k, at(22, 0)); got != "2026-03-11" {
		t.Errorf("EffectiveMenuDateKey() past dinner = %q, want tomorrow %q", got, "2026-03-11")
	}
	if got := EffectiveMenuDateKey(k, at(19, 0)); got != "2026-03-10" {
		t.Errorf("EffectiveMenuDateKey() during dinner = %q, want today %q", got, "2026-03-10")
	}
}

func TestAvailableSlotsForOrdering(t *testing.T) {
	k := kitchenWithSlots(map[string]models.MealSlotConfig{
		"breakfast": {Active: true, Start: "08:00", End: "11:00"},
		"lunch":     {Active: true, Start: "12:00", End: "15:00"},
		"dinner":    {Active: true, Start: "18:00", End: "21:00"},
		"snacks":    {Active: false, Start: "16:00", End: "17:00"},
	})

	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		{name: "morningAllOpen", now: at(9, 0), want: []string{"breakfast", "lunch", "dinner"}},
		{name: "afternoonBreakfastClosed", now: at(12, 30), want: []string{"lunch", "dinner"}},
		{name: "lateEveningAllClosed", now: at(22, 0), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlotsForOrdering(k, tt.now)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AvailableSlotsForOrdering() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := AvailableSlotsForOrdering(kitchenWithSlots(nil), at(9, 0)); len(got) != 0 {
		t.Errorf("AvailableSlotsForOrdering() with no slots = %v, want empty", got)
	}
}

func TestSlotDateKey(t *testing.T) {
	k := kitchenWithSlots(map[string]models.MealSlotConfig{
		"lunch": {Active: true, Start: "12:00", End: "15:00"},
	})

	tests := []struct {
		name string
		slot string
		now  time.Time
		want string
	}{
		{name: "beforeClose", slot: "lunch", now: at(12, 5), want: "2026-03-10"},
		{name: "atClose", slot: "lunch", now: at(15, 0), want: "2026-03-10"},
		{name: "afterCloseRollsForward", slot: "lunch", now: at(15, 1), want: "2026-03-11"},
		{name: "unknownSlotFilesToday", slot: "supper", now: at(23, 0), want: "2026-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotDateKey(tt.slot, k, tt.now)
			if got != tt.want {
				t.Errorf("SlotDateKey(%q) = %q, want %q", tt.slot, got, tt.want)
			}
		})
	}
}
