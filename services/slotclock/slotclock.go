// Package slotclock resolves "which meal slot, which business date" against a
// kitchen's slot configuration and a wall-clock instant. Everything here is a
// pure function over already-fetched data; there is no I/O.
//
// Times are zero-padded 24h "HH:MM" strings compared lexicographically, and
// date keys are local-date "YYYY-MM-DD" strings. Kitchen and students are
// assumed to share one locale, so no timezone database is involved.
package slotclock

import (
	"sort"
	"time"

	"tiffin/models"
)

const (
	dateKeyLayout = "2006-01-02"
	clockLayout   = "15:04"
)

// BusinessDateKey returns the local-date key for now.
func BusinessDateKey(now time.Time) string {
	return now.Format(dateKeyLayout)
}

func nextDateKey(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(dateKeyLayout)
}

func wallClock(now time.Time) string {
	return now.Format(clockLayout)
}

type slotWindow struct {
	ID    string
	Start string
	End   string
}

// activeSlots collects the kitchen's active slots sorted by start time.
// Absent or inactive configuration degrades to an empty set, never an error.
func activeSlots(kitchen *models.Kitchen) []slotWindow {
	if kitchen == nil {
		return nil
	}
	var slots []slotWindow
	for id, cfg := range kitchen.MealSlots {
		if !cfg.Active {
			continue
		}
		slots = append(slots, slotWindow{ID: id, Start: cfg.Start, End: cfg.End})
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Start != slots[j].Start {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].ID < slots[j].ID // deterministic order for equal starts
	})
	return slots
}

// IsPastAllActiveSlots reports whether now is strictly past the latest end
// time among the kitchen's active slots. With no active slots it returns
// false: a kitchen that never opens never rolls over.
func IsPastAllActiveSlots(kitchen *models.Kitchen, now time.Time) bool {
	slots := activeSlots(kitchen)
	if len(slots) == 0 {
		return false
	}
	latestEnd := ""
	for _, s := range slots {
		if s.End > latestEnd {
			latestEnd = s.End
		}
	}
	return wallClock(now) > latestEnd
}

// EffectiveMenuDateKey is the business date the current ordering session is
// filed under: tomorrow once the kitchen's day is operationally over, today
// otherwise. It can roll forward before midnight.
func EffectiveMenuDateKey(kitchen *models.Kitchen, now time.Time) string {
	if IsPastAllActiveSlots(kitchen, now) {
		return nextDateKey(now)
	}
	return BusinessDateKey(now)
}

// EffectiveMealSlot picks the single "current" slot for single-focus display:
// the in-window slot that started most recently (the newer meal period wins
// in overlapping windows), else the soonest upcoming slot, else the first
// slot of the day so a closed kitchen still reports a slot context for
// historical display. Returns "" when no slots are active.
func EffectiveMealSlot(kitchen *models.Kitchen, now time.Time) string {
	slots := activeSlots(kitchen)
	if len(slots) == 0 {
		return ""
	}
	hhmm := wallClock(now)

	var inWindow []slotWindow
	for _, s := range slots {
		if s.Start <= hhmm && hhmm <= s.End {
			inWindow = append(inWindow, s)
		}
	}
	if len(inWindow) > 0 {
		return inWindow[len(inWindow)-1].ID
	}

	for _, s := range slots {
		if hhmm < s.Start {
			return s.ID
		}
	}
	return slots[0].ID
}

// AvailableSlotsForOrdering lists the active slots a student may still order
// from: those whose closing time has not passed, sorted by start time. This
// is distinct from EffectiveMealSlot, which is advisory and display-only.
func AvailableSlotsForOrdering(kitchen *models.Kitchen, now time.Time) []string {
	hhmm := wallClock(now)
	var ids []string
	for _, s := range activeSlots(kitchen) {
		if hhmm <= s.End {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// SlotDateKey is the business date an order or menu for one specific slot is
// filed under: today while the slot is still open, tomorrow once it has
// closed. An unknown slot files under today.
func SlotDateKey(slotID string, kitchen *models.Kitchen, now time.Time) string {
	if kitchen == nil {
		return BusinessDateKey(now)
	}
	cfg, ok := kitchen.MealSlots[slotID]
	if !ok {
		return BusinessDateKey(now)
	}
	if wallClock(now) <= cfg.End {
		return BusinessDateKey(now)
	}
	return nextDateKey(now)
}
