// Package summary derives kitchen-floor production counts from a slot's
// orders. Pure computation; it is recomputed from scratch on every
// orders-collection change rather than maintained incrementally.
package summary

import (
	"strings"

	"tiffin/models"
)

// CookingSummary aggregates the CONFIRMED orders of one slot into production
// counts. Pending orders are not yet committed to production and must not be
// cooked for. Returns nil when there is nothing confirmed to cook.
//
// Under a roti-sabzi menu slot, orders classify as Half or Full dabba by
// their main-item label; an ambiguous or missing label counts as Full.
// Any other slot type buckets orders by literal item name.
func CookingSummary(orders []models.Order, menuSlot *models.MenuSlot) *models.CookingSummary {
	var confirmed []models.Order
	for _, o := range orders {
		if o.Status == models.OrderStatusConfirmed {
			confirmed = append(confirmed, o)
		}
	}
	if len(confirmed) == 0 {
		return nil
	}

	rotiSabzi := menuSlot != nil && menuSlot.Type == models.MenuTypeRotiSabzi

	s := &models.CookingSummary{
		Breakdown:       make(map[string]int),
		ExtrasBreakdown: make(map[string]int),
	}
	for _, o := range confirmed {
		if rotiSabzi || o.ItemType == models.MenuTypeRotiSabzi {
			if strings.Contains(o.ItemName, "Half") {
				s.HalfDabba += o.Quantity
			} else {
				s.FullDabba += o.Quantity
			}
		} else {
			s.Other += o.Quantity
			s.Breakdown[o.ItemName] += o.Quantity
		}

		for _, c := range o.Components {
			if c.Quantity <= 0 {
				continue
			}
			s.ExtrasBreakdown[c.Name] += c.Quantity
		}
	}
	return s
}
