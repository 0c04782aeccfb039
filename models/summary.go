package models

// CookingSummary is the kitchen-floor production view for one slot: how many
// of each thing to cook, derived from confirmed orders only.
type CookingSummary struct {
	HalfDabba       int            `json:"halfDabba"`
	FullDabba       int            `json:"fullDabba"`
	Other           int            `json:"other"`
	Breakdown       map[string]int `json:"breakdown"`       // non-fixed items by name
	ExtrasBreakdown map[string]int `json:"extrasBreakdown"` // extras/components by name
}
