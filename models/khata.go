package models

// StudentKhata is the derived running-ledger view for one student at one
// kitchen. It is recomputed from order and payment documents on every read
// and never persisted.
type StudentKhata struct {
	Balance         float64   `json:"balance"` // positive: student owes the kitchen
	TotalOrders     float64   `json:"totalOrders"`
	TotalPaid       float64   `json:"totalPaid"`
	Orders          []Order   `json:"orders"`
	Payments        []Payment `json:"payments"`
	PendingPayments []Payment `json:"pendingPayments"`
}
