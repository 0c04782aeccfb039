package models

// SlotReminderPayload is the asynq task payload for a slot-closing reminder
// push sent to students who have not yet ordered.
type SlotReminderPayload struct {
	KitchenID string `json:"kitchenId"`
	StudentID string `json:"studentId"`
	Slot      string `json:"slot"`
	DateID    string `json:"dateId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
