package models

import "time"

// Student is an app user attached to a kitchen. Manual orders keyed in by an
// admin before the student installed the app are matched to them later by
// phone number.
type Student struct {
	ID          string    `bson:"id" json:"id"`
	KitchenID   string    `bson:"kitchenId" json:"kitchenId"`
	Name        string    `bson:"name" json:"name"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Room        string    `bson:"room,omitempty" json:"room,omitempty"`
	IsTrial     bool      `bson:"isTrial,omitempty" json:"isTrial,omitempty"` // not yet a member
	FCMToken    string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
