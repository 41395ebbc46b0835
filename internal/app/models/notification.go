package models

import "time"

type NotificationKind string

const (
	NotificationAppointmentUpdate NotificationKind = "appointment_update"
	NotificationEmergency         NotificationKind = "emergency"
)

// Notification is a document in the notifications collection, created only
// as a side effect of an appointment status transition and owned by its
// recipient.
type Notification struct {
	ID          string           `bson:"_id,omitempty"`
	RecipientID string           `bson:"userId"`
	Kind        NotificationKind `bson:"type"`
	Message     string           `bson:"message"`
	Read        bool             `bson:"read"`
	CreatedAt   time.Time        `bson:"createdAt"`
}
