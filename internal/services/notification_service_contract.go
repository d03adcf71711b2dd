package services

import (
	"context"
	"time"
)

// NotificationQueue is the queue identity and booking events are published to.
const NotificationQueue = "notification_jobs"

// NotificationKind names the event a notification reports.
type NotificationKind string

const (
	NotificationOTPIssued            NotificationKind = "otp_issued"
	NotificationOTPResent            NotificationKind = "otp_resent"
	NotificationAppointmentBooked    NotificationKind = "appointment_booked"
	NotificationAppointmentCancelled NotificationKind = "appointment_cancelled"
)

// Notification is a message for a patient. Delivery is simulated.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Recipient string           `json:"recipient"`
	Phone     string           `json:"phone,omitempty"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NotificationSenderContract delivers one notification.
type NotificationSenderContract interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationServiceContract drains NotificationQueue with a pool of workers.
type NotificationServiceContract interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	// Dispatch hands a notification straight to the worker pool.
	Dispatch(ctx context.Context, n Notification) error
}
