package models

// NotificationKind classifies a user-facing notification.
type NotificationKind string

const (
	NotificationError NotificationKind = "error"
	NotificationInfo  NotificationKind = "info"
)

// Notification is a message box the host wants the user to see, for
// example when the notes file cannot be written.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}
