package entity

import (
	"time"
)

// AdminInbox is the synthetic recipient for platform-level notifications that
// any admin should see.
const AdminInbox = "admin"

const (
	NotificationOrder   = "order"
	NotificationProduct = "product"
	NotificationSeller  = "seller"
	NotificationReview  = "review"
)

// Notification is append-only apart from the read-flag flip.
type Notification struct {
	ID        string    `json:"id" firestore:"id"`
	UserEmail string    `json:"user_email" firestore:"userEmail"`
	Title     string    `json:"title" firestore:"title"`
	Message   string    `json:"message" firestore:"message"`
	Link      string    `json:"link,omitempty" firestore:"link,omitempty"`
	Type      string    `json:"type,omitempty" firestore:"type,omitempty"`
	IsRead    bool      `json:"is_read" firestore:"isRead"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
