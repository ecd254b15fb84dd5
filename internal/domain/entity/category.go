package entity

import (
	"strings"
	"time"
)

type Category struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Image       string    `json:"image,omitempty" firestore:"image,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedBy   string    `json:"created_by" firestore:"createdBy"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// NormalizeCategoryName produces the canonical form used as the document ID, so
// "Fresh Fruits" and " fresh fruits " collide on insert.
func NormalizeCategoryName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(normalized), "-")
}
