package entity

import (
	"time"
)

// CartItem is keyed by (userEmail, productId); the Firestore document ID is
// CartItemID(userEmail, productId).
type CartItem struct {
	UserEmail    string    `json:"user_email" firestore:"userEmail"`
	ProductID    string    `json:"product_id" firestore:"productId"`
	ProductName  string    `json:"product_name" firestore:"productName"`
	ProductImage string    `json:"product_image,omitempty" firestore:"productImage,omitempty"`
	Price        float64   `json:"price" firestore:"price"`
	Unit         string    `json:"unit,omitempty" firestore:"unit,omitempty"`
	Quantity     int       `json:"quantity" firestore:"quantity"`
	AddedAt      time.Time `json:"added_at" firestore:"addedAt"`
}

func CartItemID(userEmail, productID string) string {
	return userEmail + "#" + productID
}
