package entity

import (
	"time"
)

// Review is append-only; author fields are snapshots taken at submit time.
type Review struct {
	ID            string    `json:"id" firestore:"id"`
	ProductID     string    `json:"product_id" firestore:"productId"`
	ReviewerEmail string    `json:"reviewer_email" firestore:"reviewerEmail"`
	ReviewerName  string    `json:"reviewer_name" firestore:"reviewerName"`
	ReviewerPhoto string    `json:"reviewer_photo,omitempty" firestore:"reviewerPhoto,omitempty"`
	SellerEmail   string    `json:"seller_email" firestore:"sellerEmail"`
	Rating        int       `json:"rating" firestore:"rating"`
	Comment       string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}
