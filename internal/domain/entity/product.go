package entity

import (
	"time"
)

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// SellerInfo is the seller snapshot embedded in products and orders. It is
// copied at write time, so later profile edits do not rewrite history.
type SellerInfo struct {
	Name     string `json:"name" firestore:"name"`
	Email    string `json:"email" firestore:"email"`
	District string `json:"district,omitempty" firestore:"district,omitempty"`
}

type Product struct {
	ID          string     `json:"id" firestore:"id"`
	Name        string     `json:"name" firestore:"name"`
	Category    string     `json:"category" firestore:"category"`
	Description string     `json:"description,omitempty" firestore:"description,omitempty"`
	Quantity    int        `json:"quantity" firestore:"quantity"`
	Unit        string     `json:"unit" firestore:"unit"`
	Price       float64    `json:"price" firestore:"price"`
	Image       string     `json:"image,omitempty" firestore:"image,omitempty"`
	Seller      SellerInfo `json:"seller" firestore:"seller"`

	OriginDistrict string `json:"origin_district,omitempty" firestore:"originDistrict,omitempty"`
	OriginVillage  string `json:"origin_village,omitempty" firestore:"originVillage,omitempty"`
	SellerStory    string `json:"seller_story,omitempty" firestore:"sellerStory,omitempty"`
	ProductType    string `json:"product_type,omitempty" firestore:"productType,omitempty"`

	VerificationStatus string `json:"verification_status" firestore:"verificationStatus"`
	VerifiedBy         string `json:"verified_by,omitempty" firestore:"verifiedBy,omitempty"`
	IsAvailable        bool   `json:"is_available" firestore:"isAvailable"`
	Featured           bool   `json:"featured" firestore:"featured"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
