package entity

import (
	"time"
)

const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

const (
	SellerRequestPending  = "pending"
	SellerRequestApproved = "approved"
	SellerRequestRejected = "rejected"
)

// SellerRequest is embedded in User; at most one request is live at a time.
type SellerRequest struct {
	Phone       string     `json:"phone" firestore:"phone"`
	ProductType string     `json:"product_type" firestore:"productType"`
	Source      string     `json:"source" firestore:"source"`
	District    string     `json:"district" firestore:"district"`
	Status      string     `json:"status" firestore:"status"`
	RequestedAt time.Time  `json:"requested_at" firestore:"requestedAt"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty" firestore:"reviewedAt,omitempty"`
}

// DistrictOrEmpty is nil-safe; users who never filed a seller request have no
// district on record.
func (r *SellerRequest) DistrictOrEmpty() string {
	if r == nil {
		return ""
	}
	return r.District
}

// User is keyed by email; the Firestore document ID is the email itself.
type User struct {
	Email         string         `json:"email" firestore:"email"`
	Name          string         `json:"name" firestore:"name"`
	Photo         string         `json:"photo,omitempty" firestore:"photo,omitempty"`
	Role          string         `json:"role" firestore:"role"`
	SellerRequest *SellerRequest `json:"seller_request,omitempty" firestore:"sellerRequest,omitempty"`
	CreatedAt     time.Time      `json:"created_at" firestore:"createdAt"`
	LastLoginAt   time.Time      `json:"last_login_at" firestore:"lastLoginAt"`
}

func (u *User) HasPendingSellerRequest() bool {
	return u.SellerRequest != nil && u.SellerRequest.Status == SellerRequestPending
}
