package entity

import (
	"time"
)

const (
	OrderPending   = "pending"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

const (
	PaymentMethodCOD  = "COD"
	PaymentMethodCard = "Card"
)

// orderTransitions is the closed transition table; anything not listed here is
// an illegal transition, including for admins.
var orderTransitions = map[string][]string{
	OrderPending:   {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered, OrderCancelled},
	OrderDelivered: {},
	OrderCancelled: {},
}

func IsOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID           string `json:"id" firestore:"id"`
	ProductID    string `json:"product_id" firestore:"productId"`
	ProductName  string `json:"product_name" firestore:"productName"`
	ProductImage string `json:"product_image,omitempty" firestore:"productImage,omitempty"`
	BuyerEmail   string `json:"buyer_email" firestore:"buyerEmail"`
	BuyerName    string `json:"buyer_name,omitempty" firestore:"buyerName,omitempty"`
	Quantity     int    `json:"quantity" firestore:"quantity"`

	TotalPrice   float64 `json:"total_price" firestore:"totalPrice"`
	ShippingCost float64 `json:"shipping_cost" firestore:"shippingCost"`
	GrandTotal   float64 `json:"grand_total" firestore:"grandTotal"`

	Address  string `json:"address,omitempty" firestore:"address,omitempty"`
	District string `json:"district,omitempty" firestore:"district,omitempty"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`

	Seller *SellerInfo `json:"seller,omitempty" firestore:"seller,omitempty"`

	PaymentMethod string `json:"payment_method" firestore:"paymentMethod"`
	PaymentStatus string `json:"payment_status" firestore:"paymentStatus"`
	OrderStatus   string `json:"order_status" firestore:"orderStatus"`

	TrackingID  string     `json:"tracking_id,omitempty" firestore:"trackingId,omitempty"`
	CourierName string     `json:"courier_name,omitempty" firestore:"courierName,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty" firestore:"shippedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
