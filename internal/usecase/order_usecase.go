package usecase

import (
	"context"
	"fmt"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
	"tradbazar/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	notifier    *Notifier
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	notifier *Notifier,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		notifier:    notifier,
	}
}

type CheckoutItem struct {
	ProductID    string  `json:"product_id"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`
	ShippingCost float64 `json:"shipping_cost"`
	GrandTotal   float64 `json:"grand_total"`
}

type CheckoutInput struct {
	BuyerEmail    string
	BuyerName     string
	Address       string
	District      string
	Phone         string
	PaymentMethod string
	Items         []CheckoutItem
}

func validateCheckout(input CheckoutInput) error {
	if input.BuyerEmail == "" {
		return errors.BadRequest("Buyer email is required", nil)
	}
	if input.PaymentMethod != entity.PaymentMethodCOD && input.PaymentMethod != entity.PaymentMethodCard {
		return errors.BadRequest("Payment method must be COD or Card", nil)
	}
	if len(input.Items) == 0 {
		return errors.BadRequest("Checkout requires at least one item", nil)
	}
	for i, item := range input.Items {
		if item.ProductID == "" {
			return errors.BadRequest(fmt.Sprintf("Item %d is missing a product id", i), nil)
		}
		if item.Quantity < 1 {
			return errors.BadRequest(fmt.Sprintf("Item %d has an invalid quantity", i), nil)
		}
		if item.GrandTotal <= 0 {
			return errors.BadRequest(fmt.Sprintf("Item %d has an invalid grand total", i), nil)
		}
	}
	return nil
}

// Checkout turns a batch of line items into one order per item. The whole
// batch is validated before anything is written; each item then inserts its
// order and decrements stock atomically. Card checkouts are recorded as paid
// (the payment intent was confirmed client-side before checkout), COD as
// pending.
func (uc *OrderUseCase) Checkout(ctx context.Context, input CheckoutInput) ([]*entity.Order, error) {
	if err := validateCheckout(input); err != nil {
		return nil, err
	}

	paymentStatus := entity.PaymentPending
	if input.PaymentMethod == entity.PaymentMethodCard {
		paymentStatus = entity.PaymentPaid
	}

	orders := make([]*entity.Order, 0, len(input.Items))
	for _, item := range input.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return orders, err
		}

		if err := uc.productRepo.DecrementQuantity(ctx, product.ID, item.Quantity); err != nil {
			return orders, err
		}

		order := &entity.Order{
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductImage:  product.Image,
			BuyerEmail:    input.BuyerEmail,
			BuyerName:     input.BuyerName,
			Quantity:      item.Quantity,
			TotalPrice:    item.TotalPrice,
			ShippingCost:  item.ShippingCost,
			GrandTotal:    item.GrandTotal,
			Address:       input.Address,
			District:      input.District,
			Phone:         input.Phone,
			Seller:        &product.Seller,
			PaymentMethod: input.PaymentMethod,
			PaymentStatus: paymentStatus,
			OrderStatus:   entity.OrderPending,
			CreatedAt:     time.Now(),
		}

		if err := uc.orderRepo.Create(ctx, order); err != nil {
			return orders, err
		}
		orders = append(orders, order)

		if err := uc.notifier.Emit(ctx, uc.transitionNotifications(order, "placed")...); err != nil {
			return orders, err
		}
	}

	if err := uc.cartRepo.Clear(ctx, input.BuyerEmail); err != nil {
		logger.Warn("Failed to clear cart for %s after checkout: %v", input.BuyerEmail, err)
	}

	return orders, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *OrderUseCase) ListBuyerOrders(ctx context.Context, buyerEmail string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByBuyer(ctx, buyerEmail)
}

func (uc *OrderUseCase) ListSellerOrders(ctx context.Context, sellerEmail string) ([]*entity.Order, error) {
	return uc.orderRepo.ListBySeller(ctx, sellerEmail)
}

func (uc *OrderUseCase) ListAllOrders(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, limit, offset)
}

type ShipOrderInput struct {
	TrackingID  string
	CourierName string
}

// ShipOrder is the seller's pending → shipped transition. Tracking id and
// courier are both mandatory.
func (uc *OrderUseCase) ShipOrder(ctx context.Context, id, sellerEmail string, input ShipOrderInput) (*entity.Order, error) {
	if input.TrackingID == "" || input.CourierName == "" {
		return nil, errors.BadRequest("Tracking id and courier name are required", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Seller == nil || order.Seller.Email != sellerEmail {
		return nil, errors.Forbidden("You don't have permission to ship this order", nil)
	}
	if !entity.CanTransitionOrder(order.OrderStatus, entity.OrderShipped) {
		return nil, errors.BadRequest(fmt.Sprintf("Order cannot be shipped from status %q", order.OrderStatus), nil)
	}

	now := time.Now()
	order.OrderStatus = entity.OrderShipped
	order.TrackingID = input.TrackingID
	order.CourierName = input.CourierName
	order.ShippedAt = &now

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.notifier.Emit(ctx, uc.transitionNotifications(order, entity.OrderShipped)...); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrderStatus is the admin transition. The target must be a known
// status and the move must be in the transition table; re-running the same
// legal transition re-notifies, which is accepted behavior.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	if !entity.IsOrderStatus(status) {
		return nil, errors.BadRequest(fmt.Sprintf("Unknown order status %q", status), nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransitionOrder(order.OrderStatus, status) {
		return nil, errors.BadRequest(fmt.Sprintf("Illegal transition from %q to %q", order.OrderStatus, status), nil)
	}

	order.OrderStatus = status
	if status == entity.OrderShipped && order.ShippedAt == nil {
		now := time.Now()
		order.ShippedAt = &now
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.notifier.Emit(ctx, uc.transitionNotifications(order, status)...); err != nil {
		return nil, err
	}

	return order, nil
}

// MarkOrderPaid settles a COD order after the courier hands over the cash.
func (uc *OrderUseCase) MarkOrderPaid(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus == entity.PaymentPaid {
		return nil, errors.Conflict("Order is already paid")
	}

	order.PaymentStatus = entity.PaymentPaid

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// transitionNotifications builds the fan-out for one transition: always the
// buyer, plus the seller when the order carries a seller snapshot.
func (uc *OrderUseCase) transitionNotifications(order *entity.Order, status string) []*entity.Notification {
	var title, buyerMsg, sellerMsg string
	switch status {
	case "placed":
		title = "Order placed"
		buyerMsg = fmt.Sprintf("Your order for %q has been placed.", order.ProductName)
		sellerMsg = fmt.Sprintf("New order received for %q (qty %d).", order.ProductName, order.Quantity)
	case entity.OrderShipped:
		title = "Order shipped"
		buyerMsg = fmt.Sprintf("Your order for %q has shipped via %s (tracking %s).", order.ProductName, order.CourierName, order.TrackingID)
		sellerMsg = fmt.Sprintf("Order for %q is marked shipped.", order.ProductName)
	case entity.OrderDelivered:
		title = "Order delivered"
		buyerMsg = fmt.Sprintf("Your order for %q has been delivered.", order.ProductName)
		sellerMsg = fmt.Sprintf("Order for %q has been delivered.", order.ProductName)
	case entity.OrderCancelled:
		title = "Order cancelled"
		buyerMsg = fmt.Sprintf("Your order for %q has been cancelled.", order.ProductName)
		sellerMsg = fmt.Sprintf("Order for %q has been cancelled.", order.ProductName)
	default:
		title = "Order updated"
		buyerMsg = fmt.Sprintf("Your order for %q is now %s.", order.ProductName, status)
		sellerMsg = fmt.Sprintf("Order for %q is now %s.", order.ProductName, status)
	}

	notifications := []*entity.Notification{{
		UserEmail: order.BuyerEmail,
		Title:     title,
		Message:   buyerMsg,
		Link:      "/orders/" + order.ID,
		Type:      entity.NotificationOrder,
	}}

	if order.Seller != nil && order.Seller.Email != "" {
		notifications = append(notifications, &entity.Notification{
			UserEmail: order.Seller.Email,
			Title:     title,
			Message:   sellerMsg,
			Link:      "/dashboard/orders/" + order.ID,
			Type:      entity.NotificationOrder,
		})
	}

	return notifications
}
