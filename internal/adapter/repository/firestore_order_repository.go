package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

const ordersCollection = "orders"

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection(ordersCollection).NewDoc()
		order.ID = doc.ID
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	query := r.client.Collection(ordersCollection).OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	orders, err := r.collect(query.Documents(ctx))
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error) {
	query := r.client.Collection(ordersCollection).
		Where("buyerEmail", "==", buyerEmail).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreOrderRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Order, error) {
	query := r.client.Collection(ordersCollection).
		Where("seller.email", "==", sellerEmail).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreOrderRepository) ListByPaymentStatus(ctx context.Context, paymentStatus string) ([]*entity.Order, error) {
	query := r.client.Collection(ordersCollection).Where("paymentStatus", "==", paymentStatus)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreOrderRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}
