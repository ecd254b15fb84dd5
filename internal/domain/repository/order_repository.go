package repository

import (
	"context"

	"tradbazar/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Order, error)
	ListByPaymentStatus(ctx context.Context, paymentStatus string) ([]*entity.Order, error)
}
