package repository

import (
	"context"

	"tradbazar/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)
	ListBySeller(ctx context.Context, sellerEmail string, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// DecrementQuantity atomically decrements stock, failing with a Conflict
	// error when fewer than quantity units remain.
	DecrementQuantity(ctx context.Context, id string, quantity int) error
}
