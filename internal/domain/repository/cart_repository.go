package repository

import (
	"context"

	"tradbazar/internal/domain/entity"
)

type CartRepository interface {
	Get(ctx context.Context, userEmail, productID string) (*entity.CartItem, error)
	Set(ctx context.Context, item *entity.CartItem) error
	ListByUser(ctx context.Context, userEmail string) ([]*entity.CartItem, error)
	Delete(ctx context.Context, userEmail, productID string) error
	Clear(ctx context.Context, userEmail string) error
}
