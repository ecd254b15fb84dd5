package repository

import (
	"context"

	"tradbazar/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Review, error)
}
