package repository

import (
	"context"

	"tradbazar/internal/domain/entity"
)

type CategoryRepository interface {
	// Create fails with a Conflict error when a category with the same
	// normalized name already exists.
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
