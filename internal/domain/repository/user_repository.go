package repository

import (
	"context"

	"tradbazar/internal/domain/entity"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, email string) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)
	ListBySellerRequestStatus(ctx context.Context, status string) ([]*entity.User, error)
}
