package usecase

import (
	"context"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart adds a product to the user's cart, bumping the quantity when the
// item is already there.
func (uc *CartUseCase) AddToCart(ctx context.Context, userEmail, productID string, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable || product.VerificationStatus != entity.VerificationVerified {
		return nil, errors.BadRequest("Product is not available", nil)
	}

	item, err := uc.cartRepo.Get(ctx, userEmail, productID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		item = &entity.CartItem{
			UserEmail:    userEmail,
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: product.Image,
			Price:        product.Price,
			Unit:         product.Unit,
			Quantity:     quantity,
			AddedAt:      time.Now(),
		}
	} else {
		item.Quantity += quantity
	}

	if err := uc.cartRepo.Set(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *CartUseCase) GetCart(ctx context.Context, userEmail string) ([]*entity.CartItem, error) {
	return uc.cartRepo.ListByUser(ctx, userEmail)
}

// AdjustQuantity increments or decrements a cart line. Quantity never drops
// below 1; removing the line is an explicit delete.
func (uc *CartUseCase) AdjustQuantity(ctx context.Context, userEmail, productID string, delta int) (*entity.CartItem, error) {
	item, err := uc.cartRepo.Get(ctx, userEmail, productID)
	if err != nil {
		return nil, err
	}

	item.Quantity += delta
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if err := uc.cartRepo.Set(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *CartUseCase) RemoveFromCart(ctx context.Context, userEmail, productID string) error {
	if _, err := uc.cartRepo.Get(ctx, userEmail, productID); err != nil {
		return err
	}
	return uc.cartRepo.Delete(ctx, userEmail, productID)
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userEmail string) error {
	return uc.cartRepo.Clear(ctx, userEmail)
}
