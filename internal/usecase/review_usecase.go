package usecase

import (
	"context"
	"fmt"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	notifier    *Notifier
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, reviewerEmail string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	reviewer, err := uc.userRepo.GetByEmail(ctx, reviewerEmail)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID:     product.ID,
		ReviewerEmail: reviewer.Email,
		ReviewerName:  reviewer.Name,
		ReviewerPhoto: reviewer.Photo,
		SellerEmail:   product.Seller.Email,
		Rating:        input.Rating,
		Comment:       input.Comment,
		CreatedAt:     time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.notifier.Emit(ctx, &entity.Notification{
		UserEmail: product.Seller.Email,
		Title:     "New review",
		Message:   fmt.Sprintf("%s rated %q %d/5.", reviewer.Name, product.Name, input.Rating),
		Link:      "/dashboard/products/" + product.ID,
		Type:      entity.NotificationReview,
	}); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListProductReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProduct(ctx, productID)
}

func (uc *ReviewUseCase) ListSellerReviews(ctx context.Context, sellerEmail string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListBySeller(ctx, sellerEmail)
}
