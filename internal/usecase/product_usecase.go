package usecase

import (
	"context"
	"fmt"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	notifier    *Notifier
}

func NewProductUseCase(productRepo repository.ProductRepository, userRepo repository.UserRepository, notifier *Notifier) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

type ProductInput struct {
	Name           string
	Category       string
	Description    string
	Quantity       int
	Unit           string
	Price          float64
	Image          string
	OriginDistrict string
	OriginVillage  string
	SellerStory    string
	ProductType    string
}

// CreateProduct lists a new product for a seller. Every new listing starts
// unverified and invisible to the public catalog until an admin reviews it.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerEmail string, input ProductInput) (*entity.Product, error) {
	seller, err := uc.userRepo.GetByEmail(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}

	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity cannot be negative", nil)
	}
	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than zero", nil)
	}

	now := time.Now()
	product := &entity.Product{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Price:       input.Price,
		Image:       input.Image,
		Seller: entity.SellerInfo{
			Name:     seller.Name,
			Email:    seller.Email,
			District: seller.SellerRequest.DistrictOrEmpty(),
		},
		OriginDistrict:     input.OriginDistrict,
		OriginVillage:      input.OriginVillage,
		SellerStory:        input.SellerStory,
		ProductType:        input.ProductType,
		VerificationStatus: entity.VerificationPending,
		IsAvailable:        true,
		Featured:           false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if err := uc.notifier.Emit(ctx,
		&entity.Notification{
			UserEmail: sellerEmail,
			Title:     "Product submitted",
			Message:   fmt.Sprintf("%q has been submitted and is awaiting verification.", product.Name),
			Link:      "/dashboard/products/" + product.ID,
			Type:      entity.NotificationProduct,
		},
		&entity.Notification{
			UserEmail: entity.AdminInbox,
			Title:     "Product pending verification",
			Message:   fmt.Sprintf("%q from %s needs verification.", product.Name, sellerEmail),
			Link:      "/admin/products/" + product.ID,
			Type:      entity.NotificationProduct,
		},
	); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListPublicProducts returns the public catalog: verified and available only.
func (uc *ProductUseCase) ListPublicProducts(ctx context.Context, category string, limit, offset int) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{
		"verificationStatus": entity.VerificationVerified,
		"isAvailable":        true,
	}
	if category != "" {
		filter["category"] = category
	}
	return uc.productRepo.List(ctx, filter, limit, offset)
}

func (uc *ProductUseCase) ListSellerProducts(ctx context.Context, sellerEmail string, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.ListBySeller(ctx, sellerEmail, limit, offset)
}

// ListAllProducts is the admin view, including pending and rejected listings.
func (uc *ProductUseCase) ListAllProducts(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.List(ctx, nil, limit, offset)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, sellerEmail string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.Seller.Email != sellerEmail {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity cannot be negative", nil)
	}
	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than zero", nil)
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Description = input.Description
	product.Quantity = input.Quantity
	product.Unit = input.Unit
	product.Price = input.Price
	if input.Image != "" {
		product.Image = input.Image
	}
	product.OriginDistrict = input.OriginDistrict
	product.OriginVillage = input.OriginVillage
	product.SellerStory = input.SellerStory
	product.ProductType = input.ProductType
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a listing. Sellers may only delete their own; admins
// may delete any.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, requesterEmail, requesterRole string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if requesterRole != entity.RoleAdmin && product.Seller.Email != requesterEmail {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	return uc.productRepo.Delete(ctx, id)
}

// VerifyProduct records the admin's verification decision and notifies the
// seller.
func (uc *ProductUseCase) VerifyProduct(ctx context.Context, id, adminEmail, status string) (*entity.Product, error) {
	if status != entity.VerificationVerified && status != entity.VerificationRejected {
		return nil, errors.BadRequest("Verification status must be verified or rejected", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.VerificationStatus = status
	product.VerifiedBy = adminEmail
	if status == entity.VerificationRejected {
		product.Featured = false
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	title := "Product verified"
	message := fmt.Sprintf("%q has been verified and is now visible to buyers.", product.Name)
	if status == entity.VerificationRejected {
		title = "Product rejected"
		message = fmt.Sprintf("%q did not pass verification. Please review and resubmit.", product.Name)
	}

	if err := uc.notifier.Emit(ctx, &entity.Notification{
		UserEmail: product.Seller.Email,
		Title:     title,
		Message:   message,
		Link:      "/dashboard/products/" + product.ID,
		Type:      entity.NotificationProduct,
	}); err != nil {
		return nil, err
	}

	return product, nil
}

// SetFeatured marks a product featured. Only verified products qualify.
func (uc *ProductUseCase) SetFeatured(ctx context.Context, id string, featured bool) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if featured && product.VerificationStatus != entity.VerificationVerified {
		return nil, errors.BadRequest("Only verified products can be featured", nil)
	}

	product.Featured = featured
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) SetAvailability(ctx context.Context, id, sellerEmail string, available bool) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.Seller.Email != sellerEmail {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	product.IsAvailable = available
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
