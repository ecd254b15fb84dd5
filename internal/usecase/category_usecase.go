package usecase

import (
	"context"
	"strings"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

type CreateCategoryInput struct {
	Name        string
	Image       string
	Description string
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, createdBy string, input CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.BadRequest("Category name is required", nil)
	}

	category := &entity.Category{
		ID:          entity.NormalizeCategoryName(name),
		Name:        name,
		Image:       input.Image,
		Description: input.Description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}

	// The repository creates against the normalized ID, so a second insert of
	// " fresh fruits " after "Fresh Fruits" surfaces as a Conflict.
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, id)
}
