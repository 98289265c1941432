package category

import (
	"context"
	"errors"
	"fmt"

	"mySmartMarket/domain"
	"mySmartMarket/pkg/logger"
)

// CategoryRepository contract interface
type CategoryRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
}

type categoryService struct {
	categoryRepo CategoryRepository
}

func NewCategoryService(categoryRepo CategoryRepository) *categoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all categories")
		return nil, fmt.Errorf("context error: %w", err)
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all categories", "error", err)
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint64) (domain.Category, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get category by id")
		return domain.Category{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return domain.Category{}, domain.ErrInvalidID
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Failed to find category", "id", id, "error", err)
		}
		return domain.Category{}, err
	}

	return category, nil
}
