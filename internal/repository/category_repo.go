package repository

import (
	"Kiosque/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

func (s *CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *CategoryRepoImpl) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryRepoImpl) DeleteCategory(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}
