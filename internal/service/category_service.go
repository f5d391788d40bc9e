package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/goccy/go-json"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, createDTO *dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, createDTO *dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	category := &model.Category{Name: createDTO.Name}
	err := s.categoryRepo.CreateCategory(ctx, category)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == MySQLDuplicateEntry {
			return nil, ErrActionDuplicate
		}
		return nil, err
	}
	_ = redis.DeleteKey(ctx, consts.CategoryAllKey)
	return &dto.CategoryDTO{ID: category.ID, Name: category.Name}, nil
}

// ListCategories 分类全量缓存，写操作删缓存
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	value, err := redis.GetValue(ctx, consts.CategoryAllKey)
	if err == nil && value != "" {
		var cached []*dto.CategoryDTO
		if err := json.Unmarshal([]byte(value), &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		result = append(result, &dto.CategoryDTO{ID: category.ID, Name: category.Name})
	}

	if jsonStr, err := json.Marshal(result); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.CategoryAllKey, string(jsonStr), time.Hour*24)
	}
	return result, nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id uint64) error {
	category, err := s.categoryRepo.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.CategoryAllKey)
	return nil
}
