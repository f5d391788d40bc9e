package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDuplicate(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.dupErr = &mysql.MySQLError{Number: MySQLDuplicateEntry}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, &dto.CreateCategoryDTO{Name: "社区公告"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, &dto.CreateCategoryDTO{Name: "社区公告"})
	assert.ErrorIs(t, err, ErrActionDuplicate)
}

func TestListCategories(t *testing.T) {
	repo := newFakeCategoryRepo(
		&model.Category{ID: 1, Name: "社区公告"},
		&model.Category{ID: 2, Name: "二手闲置"},
	)
	svc := NewCategoryService(repo)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeCategoryRepo(&model.Category{ID: 1, Name: "社区公告"})
	svc := NewCategoryService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteCategory(ctx, 999), ErrCategoryNotFound)

	require.NoError(t, svc.DeleteCategory(ctx, 1))
	assert.Empty(t, repo.categories)
}
