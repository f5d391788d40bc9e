package repository

import (
	"Kiosque/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ListingRepo interface {
	CreateListing(ctx context.Context, listing *model.Listing) error
	GetListing(ctx context.Context, id uint64) (*model.Listing, error)
	ListListings(ctx context.Context, categoryId uint64, limit int) ([]*model.Listing, error)
	DeleteListing(ctx context.Context, id uint64) error
	CountListings(ctx context.Context) (int64, error)
}

type ListingRepoImpl struct {
	db *gorm.DB
}

func NewListingRepo(db *gorm.DB) ListingRepo {
	return &ListingRepoImpl{db: db}
}

func (s *ListingRepoImpl) CreateListing(ctx context.Context, listing *model.Listing) error {
	return s.db.WithContext(ctx).Create(listing).Error
}

func (s *ListingRepoImpl) GetListing(ctx context.Context, id uint64) (*model.Listing, error) {
	var listing model.Listing
	err := s.db.WithContext(ctx).Preload("Category").First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (s *ListingRepoImpl) ListListings(ctx context.Context, categoryId uint64, limit int) ([]*model.Listing, error) {
	var listings []*model.Listing
	query := s.db.WithContext(ctx).Preload("Category")
	if categoryId > 0 {
		query = query.Where("category_id = ?", categoryId)
	}
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&listings).Error
	return listings, err
}

func (s *ListingRepoImpl) DeleteListing(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Listing{}, id).Error
}

func (s *ListingRepoImpl) CountListings(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Listing{}).Count(&count).Error
	return count, err
}
