package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type ListingService interface {
	CreateListing(ctx context.Context, userId uint64, createDTO *dto.CreateListingDTO) (*dto.ListingDTO, error)
	GetListing(ctx context.Context, id uint64) (*dto.ListingDTO, error)
	ListListings(ctx context.Context, categoryId uint64, limit int) ([]*dto.ListingDTO, error)
	DeleteListing(ctx context.Context, userId uint64, isAdmin bool, id uint64) error
}

type ListingServiceImpl struct {
	listingRepo  repository.ListingRepo
	categoryRepo repository.CategoryRepo
}

func NewListingService(listingRepo repository.ListingRepo, categoryRepo repository.CategoryRepo) ListingService {
	return &ListingServiceImpl{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ListingServiceImpl) CreateListing(ctx context.Context, userId uint64, createDTO *dto.CreateListingDTO) (*dto.ListingDTO, error) {
	if createDTO.Price < 0 {
		return nil, ErrPriceNegative
	}
	category, err := s.categoryRepo.GetCategory(ctx, createDTO.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	listing := &model.Listing{
		UserID:      userId,
		Title:       createDTO.Title,
		Description: createDTO.Description,
		Price:       createDTO.Price,
		CategoryID:  createDTO.CategoryID,
		Contact:     createDTO.Contact,
		ImageURL:    createDTO.ImageURL,
	}
	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}
	listing.Category = *category
	return toListingDTO(listing), nil
}

// GetListing 浏览计数走 Redis 实时累加，数据库快照仅作兜底
func (s *ListingServiceImpl) GetListing(ctx context.Context, id uint64) (*dto.ListingDTO, error) {
	listing, err := s.listingRepo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	item := toListingDTO(listing)
	viewKey := consts.ListingViewKey + strconv.FormatUint(id, 10)
	if err := redis.Incr(ctx, viewKey); err == nil {
		if views, err := redis.GetInt64(ctx, viewKey); err == nil {
			item.ViewsCount = views
		}
	}
	return item, nil
}

func (s *ListingServiceImpl) ListListings(ctx context.Context, categoryId uint64, limit int) ([]*dto.ListingDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = consts.DefaultPageSize
	}
	listings, err := s.listingRepo.ListListings(ctx, categoryId, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ListingDTO, 0, len(listings))
	for _, listing := range listings {
		result = append(result, toListingDTO(listing))
	}
	return result, nil
}

// DeleteListing 仅商品发布者本人或管理员可删除
func (s *ListingServiceImpl) DeleteListing(ctx context.Context, userId uint64, isAdmin bool, id uint64) error {
	listing, err := s.listingRepo.GetListing(ctx, id)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}
	if listing.UserID != userId && !isAdmin {
		return UnauthorizedError
	}
	return s.listingRepo.DeleteListing(ctx, id)
}

func toListingDTO(listing *model.Listing) *dto.ListingDTO {
	item := &dto.ListingDTO{}
	_ = copier.Copy(item, listing)
	item.CategoryName = listing.Category.Name
	item.CreatedAt = listing.CreatedAt.Format(time.DateTime)
	return item
}
