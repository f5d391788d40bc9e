package handler

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/response"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingSvc service.ListingService
}

func NewListingHandler(listingSvc service.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

func (s *ListingHandler) Create(c *gin.Context) {
	var createDTO dto.CreateListingDTO
	if err := c.ShouldBindJSON(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	listing, err := s.listingSvc.CreateListing(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, listing)
}

func (s *ListingHandler) Get(c *gin.Context) {
	listingID, err := strconv.ParseUint(c.Param("listing_id"), 10, 64)
	if err != nil || listingID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	listing, err := s.listingSvc.GetListing(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, listing)
}

func (s *ListingHandler) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))

	listings, err := s.listingSvc.ListListings(c.Request.Context(), categoryID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, listings)
}

func (s *ListingHandler) Delete(c *gin.Context) {
	listingID, err := strconv.ParseUint(c.Param("listing_id"), 10, 64)
	if err != nil || listingID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	isAdmin := hasRole(c, consts.RoleAdmin)

	if err := s.listingSvc.DeleteListing(c.Request.Context(), userID, isAdmin, listingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func hasRole(c *gin.Context, name string) bool {
	for _, role := range c.GetStringSlice("roles") {
		if role == name {
			return true
		}
	}
	return false
}
